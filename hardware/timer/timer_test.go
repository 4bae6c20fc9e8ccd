// This file is part of Gopherwatch.
//
// Gopherwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherwatch.  If not, see <https://www.gnu.org/licenses/>.

package timer_test

import (
	"testing"

	"github.com/seggers/gopherwatch/hardware/clocks"
	"github.com/seggers/gopherwatch/hardware/cpuid"
	"github.com/seggers/gopherwatch/hardware/timer"
	"github.com/seggers/gopherwatch/test"
)

// cycles between ISR invocations for each speed mode. the product of the TAC
// divider and the number of TIMA increments from the modulo to overflow.
const (
	periodNormal = 256 * (256 - clocks.ModuloRealtimeNormal)
	periodDouble = 1024 * (256 - clocks.ModuloRealtimeDouble)
)

func TestConfigure(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Configure(cpuid.NormalSpeed)

	test.Equate(t, tmr.TMA, clocks.ModuloRealtimeNormal)
	test.Equate(t, tmr.TIMA, clocks.ModuloRealtimeNormal)
	test.ExpectedFailure(t, tmr.IsRunning())

	tmr.Configure(cpuid.DoubleSpeed)
	test.Equate(t, tmr.TMA, clocks.ModuloRealtimeDouble)
	test.Equate(t, tmr.TIMA, clocks.ModuloRealtimeDouble)
}

func TestInterruptRate(t *testing.T) {
	for _, m := range []cpuid.SpeedMode{cpuid.NormalSpeed, cpuid.DoubleSpeed} {
		tmr := timer.NewTimer()
		tmr.Configure(m)

		ct := 0
		tmr.RegisterISR(func() {
			ct++
		})
		tmr.Start()

		// one second of cycles for the speed mode
		cycles := clocks.Normal * m.Factor()
		for i := 0; i < cycles; i += 456 {
			tmr.Step(456)
		}

		// both speed modes tick at very nearly 100Hz
		if ct < 99 || ct > 100 {
			t.Errorf("ISR ran %d times in one emulated second (wanted 99 or 100) in %s mode", ct, m)
		}
	}
}

func TestInterruptPeriod(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Configure(cpuid.NormalSpeed)

	ct := 0
	tmr.RegisterISR(func() {
		ct++
	})
	tmr.Start()

	tmr.Step(periodNormal - 1)
	test.Equate(t, ct, 0)
	tmr.Step(1)
	test.Equate(t, ct, 1)
	test.Equate(t, tmr.TIMA, clocks.ModuloRealtimeNormal)

	// a large step accounts for every overflow it spans
	tmr.Step(periodNormal * 3)
	test.Equate(t, ct, 4)
}

func TestStopPreservesPhase(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Configure(cpuid.NormalSpeed)

	ct := 0
	tmr.RegisterISR(func() {
		ct++
	})

	tmr.Start()
	tmr.Step(periodNormal / 2)
	tima := tmr.TIMA
	remaining := tmr.CyclesRemaining

	// a stopped timer does not count, however many cycles pass
	tmr.Stop()
	for i := 0; i < 100; i++ {
		tmr.Step(periodNormal)
	}
	test.Equate(t, tmr.TIMA, tima)
	test.Equate(t, tmr.CyclesRemaining, remaining)
	test.Equate(t, ct, 0)

	// stopping twice is the same as stopping once
	tmr.Stop()
	test.Equate(t, tmr.TIMA, tima)

	// resuming finishes the interrupted period rather than starting afresh
	tmr.Start()
	tmr.Step(periodNormal / 2)
	test.Equate(t, ct, 1)
}

func TestStepWhileStopped(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Configure(cpuid.NormalSpeed)

	fired := false
	tmr.RegisterISR(func() {
		fired = true
	})

	// never started
	tmr.Step(periodNormal * 10)
	test.ExpectedFailure(t, fired)
	test.Equate(t, tmr.TIMA, clocks.ModuloRealtimeNormal)
}
