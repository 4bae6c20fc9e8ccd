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

// Package timer implements the interval timer of the DMG handheld: the TIMA,
// TMA and TAC register trio. TIMA increments at the rate selected by the TAC
// divider; when it overflows it is reloaded from TMA and the registered
// interrupt service routine runs.
//
// The ISR is invoked synchronously from Step() and so runs on the emulation
// goroutine. Re-entry of the ISR from its own source is therefore impossible,
// which mirrors the interrupt-masking discipline of the real machine.
package timer

import (
	"fmt"

	"github.com/seggers/gopherwatch/hardware/clocks"
	"github.com/seggers/gopherwatch/hardware/cpuid"
)

// Divider indicates how often (in CPU cycles) the TIMA value increases.
// The value corresponds to the input-clock-select bits of the TAC register.
// A timer with the Stopped divider does not count at all.
type Divider int

// List of valid Divider values.
const (
	Stopped  Divider = 0
	Tick16   Divider = 16
	Tick64   Divider = 64
	Tick256  Divider = 256
	Tick1024 Divider = 1024
)

// DividerList is a list of all possible string representations of the Divider type.
var DividerList = []string{"STOP", "TICK16", "TICK64", "TICK256", "TICK1024"}

func (div Divider) String() string {
	switch div {
	case Stopped:
		return "STOP"
	case Tick16:
		return "TICK16"
	case Tick64:
		return "TICK64"
	case Tick256:
		return "TICK256"
	case Tick1024:
		return "TICK1024"
	}
	panic("unknown timer divider")
}

// Timer implements the interval timer of the DMG.
type Timer struct {
	// the current TAC divider selection. Stopped when the timer is halted.
	Divider Divider

	// TIMA is the current counter value. it is preserved over Stop()/Start()
	// so that a stopped timer resumes mid-cycle rather than from the modulo
	TIMA uint8

	// TMA is the value reloaded into TIMA on overflow
	TMA uint8

	// the divider to use when the timer is started. fixed by Configure()
	// according to the CPU speed
	running Divider

	// CyclesRemaining is the number of CPU cycles remaining before TIMA is
	// increased. like TIMA it is preserved over Stop()/Start()
	CyclesRemaining int

	// the interrupt service routine run on every TIMA overflow
	isr func()
}

// NewTimer is the preferred method of initialisation of the Timer type. The
// timer is created in the stopped state and must be given a modulo with
// Configure() before it is of any use.
func NewTimer() *Timer {
	return &Timer{
		Divider: Stopped,
		running: Tick256,
	}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("TIMA=%#02x TMA=%#02x remn=%d div=%s",
		tmr.TIMA,
		tmr.TMA,
		tmr.CyclesRemaining,
		tmr.Divider,
	)
}

// RegisterISR registers the interrupt service routine to run on every TIMA
// overflow. Only one routine can be registered; later calls replace the
// earlier routine.
func (tmr *Timer) RegisterISR(isr func()) {
	tmr.isr = isr
}

// Configure sets the timer modulo and divider so that the overflow interrupt
// fires at the same wall-clock rate for either CPU speed. The counter is
// reloaded and the timer left in the stopped state.
func (tmr *Timer) Configure(speed cpuid.SpeedMode) {
	switch speed {
	case cpuid.NormalSpeed:
		tmr.TMA = clocks.ModuloRealtimeNormal
		tmr.running = Tick256
	case cpuid.DoubleSpeed:
		tmr.TMA = clocks.ModuloRealtimeDouble
		tmr.running = Tick1024
	}

	tmr.TIMA = tmr.TMA
	tmr.CyclesRemaining = int(tmr.running)
	tmr.Divider = Stopped
}

// Start the timer counting. TIMA and the cycle count resume from wherever
// Stop() left them.
func (tmr *Timer) Start() {
	tmr.Divider = tmr.running
}

// Stop the timer. The partial-tick progress in TIMA and the cycle count is
// preserved. Stopping an already stopped timer changes nothing.
func (tmr *Timer) Stop() {
	tmr.Divider = Stopped
}

// IsRunning returns true if the timer is currently counting.
func (tmr *Timer) IsRunning() bool {
	return tmr.Divider != Stopped
}

// Step the timer forward by the given number of CPU cycles. The ISR runs once
// for every TIMA overflow that occurs in the period.
func (tmr *Timer) Step(cycles int) {
	if tmr.Divider == Stopped {
		return
	}

	for cycles >= tmr.CyclesRemaining {
		cycles -= tmr.CyclesRemaining
		tmr.CyclesRemaining = int(tmr.Divider)

		if tmr.TIMA == 0xff {
			tmr.TIMA = tmr.TMA
			if tmr.isr != nil {
				tmr.isr()
			}
		} else {
			tmr.TIMA++
		}
	}

	tmr.CyclesRemaining -= cycles
}
