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

package hardware

import (
	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/hardware/clocks"
)

// Run drives the hardware one frame at a time until continueCheck returns
// false or an error. If the VDU's FPS limiter is active the loop settles at
// the hardware frame rate; without it the loop runs as quickly as possible.
//
// The continueCheck function runs once per frame. A nil continueCheck means
// run forever.
func (dmg *DMG) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cyclesPerFrame := clocks.CyclesPerFrame * dmg.Speed.Factor()

	// audio samples are produced at a fixed rate that does not divide the
	// frame rate evenly. the fractional remainder carries over to the next
	// frame so the long-run sample rate is exact
	samplesPerFrame := float64(apu.SampleFreq) / clocks.FramesPerSecond
	samples := make([]uint8, 0, int(samplesPerFrame)+1)
	var carry float64

	running := true
	var err error

	for running {
		// the firmware's frame handler runs first, modelling the vblank
		// interrupt taking priority at the top of the frame
		if err := dmg.Stopwatch.Frame(); err != nil {
			return err
		}

		dmg.TMR.Step(cyclesPerFrame)

		carry += samplesPerFrame
		n := int(carry)
		carry -= float64(n)

		samples = samples[:0]
		for i := 0; i < n; i++ {
			samples = append(samples, dmg.APU.Step())
		}
		if err := dmg.APU.Mix(samples); err != nil {
			return err
		}

		if err := dmg.VDU.NewFrame(); err != nil {
			return err
		}

		running, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
