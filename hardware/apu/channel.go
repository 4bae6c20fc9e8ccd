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

package apu

import "fmt"

// the eight-step waveforms for the four duty settings of NR11.
var dutyPatterns = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 0},
}

// rate at which the envelope unit is clocked (per envPeriod).
const envelopeFreq = 64

// rate at which the sweep unit is clocked (per sweepPeriod).
const sweepFreq = 128

// rate at which the length counter is clocked.
const lengthFreq = 256

// channel is a single pulse channel of the tone generator.
type channel struct {
	// register-derived state, set by APU.WriteRegister()
	duty        int
	envStart    uint8
	envUp       bool
	envPeriod   int
	freq        uint16 // 11 bits
	sweepPeriod int
	sweepNegate bool
	sweepShift  uint
	lengthLoad  int
	lengthOn    bool

	// set by trigger(), cleared when the envelope decays to silence or the
	// sweep pushes the frequency out of range
	enabled bool

	// the working copy of the frequency, adjusted by the sweep unit
	shadowFreq uint16

	// current envelope volume (0 to 15)
	vol uint8

	// waveform position. phase accumulates fractions of a duty step
	dutyIdx int
	phase   float64

	// sample counts to the next envelope/sweep clock
	envCt   int
	sweepCt int

	// samples until the length counter silences the channel
	lengthCt int
}

func (ch *channel) String() string {
	return fmt.Sprintf("freq=%04d vol=%02d enabled=%v", ch.shadowFreq, ch.vol, ch.enabled)
}

// trigger restarts the channel. equivalent to writing NR14 with the high bit
// set.
func (ch *channel) trigger() {
	ch.enabled = true
	ch.shadowFreq = ch.freq
	ch.vol = ch.envStart
	ch.envCt = ch.envSamples()
	ch.sweepCt = ch.sweepSamples()
	ch.lengthCt = (64 - ch.lengthLoad) * SampleFreq / lengthFreq
	ch.phase = 0
	ch.dutyIdx = 0

	if ch.vol == 0 && !ch.envUp {
		ch.enabled = false
	}
}

// number of samples between envelope clocks. zero period disables the unit.
func (ch *channel) envSamples() int {
	if ch.envPeriod == 0 {
		return 0
	}
	return SampleFreq * ch.envPeriod / envelopeFreq
}

// number of samples between sweep clocks. zero period disables the unit.
func (ch *channel) sweepSamples() int {
	if ch.sweepPeriod == 0 {
		return 0
	}
	return SampleFreq * ch.sweepPeriod / sweepFreq
}

// step the channel forward one sample period. the returned sample is scaled
// by the master volume (0 to 7).
func (ch *channel) step(masterVol uint8) uint8 {
	if !ch.enabled {
		return 0
	}

	// length counter
	if ch.lengthOn {
		ch.lengthCt--
		if ch.lengthCt <= 0 {
			ch.enabled = false
			return 0
		}
	}

	// envelope unit
	if ch.envCt > 0 {
		ch.envCt--
		if ch.envCt == 0 {
			ch.envCt = ch.envSamples()
			if ch.envUp {
				if ch.vol < 15 {
					ch.vol++
				}
			} else if ch.vol > 0 {
				ch.vol--
				if ch.vol == 0 {
					ch.enabled = false
					return 0
				}
			}
		}
	}

	// sweep unit
	if ch.sweepCt > 0 && ch.sweepShift > 0 {
		ch.sweepCt--
		if ch.sweepCt == 0 {
			ch.sweepCt = ch.sweepSamples()
			adj := ch.shadowFreq >> ch.sweepShift
			if ch.sweepNegate {
				ch.shadowFreq -= adj
			} else {
				ch.shadowFreq += adj
				if ch.shadowFreq > 0x07ff {
					ch.enabled = false
					return 0
				}
			}
		}
	}

	// the waveform cycles at 131072/(2048-freq)Hz and each cycle is eight
	// duty steps
	steps := 1048576.0 / float64(2048-int(ch.shadowFreq))
	ch.phase += steps / SampleFreq
	for ch.phase >= 1 {
		ch.phase--
		ch.dutyIdx = (ch.dutyIdx + 1) % 8
	}

	if dutyPatterns[ch.duty][ch.dutyIdx] == 0 {
		return 0
	}

	// channel volume scaled by master volume. the maximum possible sample
	// value is 15*7 = 105, leaving room for an unsigned device silence
	// offset without overflowing the byte
	return ch.vol * masterVol
}
