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

// Cue identifies one of the fixed sound effects of the stopwatch.
type Cue int

// List of valid Cue values.
const (
	CueStartStop Cue = iota
	CueTick
	CueReset
)

func (cue Cue) String() string {
	switch cue {
	case CueStartStop:
		return "start/stop"
	case CueTick:
		return "tick"
	case CueReset:
		return "reset"
	}
	panic("unknown cue")
}

// register values for each cue, in NR10 to NR14 order. the start/stop cue is
// a short rising chirp ended by sweep overflow; the tick is an even shorter
// chirp; the reset cue is a falling tone ended by envelope decay.
var cueRegisters = [...][5]uint8{
	CueStartStop: {0x17, 0x42, 0xd5, 0x37, 0x87},
	CueTick:      {0x64, 0x82, 0xd5, 0x37, 0x87},
	CueReset:     {0x6d, 0x85, 0xd1, 0x5d, 0x87},
}

// master volume for each cue. the tick is played quietly.
var cueVolume = [...]uint8{
	CueStartStop: 0x77,
	CueTick:      0x11,
	CueReset:     0x77,
}

// PlayCue writes the register preset for the cue to the channel and triggers
// it. Fire-and-forget; there is no feedback and no queueing, a new cue
// simply replaces whatever the channel was playing.
func (au *APU) PlayCue(cue Cue) {
	au.WriteRegister(NR50, cueVolume[cue])

	for i, v := range cueRegisters[cue] {
		au.WriteRegister(Register(i), v)
	}

	if au.tracker != nil {
		au.tracker.CueTrigger(cue)
	}
}
