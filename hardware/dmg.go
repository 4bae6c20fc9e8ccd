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
	"fmt"

	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/hardware/cpuid"
	"github.com/seggers/gopherwatch/hardware/joypad"
	"github.com/seggers/gopherwatch/hardware/timer"
	"github.com/seggers/gopherwatch/hardware/vdu"
	"github.com/seggers/gopherwatch/logger"
	"github.com/seggers/gopherwatch/stopwatch"
)

// DMG is the main container for the emulated components of the handheld.
type DMG struct {
	Model cpuid.Model
	Speed cpuid.SpeedMode

	TMR    *timer.Timer
	APU    *apu.APU
	Joypad *joypad.Joypad
	VDU    *vdu.VDU

	// the firmware running on the hardware. recreated on Reset()
	Stopwatch *stopwatch.Stopwatch

	enc stopwatch.TimeEncoding
}

// NewDMG creates a new handheld and everything associated with the hardware.
// The model request is resolved with cpuid.Probe(); the encoding is the
// numeric representation the firmware keeps the time in.
func NewDMG(model string, enc stopwatch.TimeEncoding) (*DMG, error) {
	m, err := cpuid.Probe(model)
	if err != nil {
		return nil, err
	}

	dmg := &DMG{
		Model:  m,
		Speed:  m.Speed(),
		TMR:    timer.NewTimer(),
		APU:    apu.NewAPU(),
		Joypad: joypad.NewJoypad(),
		VDU:    vdu.NewVDU(),
		enc:    enc,
	}

	logger.Logf(logger.Allow, "dmg", "%s model at %s", dmg.Model, dmg.Speed)

	if err := dmg.Reset(); err != nil {
		return nil, err
	}

	return dmg, nil
}

func (dmg *DMG) String() string {
	return fmt.Sprintf("%s: %s", dmg.Model, dmg.Stopwatch)
}

// Reset the hardware to the power-on state:
//   - configure the timer for the speed mode
//   - zero the time-of-record
//   - recreate the firmware, reattaching the interrupt service routine
//   - redraw the scene
func (dmg *DMG) Reset() error {
	dmg.TMR.Configure(dmg.Speed)
	dmg.enc.Reset()

	dmg.Stopwatch = stopwatch.NewStopwatch(dmg.TMR, dmg.APU, dmg.VDU, dmg.Joypad, dmg.enc)

	dmg.VDU.Clear()
	return dmg.Stopwatch.DrawScene()
}

// AttachMixer adds an audio mixer to the APU. More than one mixer can be
// attached.
func (dmg *DMG) AttachMixer(m apu.Mixer) {
	dmg.APU.AddMixer(m)
}

// AttachTileRenderer adds a display implementation to the VDU. More than one
// renderer can be attached.
func (dmg *DMG) AttachTileRenderer(r vdu.TileRenderer) {
	dmg.VDU.AddTileRenderer(r)
}

// End cleanly shuts down any attached mixers.
func (dmg *DMG) End() error {
	return dmg.APU.EndMixing()
}
