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

package stopwatch_test

import (
	"testing"

	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/hardware/cpuid"
	"github.com/seggers/gopherwatch/hardware/joypad"
	"github.com/seggers/gopherwatch/hardware/timer"
	"github.com/seggers/gopherwatch/hardware/vdu"
	"github.com/seggers/gopherwatch/stopwatch"
	"github.com/seggers/gopherwatch/test"
)

// cueRecorder implements the apu.Tracker interface.
type cueRecorder struct {
	cues []apu.Cue
}

func (rec *cueRecorder) CueTrigger(cue apu.Cue) {
	rec.cues = append(rec.cues, cue)
}

func (rec *cueRecorder) count(cue apu.Cue) int {
	n := 0
	for _, c := range rec.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type rig struct {
	tmr *timer.Timer
	aud *apu.APU
	scr *vdu.VDU
	pad *joypad.Joypad
	sw  *stopwatch.Stopwatch
	rec *cueRecorder

	// cycles of one sub-unit at the configured speed
	period int
}

func newRig(t *testing.T, encoding string) *rig {
	t.Helper()

	r := &rig{
		tmr: timer.NewTimer(),
		aud: apu.NewAPU(),
		scr: vdu.NewVDU(),
		pad: joypad.NewJoypad(),
		rec: &cueRecorder{},
	}
	r.scr.SetFPSCap(false)
	r.aud.SetTracker(r.rec)
	r.tmr.Configure(cpuid.NormalSpeed)
	r.period = 256 * (256 - 0x5c)

	enc, err := stopwatch.NewEncoding(encoding)
	test.ExpectedSuccess(t, err)

	r.sw = stopwatch.NewStopwatch(r.tmr, r.aud, r.scr, r.pad, enc)
	test.ExpectedSuccess(t, r.sw.DrawScene())

	return r
}

// tick steps the timer by the given number of whole sub-units.
func (r *rig) tick(n int) {
	r.tmr.Step(n * r.period)
}

// frame runs one frame of the stopwatch.
func (r *rig) frame(t *testing.T) {
	t.Helper()
	test.ExpectedSuccess(t, r.sw.Frame())
}

// press a button and service the resulting frame, plus one more frame so
// the release is observed before the next press.
func (r *rig) press(t *testing.T, b joypad.Button) {
	t.Helper()
	r.pad.Press(b)
	r.frame(t)
	r.frame(t)
}

// timeField reads the eight display cells of the time.
func (r *rig) timeField() string {
	s := make([]byte, 0, 8)
	for x := 6; x <= 13; x++ {
		s = append(s, vdu.TileToChar(r.scr.Tile(x, 6)))
	}
	return string(s)
}

func TestScene(t *testing.T) {
	r := newRig(t, "binary")

	test.Equate(t, r.timeField(), "00:00:00")

	// header and button labels
	test.Equate(t, vdu.TileToChar(r.scr.Tile(1, 1)), uint8('G'))
	test.Equate(t, vdu.TileToChar(r.scr.Tile(5, 15)), uint8('A'))
	test.Equate(t, vdu.TileToChar(r.scr.Tile(5, 16)), uint8('B'))
}

func TestIdleDoesNotCount(t *testing.T) {
	r := newRig(t, "binary")

	// the timer is stopped until the first press of the confirm button so
	// stepping advances nothing
	r.tick(500)
	r.frame(t)

	test.Equate(t, r.sw.IsRunning(), false)
	test.Equate(t, r.timeField(), "00:00:00")
}

func TestRunAndDisplay(t *testing.T) {
	r := newRig(t, "binary")

	r.press(t, joypad.A)
	test.Equate(t, r.sw.IsRunning(), true)

	// one minute of sub-units in a single step
	r.tick(6000)
	r.frame(t)
	test.Equate(t, r.timeField(), "01:00:00")

	r.tick(123)
	r.frame(t)
	test.Equate(t, r.timeField(), "01:01:23")

	// the action label switched when the stopwatch started and the reset
	// label disappeared
	test.Equate(t, vdu.TileToChar(r.scr.Tile(10, 15)), uint8('S'))
	test.Equate(t, vdu.TileToChar(r.scr.Tile(11, 15)), uint8('t'))
	test.Equate(t, r.scr.Tile(5, 16), int(vdu.BlankTile))
}

func TestPauseFreezes(t *testing.T) {
	r := newRig(t, "binary")

	r.press(t, joypad.A)
	r.tick(250)
	r.frame(t)
	test.Equate(t, r.timeField(), "00:02:50")

	r.press(t, joypad.A)
	test.Equate(t, r.sw.IsRunning(), false)

	// the timer is stopped so further stepping and servicing changes
	// nothing on screen
	for i := 0; i < 100; i++ {
		r.tick(10)
		r.frame(t)
	}
	test.Equate(t, r.timeField(), "00:02:50")

	// the reset label is back
	test.Equate(t, vdu.TileToChar(r.scr.Tile(5, 16)), uint8('B'))
}

func TestResumePreservesPhase(t *testing.T) {
	r := newRig(t, "binary")

	r.press(t, joypad.A)

	// stop the timer midway through a sub-unit
	r.tmr.Step(r.period / 2)
	r.press(t, joypad.A)
	r.press(t, joypad.A)

	// the partial count survives the pause. half a period completes the
	// sub-unit exactly
	r.tmr.Step(r.period/2 - 1)
	r.frame(t)
	test.Equate(t, r.timeField(), "00:00:00")

	r.tmr.Step(1)
	r.frame(t)
	test.Equate(t, r.timeField(), "00:00:01")
}

func TestResetOnlyWhenIdle(t *testing.T) {
	r := newRig(t, "binary")

	r.press(t, joypad.A)
	r.tick(777)
	r.frame(t)
	test.Equate(t, r.timeField(), "00:07:77")

	// while running the cancel button does nothing at all
	r.press(t, joypad.B)
	test.Equate(t, r.sw.IsRunning(), true)
	test.Equate(t, r.timeField(), "00:07:77")
	test.Equate(t, r.rec.count(apu.CueReset), 0)

	// pause and reset
	r.press(t, joypad.A)
	r.press(t, joypad.B)
	test.Equate(t, r.timeField(), "00:00:00")
	test.Equate(t, r.rec.count(apu.CueReset), 1)

	m, s, h := r.sw.Elapsed()
	test.Equate(t, m, 0)
	test.Equate(t, s, 0)
	test.Equate(t, h, 0)
}

func TestCues(t *testing.T) {
	r := newRig(t, "binary")

	r.press(t, joypad.A)
	test.Equate(t, r.rec.count(apu.CueStartStop), 1)

	// a second rollover raises the tick cue; it plays on the next frame and
	// only once however many frames follow
	r.tick(100)
	r.frame(t)
	test.Equate(t, r.rec.count(apu.CueTick), 1)

	r.frame(t)
	r.frame(t)
	test.Equate(t, r.rec.count(apu.CueTick), 1)

	// several rollovers between frames coalesce into a single cue
	r.tick(300)
	r.frame(t)
	test.Equate(t, r.rec.count(apu.CueTick), 2)

	r.press(t, joypad.A)
	test.Equate(t, r.rec.count(apu.CueStartStop), 2)
}

func TestBCDDisplay(t *testing.T) {
	r := newRig(t, "bcd")

	r.press(t, joypad.A)

	// 90 seconds at 128 sub-units per second
	r.tick(90 * 128)
	r.frame(t)
	test.Equate(t, r.timeField(), "01:30:00")

	// 64 sub-units display as 50 hundredths
	r.tick(64)
	r.frame(t)
	test.Equate(t, r.timeField(), "01:30:50")
}

func TestSafetyBlank(t *testing.T) {
	r := newRig(t, "binary")

	// scribble on the cell after the time field. the next running frame
	// restores the blank
	test.ExpectedSuccess(t, r.scr.WriteTile(14, 6, vdu.CharToTile('X')))

	r.press(t, joypad.A)
	r.tick(1)
	r.frame(t)

	test.Equate(t, r.scr.Tile(14, 6), int(vdu.BlankTile))
}
