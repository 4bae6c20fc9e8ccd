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

// Package stopwatch is the firmware of the stopwatch device. It ties the
// hardware together: the timer interrupt advances the time-of-record, the
// two buttons drive the Idle/Running state machine, and the display is
// redrawn once per frame.
//
// The interrupt service routine is the sole writer of the time-of-record and
// of the tick cue flag; the frame handler is the sole writer of the run flag
// and the sole reader of the time-of-record. Both run on the emulation
// goroutine so the firmware's interrupt-masking discipline becomes simple
// sequencing here.
package stopwatch

import (
	"fmt"

	"github.com/seggers/gopherwatch/curated"
	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/hardware/joypad"
	"github.com/seggers/gopherwatch/hardware/timer"
	"github.com/seggers/gopherwatch/hardware/vdu"
	"github.com/seggers/gopherwatch/logger"
)

// screen positions of the stopwatch scene. the time is drawn as
// "mm:ss:hh" starting at timeX; the cell immediately after the final digit
// is blanked every frame.
const (
	timeX    = 6
	timeY    = 6
	minutesX = timeX
	secondsX = timeX + 3
	subUnitX = timeX + 6
	safetyX  = timeX + 8

	labelX        = 5
	actionX       = 10
	confirmLabelY = 15
	cancelLabelY  = 16
)

// Stopwatch implements the Idle/Running state machine and the per-frame
// servicing of input, display and sound.
type Stopwatch struct {
	tmr *timer.Timer
	aud *apu.APU
	scr *vdu.VDU
	pad *joypad.Joypad

	enc TimeEncoding

	// whether the stopwatch is running. gates the increment logic in the ISR
	running bool

	// set by the ISR on every second rollover; consumed by the frame handler
	// at most once per occurrence. a single flag, not a queue: bursts
	// coalesce, which is fine for a once-per-second audible cue
	tickCue bool

	// the button mask of the previous frame, for edge detection
	prevMask joypad.Button
}

// NewStopwatch is the preferred method of initialisation for the Stopwatch
// type. The ISR is registered with the timer here; the timer must already be
// configured.
func NewStopwatch(tmr *timer.Timer, aud *apu.APU, scr *vdu.VDU, pad *joypad.Joypad, enc TimeEncoding) *Stopwatch {
	sw := &Stopwatch{
		tmr: tmr,
		aud: aud,
		scr: scr,
		pad: pad,
		enc: enc,
	}
	sw.tmr.RegisterISR(sw.tickISR)

	logger.Logf(logger.Allow, "stopwatch", "%s encoding, %d ticks per second", enc.Name(), enc.TicksPerSecond())

	return sw
}

func (sw *Stopwatch) String() string {
	m, s, t := sw.enc.Elapsed()
	state := "idle"
	if sw.running {
		state = "running"
	}
	return fmt.Sprintf("%02d:%02d +%d (%s)", m, s, t, state)
}

// IsRunning returns true if the stopwatch is counting.
func (sw *Stopwatch) IsRunning() bool {
	return sw.running
}

// Elapsed returns the time-of-record in plain binary form.
func (sw *Stopwatch) Elapsed() (minutes int, seconds int, subUnits int) {
	return sw.enc.Elapsed()
}

// Encoding returns the TimeEncoding in use.
func (sw *Stopwatch) Encoding() TimeEncoding {
	return sw.enc
}

// tickISR is the timer interrupt service routine. one invocation is exactly
// one sub-unit of elapsed time.
func (sw *Stopwatch) tickISR() {
	if !sw.running {
		return
	}
	if sw.enc.Tick() {
		sw.tickCue = true
	}
}

// DrawScene draws the static parts of the display: the header, the zeroed
// time and the button labels.
func (sw *Stopwatch) DrawScene() error {
	for _, p := range []struct {
		x, y int
		s    string
	}{
		{1, 1, "GOPHERWATCH :"},
		{1, 2, "------------------"},
		{timeX, timeY, "00:00:00"},
		{1, 14, "------------------"},
		{labelX, confirmLabelY, "A:   Start"},
		{labelX, cancelLabelY, "B:   Reset"},
	} {
		if err := sw.scr.Print(p.x, p.y, p.s); err != nil {
			return curated.Errorf("stopwatch: %v", err)
		}
	}
	return nil
}

// start the timer counting. the partial tick preserved by an earlier pause
// is resumed, not discarded.
func (sw *Stopwatch) start() error {
	sw.tmr.Start()
	sw.running = true

	sw.aud.PlayCue(apu.CueStartStop)

	if err := sw.scr.Print(actionX, confirmLabelY, "Stop "); err != nil {
		return curated.Errorf("stopwatch: %v", err)
	}
	if err := sw.scr.Print(labelX, cancelLabelY, "          "); err != nil {
		return curated.Errorf("stopwatch: %v", err)
	}
	return nil
}

// pause the timer. the in-flight partial tick is preserved so that resuming
// picks up mid-cycle.
func (sw *Stopwatch) pause() error {
	sw.tmr.Stop()
	sw.running = false

	sw.aud.PlayCue(apu.CueStartStop)

	if err := sw.scr.Print(actionX, confirmLabelY, "Start"); err != nil {
		return curated.Errorf("stopwatch: %v", err)
	}
	if err := sw.scr.Print(labelX, cancelLabelY, "B:   Reset"); err != nil {
		return curated.Errorf("stopwatch: %v", err)
	}
	return nil
}

// reset the time to zero and redraw the display immediately. only ever
// called while idle; the frame handler never dispatches it while running.
func (sw *Stopwatch) reset() error {
	sw.aud.PlayCue(apu.CueReset)

	sw.enc.Reset()

	if err := sw.scr.Print(timeX, timeY, "00:00:00"); err != nil {
		return curated.Errorf("stopwatch: %v", err)
	}
	return nil
}

// drawTime redraws the three numeric fields. it runs every frame while the
// stopwatch is running, whether or not the counters have changed; that is
// cheaper and simpler than change detection.
func (sw *Stopwatch) drawTime() error {
	for _, f := range []struct {
		x      int
		digits [2]byte
	}{
		{minutesX, sw.enc.MinutesDigits()},
		{secondsX, sw.enc.SecondsDigits()},
		{subUnitX, sw.enc.SubUnitDigits()},
	} {
		if err := sw.scr.WriteTile(f.x, timeY, vdu.CharToTile(f.digits[0])); err != nil {
			return curated.Errorf("stopwatch: %v", err)
		}
		if err := sw.scr.WriteTile(f.x+1, timeY, vdu.CharToTile(f.digits[1])); err != nil {
			return curated.Errorf("stopwatch: %v", err)
		}
	}

	// the cell after the last digit is blanked unconditionally. the digit
	// conversion is bounded to two digits so nothing of ours can ever be
	// there, but the blank also recovers from anything else that scribbles
	// on the cell
	if err := sw.scr.WriteTile(safetyX, timeY, vdu.BlankTile); err != nil {
		return curated.Errorf("stopwatch: %v", err)
	}

	return nil
}

// Frame services the stopwatch once per frame: button edges are fed to the
// state machine, the display is redrawn and the tick cue consumed.
func (sw *Stopwatch) Frame() error {
	curr := sw.pad.Strobe()
	edges := joypad.Edges(sw.prevMask, curr)
	sw.prevMask = curr

	if edges&joypad.A == joypad.A {
		var err error
		if sw.running {
			err = sw.pause()
		} else {
			err = sw.start()
		}
		if err != nil {
			return err
		}
	}

	// reset is only recognised while idle. while running the transition
	// does not exist at all
	if edges&joypad.B == joypad.B && !sw.running {
		if err := sw.reset(); err != nil {
			return err
		}
	}

	if sw.running {
		if err := sw.drawTime(); err != nil {
			return err
		}

		if sw.tickCue {
			sw.aud.PlayCue(apu.CueTick)
			sw.tickCue = false
		}
	}

	return nil
}
