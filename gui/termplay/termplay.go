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

// Package termplay renders the tile display on a plain posix terminal. It is
// the front end of last resort, for machines without SDL, and it doubles as
// a convenient way of eyeballing the emulation over ssh.
//
// A terminal has no key-up events so held buttons cannot be modelled; every
// keypress becomes a momentary press of the corresponding button instead.
package termplay

import (
	"os"
	"sync"

	"github.com/seggers/gopherwatch/curated"
	"github.com/seggers/gopherwatch/gui"
	"github.com/seggers/gopherwatch/gui/termplay/easyterm"
	"github.com/seggers/gopherwatch/gui/termplay/easyterm/ansi"
	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/hardware/joypad"
	"github.com/seggers/gopherwatch/hardware/vdu"
)

// how many redraws a cue name stays on the status line.
const cueFlashFrames = 30

// TermPlay is a terminal implementation of the vdu.TileRenderer interface.
type TermPlay struct {
	easyterm.Terminal

	pad *joypad.Joypad
	scr *vdu.VDU

	events chan<- gui.Event

	// bytes read from the terminal by the input goroutine
	keys chan byte

	crit struct {
		section sync.Mutex
		grid    vdu.Grid
		dirty   bool

		// there is no audio on a terminal. triggered cues flash their name
		// on the status line instead
		cue      string
		cueFlash int
	}
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type.
func NewTermPlay(scr *vdu.VDU, pad *joypad.Joypad, events chan<- gui.Event) (*TermPlay, error) {
	trm := &TermPlay{
		pad:    pad,
		scr:    scr,
		events: events,
		keys:   make(chan byte, 8),
	}

	if err := trm.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	trm.RawMode()
	trm.Print(ansi.CursorHide)
	trm.Print(ansi.ClearScreen)

	// keypresses are read on a dedicated goroutine. reads block so there is
	// no way of cleanly stopping it; it dies with the process
	go func() {
		b := make([]byte, 1)
		for {
			if n, err := os.Stdin.Read(b); err != nil || n == 0 {
				return
			}
			trm.keys <- b[0]
		}
	}()

	scr.AddTileRenderer(trm)

	return trm, nil
}

// NewFrame implements the vdu.TileRenderer interface.
//
// called from the emulation goroutine.
func (trm *TermPlay) NewFrame(grid vdu.Grid, frameNum int) error {
	trm.crit.section.Lock()
	defer trm.crit.section.Unlock()
	trm.crit.grid = grid
	trm.crit.dirty = true
	return nil
}

// CueTrigger implements the apu.Tracker interface.
//
// called from the emulation goroutine.
func (trm *TermPlay) CueTrigger(cue apu.Cue) {
	trm.crit.section.Lock()
	defer trm.crit.section.Unlock()
	trm.crit.cue = cue.String()
	trm.crit.cueFlash = cueFlashFrames
}

func (trm *TermPlay) redraw() {
	trm.crit.section.Lock()
	grid := trm.crit.grid
	dirty := trm.crit.dirty
	trm.crit.dirty = false
	status := ""
	if trm.crit.cueFlash > 0 {
		trm.crit.cueFlash--
		status = trm.crit.cue
	}
	trm.crit.section.Unlock()

	if !dirty {
		return
	}

	trm.Print(ansi.CursorHome)
	trm.Print(ansi.GreenPen)
	for y := 0; y < vdu.Rows; y++ {
		line := make([]byte, vdu.Cols)
		for x := 0; x < vdu.Cols; x++ {
			line[x] = vdu.TileToChar(grid[y][x])
		}
		// raw mode means no output post-processing, so the carriage return
		// is explicit
		trm.Print("%s\r\n", line)
	}
	trm.Print(ansi.NormalPen)
	trm.Print(ansi.DimPen)
	trm.Print("%-20s\r\n", status)
	trm.Print(ansi.NormalPen)
}

// Service implements the gui.GUI interface.
func (trm *TermPlay) Service() {
	empty := false
	for !empty {
		select {
		case k := <-trm.keys:
			switch k {
			case ' ', 'a', '\r':
				trm.pad.Press(joypad.A)
			case 'b', 'r', 127:
				trm.pad.Press(joypad.B)
			case 'q', 3, 27: // ctrl-c and escape
				trm.events <- gui.EventQuit{}
			}
		default:
			empty = true
		}
	}

	trm.redraw()
}

// SetFeature implements the gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetFPSCap:
		trm.scr.SetFPSCap(args[0].(bool))

	case gui.ReqSetVisibility:
		// a terminal is always visible. accepted and ignored

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Destroy implements the gui.GUI interface.
func (trm *TermPlay) Destroy() {
	trm.Print(ansi.CursorShow)
	trm.Print(ansi.NormalPen)
	trm.CleanUp()
}
