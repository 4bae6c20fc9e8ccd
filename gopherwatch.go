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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/seggers/gopherwatch/gui"
	"github.com/seggers/gopherwatch/gui/sdlaudio"
	"github.com/seggers/gopherwatch/gui/sdlplay"
	"github.com/seggers/gopherwatch/gui/termplay"
	"github.com/seggers/gopherwatch/hardware"
	"github.com/seggers/gopherwatch/logger"
	"github.com/seggers/gopherwatch/modalflag"
	"github.com/seggers/gopherwatch/samplepack"
	"github.com/seggers/gopherwatch/statsview"
	"github.com/seggers/gopherwatch/stopwatch"
	"github.com/seggers/gopherwatch/version"
	"github.com/seggers/gopherwatch/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this
// is required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var scr gui.GUI
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if scr != nil {
				scr.Destroy()
			}

			var err error
			scr, err = creator()
			if err != nil {
				sync.creationError <- err
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if scr != nil {
				scr.Service()
			}
		}
	}

	if scr != nil {
		scr.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "VERSION":
		vrs, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", version.ApplicationName, vrs)
		fmt.Printf("  %s\n", rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	model := md.AddString("model", "AUTO", "hardware model: AUTO, DMG, CGB")
	encoding := md.AddString("encoding", "binary", "time encoding: binary, bcd")
	guiType := md.AddString("gui", "sdl", "user interface: sdl, term, none")
	scaling := md.AddFloat64("scale", 4.0, "window scaling (sdl only)")
	fpsCap := md.AddBool("fpscap", true, "cap fps to hardware frame rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	pack := md.AddString("samplepack", "", "directory of recorded cue samples (sdl only)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	enc, err := stopwatch.NewEncoding(strings.ToLower(*encoding))
	if err != nil {
		return err
	}

	dmg, err := hardware.NewDMG(strings.ToLower(*model), enc)
	if err != nil {
		return err
	}
	defer dmg.End()

	// add wavwriter mixer if wav argument has been specified
	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		dmg.AttachMixer(aw)
	}

	// gui events are serviced in the emulation's continue check
	events := make(chan gui.Event, 2)

	switch strings.ToLower(*guiType) {
	case "sdl":
		sync.creator <- func() (gui.GUI, error) {
			return sdlplay.NewSdlPlay(dmg.VDU, dmg.Joypad, events, float32(*scaling))
		}

		var scr gui.GUI
		select {
		case scr = <-sync.creation:
		case err := <-sync.creationError:
			return err
		}

		var pk *samplepack.SamplePack
		if *pack != "" {
			pk, err = samplepack.Load(*pack)
			if err != nil {
				return err
			}
		}

		snd, err := sdlaudio.NewAudio(pk)
		if err != nil {
			return err
		}
		dmg.AttachMixer(snd)
		dmg.APU.SetTracker(snd)

		if err := scr.SetFeature(gui.ReqSetFPSCap, *fpsCap); err != nil {
			return err
		}
		if err := scr.SetFeature(gui.ReqSetVisibility, true); err != nil {
			return err
		}

	case "term":
		var trm *termplay.TermPlay
		sync.creator <- func() (gui.GUI, error) {
			var err error
			trm, err = termplay.NewTermPlay(dmg.VDU, dmg.Joypad, events)
			return trm, err
		}

		var scr gui.GUI
		select {
		case scr = <-sync.creation:
		case err := <-sync.creationError:
			return err
		}

		// no audio on a terminal. cue names flash on the status line
		dmg.APU.SetTracker(trm)

		if err := scr.SetFeature(gui.ReqSetFPSCap, *fpsCap); err != nil {
			return err
		}

	case "none":
		dmg.VDU.SetFPSCap(*fpsCap)

	default:
		return fmt.Errorf("unknown gui type (%s)", *guiType)
	}

	return dmg.Run(func() (bool, error) {
		select {
		case ev := <-events:
			if _, ok := ev.(gui.EventQuit); ok {
				return false, nil
			}
		default:
		}
		return true, nil
	})
}
