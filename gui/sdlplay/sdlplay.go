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

// Package sdlplay is the SDL implementation of the vdu.TileRenderer
// interface. Tiles are rasterised through the glyph table into a streaming
// texture which is presented from the Service() function.
//
// The two SDL-facing functions, Service() and Destroy(), MUST be called from
// the main goroutine. NewFrame() on the other hand is called from the
// emulation goroutine; the received grid is kept in a critical section until
// Service() picks it up.
package sdlplay

import (
	"sync"

	"github.com/seggers/gopherwatch/curated"
	"github.com/seggers/gopherwatch/gui"
	"github.com/seggers/gopherwatch/hardware/joypad"
	"github.com/seggers/gopherwatch/hardware/vdu"
	"github.com/seggers/gopherwatch/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4
const tileSize = 8

const (
	screenWidth  = vdu.Cols * tileSize
	screenHeight = vdu.Rows * tileSize
)

// the two colours of the LCD panel.
var paper = [3]byte{0x9b, 0xbc, 0x0f}
var pen = [3]byte{0x0f, 0x38, 0x0f}

// SdlPlay is an SDL implementation of the vdu.TileRenderer interface.
type SdlPlay struct {
	pad *joypad.Joypad
	scr *vdu.VDU

	// connects the SDL event loop with the parent process
	events chan<- gui.Event

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array we copy to the texture before applying to the
	// renderer. it is equal to screenWidth * screenHeight * pixelDepth
	pixels []byte

	scale float32

	// functions that need to be performed on the main goroutine are queued
	// here and run by Service()
	service chan func()

	// the most recent grid from the emulation goroutine
	crit struct {
		section sync.Mutex
		grid    vdu.Grid
		dirty   bool
	}
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main goroutine.
func NewSdlPlay(scr *vdu.VDU, pad *joypad.Joypad, events chan<- gui.Event, scale float32) (*SdlPlay, error) {
	spl := &SdlPlay{
		pad:     pad,
		scr:     scr,
		events:  events,
		scale:   scale,
		pixels:  make([]byte, screenWidth*screenHeight*pixelDepth),
		service: make(chan func(), 8),
	}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	var err error

	spl.window, err = sdl.CreateWindow("Gopherwatch",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(screenWidth)*scale), int32(float32(screenHeight)*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	spl.renderer, err = sdl.CreateRenderer(spl.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	spl.texture, err = spl.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), screenWidth, screenHeight)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	_ = spl.renderer.SetLogicalSize(screenWidth, screenHeight)

	// register ourselves as a tile renderer
	scr.AddTileRenderer(spl)

	setupService()

	logger.Logf(logger.Allow, "sdlplay", "%dx%d window at %.1fx scale", screenWidth, screenHeight, scale)

	return spl, nil
}

// NewFrame implements the vdu.TileRenderer interface.
//
// called from the emulation goroutine.
func (spl *SdlPlay) NewFrame(grid vdu.Grid, frameNum int) error {
	spl.crit.section.Lock()
	defer spl.crit.section.Unlock()
	spl.crit.grid = grid
	spl.crit.dirty = true
	return nil
}

// rasterise the grid into the pixel array. a tile is looked up in the glyph
// table through its character equivalent; tiles without a glyph render
// blank.
func (spl *SdlPlay) rasterise(grid vdu.Grid) {
	for y := 0; y < vdu.Rows; y++ {
		for x := 0; x < vdu.Cols; x++ {
			bits := glyphs[vdu.TileToChar(grid[y][x])]
			for py := 0; py < tileSize; py++ {
				row := bits[py]
				base := ((y*tileSize+py)*screenWidth + x*tileSize) * pixelDepth
				for px := 0; px < tileSize; px++ {
					col := paper
					if row&(0x80>>px) != 0 {
						col = pen
					}
					spl.pixels[base] = col[0]
					spl.pixels[base+1] = col[1]
					spl.pixels[base+2] = col[2]
					spl.pixels[base+3] = 0xff
					base += pixelDepth
				}
			}
		}
	}
}

// redraw presents the most recent grid, if there is a new one.
//
// MUST ONLY be called from the main goroutine.
func (spl *SdlPlay) redraw() {
	spl.crit.section.Lock()
	grid := spl.crit.grid
	dirty := spl.crit.dirty
	spl.crit.dirty = false
	spl.crit.section.Unlock()

	if !dirty {
		return
	}

	spl.rasterise(grid)

	_ = spl.texture.Update(nil, spl.pixels, screenWidth*pixelDepth)
	_ = spl.renderer.Copy(spl.texture, nil, nil)
	spl.renderer.Present()
}

// SetFeature implements the gui.GUI interface. window operations are queued
// for the Service() function rather than performed immediately, SDL not
// being happy about windows touched from anywhere but the main goroutine.
func (spl *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		visible := args[0].(bool)
		spl.service <- func() {
			if visible {
				spl.window.Show()
			} else {
				spl.window.Hide()
			}
		}

	case gui.ReqSetScale:
		scale := args[0].(float32)
		spl.service <- func() {
			spl.scale = scale
			spl.window.SetSize(int32(float32(screenWidth)*scale), int32(float32(screenHeight)*scale))
		}

	case gui.ReqSetFPSCap:
		// the limiter is safe to poke from any goroutine
		spl.scr.SetFPSCap(args[0].(bool))

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main goroutine.
func (spl *SdlPlay) Destroy() {
	_ = spl.texture.Destroy()
	_ = spl.renderer.Destroy()
	_ = spl.window.Destroy()
	sdl.Quit()
}
