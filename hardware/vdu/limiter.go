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

package vdu

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/seggers/gopherwatch/hardware/clocks"
)

// limiter paces the emulation to the refresh rate of the display.
type limiter struct {
	// whether to wait for the frame pulse each frame
	activeFlag atomic.Value // bool

	// the measured number of frames per second
	actualFPS atomic.Value // float32

	// pulse that performs the limiting
	pulse *time.Ticker

	// measurement
	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

func (lmtr *limiter) init() {
	lmtr.activeFlag.Store(true)
	lmtr.actualFPS.Store(float32(0))

	rate := float32(1000000.0) / clocks.FramesPerSecond
	dur, _ := time.ParseDuration(fmt.Sprintf("%fus", rate))
	lmtr.pulse = time.NewTicker(dur)

	lmtr.measureTime = time.Now()
	lmtr.measuringPulse = time.NewTicker(time.Second)
}

func (lmtr *limiter) setActive(active bool) {
	lmtr.activeFlag.Store(active)
}

func (lmtr *limiter) actual() float32 {
	return lmtr.actualFPS.Load().(float32)
}

// checkFrame should be called every frame.
func (lmtr *limiter) checkFrame() {
	lmtr.measureCt++

	if lmtr.activeFlag.Load().(bool) {
		<-lmtr.pulse.C
	}

	// measure actual frame rate
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actualFPS.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureCt = 0
		lmtr.measureTime = t
	default:
	}
}
