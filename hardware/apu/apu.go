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

// Package apu implements the tone generator of the DMG handheld, reduced to
// the single pulse channel the stopwatch firmware uses. The channel is driven
// entirely through its five registers; the firmware never reads them back.
//
// Sound output is a stream of unsigned 8bit samples produced by the Step()
// function and forwarded to every registered Mixer.
package apu

import (
	"strings"
)

// SampleFreq is the rate at which the Step() function produces samples.
const SampleFreq = 32768

// Mixer implementations receive the sample stream produced by the APU. For
// example, sdlaudio.Audio and wavwriter.WavWriter.
type Mixer interface {
	// SetAudio is called once per frame with the frame's worth of samples
	SetAudio(samples []uint8) error

	// EndMixing is called at the end of emulation
	EndMixing() error
}

// Tracker implementations are notified of every cue trigger. Front ends that
// play sampled cues rather than the synthesised channel use this.
type Tracker interface {
	CueTrigger(cue Cue)
}

// APU is the implementation of the tone generator.
type APU struct {
	// the five channel registers. write-only as far as the firmware is
	// concerned
	Registers [5]uint8

	// master volume (NR50 equivalent). both nibbles carry the same value in
	// practice; only the low nibble is used for output scaling
	MasterVolume uint8

	// master enable (NR52 equivalent). set once at power-on
	Enabled bool

	channel channel

	mixers  []Mixer
	tracker Tracker
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU() *APU {
	apu := &APU{
		Enabled:      true,
		MasterVolume: 0x77,
	}
	return apu
}

func (au *APU) String() string {
	s := strings.Builder{}
	s.WriteString("ch: ")
	s.WriteString(au.channel.String())
	return s.String()
}

// AddMixer registers a Mixer implementation with the APU.
func (au *APU) AddMixer(m Mixer) {
	au.mixers = append(au.mixers, m)
}

// SetTracker adds a Tracker implementation to the APU. The addition of a
// tracker is not required.
func (au *APU) SetTracker(tracker Tracker) {
	au.tracker = tracker
}

// Mix forwards a frame's worth of samples to every registered mixer. The
// sample slice is only valid for the duration of the call.
func (au *APU) Mix(samples []uint8) error {
	for _, m := range au.mixers {
		if err := m.SetAudio(samples); err != nil {
			return err
		}
	}
	return nil
}

// EndMixing tells every registered mixer that the emulation has ended.
func (au *APU) EndMixing() error {
	var rerr error
	for _, m := range au.mixers {
		if err := m.EndMixing(); err != nil {
			rerr = err
		}
	}
	return rerr
}

// Step the channel forward one sample period, returning the sample.
func (au *APU) Step() uint8 {
	if !au.Enabled {
		return 0
	}
	return au.channel.step(au.MasterVolume & 0x07)
}
