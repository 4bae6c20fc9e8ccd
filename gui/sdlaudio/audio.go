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

// Package sdlaudio outputs the pulse channel through SDL. It implements the
// apu.Mixer interface.
//
// If a sample pack is attached the package also implements the apu.Tracker
// interface: a triggered cue plays the recorded sample instead of the pulse
// channel, with the synthesised samples for the duration of the recording
// discarded.
package sdlaudio

import (
	"github.com/seggers/gopherwatch/curated"
	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/logger"
	"github.com/seggers/gopherwatch/samplepack"

	"github.com/veandco/go-sdl2/sdl"
)

// if the queue grows past this many samples the oldest audio is thrown away.
// it keeps latency bounded when the emulation is running faster than real
// time.
const maxQueuedSamples = apu.SampleFreq / 4

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	pack *samplepack.SamplePack

	// synthesised samples still to discard while a recorded cue plays
	suppress int

	// scratch buffer for the silence offset
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// sample pack may be nil, in which case cues play through the synthesised
// pulse channel like everything else.
func NewAudio(pack *samplepack.SamplePack) (*Audio, error) {
	aud := &Audio{pack: pack}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     apu.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	logger.Logf(logger.Allow, "sdlaudio", "%dHz mono, silence value %d", aud.spec.Freq, aud.spec.Silence)

	return aud, nil
}

// SetAudio implements the apu.Mixer interface.
func (aud *Audio) SetAudio(samples []uint8) error {
	if aud.suppress > 0 {
		if aud.suppress >= len(samples) {
			aud.suppress -= len(samples)
			return nil
		}
		samples = samples[aud.suppress:]
		aud.suppress = 0
	}

	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedSamples {
		sdl.ClearQueuedAudio(aud.id)
	}

	if cap(aud.buffer) < len(samples) {
		aud.buffer = make([]uint8, len(samples))
	}
	aud.buffer = aud.buffer[:len(samples)]
	for i, s := range samples {
		aud.buffer[i] = s + aud.spec.Silence
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// CueTrigger implements the apu.Tracker interface. The recorded sample is
// resampled to the device rate with a nearest-neighbour walk, which is fine
// for short percussive cues.
func (aud *Audio) CueTrigger(cue apu.Cue) {
	if aud.pack == nil {
		return
	}

	pcm := aud.pack.PCM(cue)
	if len(pcm) == 0 {
		return
	}

	n := len(pcm) * int(aud.spec.Freq) / aud.pack.SampleRate()
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		v := pcm[i*len(pcm)/n]
		out[i] = uint8((v+1.0)*127.5) + aud.spec.Silence - 128
	}

	if err := sdl.QueueAudio(aud.id, out); err != nil {
		logger.Logf(logger.Allow, "sdlaudio", "queueing sample: %v", err)
		return
	}

	aud.suppress = n
}

// EndMixing implements the apu.Mixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
