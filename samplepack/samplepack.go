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

// Package samplepack loads recorded versions of the audio cues from disk. A
// pack is a directory with one file per cue, named after the cue:
//
//	startstop.wav (or .mp3)
//	tick.wav
//	reset.wav
//
// Missing files are not an error. A cue without a recording plays through
// the synthesised pulse channel as normal.
package samplepack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/seggers/gopherwatch/curated"
	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/logger"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// sentinal errors for the Load() function.
const (
	NotAPack = "samplepack: %s: no recognised sample files"
)

// SamplePack holds the decoded PCM of the recorded cues. All recordings in a
// pack must share one sample rate.
type SamplePack struct {
	rate int
	pcm  [3][]float32
}

// file stem for each cue.
var cueFilenames = [...]string{
	apu.CueStartStop: "startstop",
	apu.CueTick:      "tick",
	apu.CueReset:     "reset",
}

// Load reads a sample pack from the given directory.
func Load(dir string) (*SamplePack, error) {
	pk := &SamplePack{}

	found := 0
	for _, cue := range []apu.Cue{apu.CueStartStop, apu.CueTick, apu.CueReset} {
		for _, ext := range []string{".wav", ".mp3"} {
			path := filepath.Join(dir, cueFilenames[cue]+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}

			pcm, rate, err := decode(path)
			if err != nil {
				return nil, err
			}

			if pk.rate != 0 && rate != pk.rate {
				return nil, curated.Errorf("samplepack: %s: sample rate %d does not match rest of pack (%d)", path, rate, pk.rate)
			}
			pk.rate = rate
			pk.pcm[cue] = pcm
			found++

			logger.Logf(logger.Allow, "samplepack", "%s: %d samples at %dHz", filepath.Base(path), len(pcm), rate)
			break
		}
	}

	if found == 0 {
		return nil, curated.Errorf(NotAPack, dir)
	}

	return pk, nil
}

// SampleRate of the recordings in the pack.
func (pk *SamplePack) SampleRate() int {
	return pk.rate
}

// PCM returns the recording for the cue, normalised to the -1.0 to 1.0
// range. A nil slice means the cue has no recording.
func (pk *SamplePack) PCM(cue apu.Cue) []float32 {
	return pk.pcm[cue]
}

func decode(path string) ([]float32, int, error) {
	switch filepath.Ext(path) {
	case ".wav":
		return decodeWav(path)
	case ".mp3":
		return decodeMp3(path)
	}
	return nil, 0, curated.Errorf("samplepack: %s: unsupported file type", path)
}

func decodeWav(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, curated.Errorf("samplepack: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf("samplepack: %s: %v", path, err)
	}

	fbuf := buf.AsFloat32Buffer()

	// fold multi-channel recordings down to the left channel
	numChans := buf.Format.NumChannels
	if numChans < 1 {
		numChans = 1
	}

	pcm := make([]float32, 0, len(fbuf.Data)/numChans)
	for i := 0; i < len(fbuf.Data); i += numChans {
		pcm = append(pcm, fbuf.Data[i])
	}

	return pcm, buf.Format.SampleRate, nil
}

func decodeMp3(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, curated.Errorf("samplepack: %v", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, curated.Errorf("samplepack: %s: %v", path, err)
	}

	// the decoder emits stereo frames of signed 16bit little-endian values.
	// only the left channel is kept
	var pcm []float32

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)

		for i := 0; i+3 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			pcm = append(pcm, float32(v)/32768.0)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, curated.Errorf("samplepack: %s: %v", path, err)
		}
	}

	return pcm, dec.SampleRate(), nil
}

func (pk *SamplePack) String() string {
	n := 0
	for _, p := range pk.pcm {
		if len(p) > 0 {
			n++
		}
	}
	return fmt.Sprintf("%d recordings at %dHz", n, pk.rate)
}
