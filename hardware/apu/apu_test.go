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

package apu_test

import (
	"testing"

	"github.com/seggers/gopherwatch/hardware/apu"
	"github.com/seggers/gopherwatch/test"
)

func TestPlayCueRegisters(t *testing.T) {
	au := apu.NewAPU()
	au.PlayCue(apu.CueStartStop)

	test.Equate(t, au.Registers[apu.NR10], 0x17)
	test.Equate(t, au.Registers[apu.NR11], 0x42)
	test.Equate(t, au.Registers[apu.NR12], 0xd5)
	test.Equate(t, au.Registers[apu.NR13], 0x37)
	test.Equate(t, au.Registers[apu.NR14], 0x87)
	test.Equate(t, au.MasterVolume, 0x77)

	// the tick cue plays at low volume
	au.PlayCue(apu.CueTick)
	test.Equate(t, au.MasterVolume, 0x11)
}

// one emulated second of samples

func TestCueProducesSound(t *testing.T) {
	for _, cue := range []apu.Cue{apu.CueStartStop, apu.CueTick, apu.CueReset} {
		au := apu.NewAPU()
		au.PlayCue(cue)

		sounding := 0
		for i := 0; i < apu.SampleFreq; i++ {
			if au.Step() > 0 {
				sounding++
			}
		}

		// every cue makes a noise
		if sounding == 0 {
			t.Errorf("cue %s produced no samples", cue)
		}

		// and every cue is a short effect that ends well within a second
		if sounding > apu.SampleFreq/2 {
			t.Errorf("cue %s still sounding after half a second", cue)
		}

		// once ended the channel stays silent
		for i := 0; i < 100; i++ {
			test.Equate(t, au.Step(), 0)
		}
	}
}

func TestLengthCounter(t *testing.T) {
	au := apu.NewAPU()

	// a steady tone, no sweep or envelope decay, cut off by the length
	// counter after (64-32)/256 of a second
	au.WriteRegister(apu.NR50, 0x77)
	au.WriteRegister(apu.NR10, 0x00)
	au.WriteRegister(apu.NR11, 0x80|0x20)
	au.WriteRegister(apu.NR12, 0xf0)
	au.WriteRegister(apu.NR13, 0x37)
	au.WriteRegister(apu.NR14, 0x80|0x40|0x07)

	expected := (64 - 32) * apu.SampleFreq / 256

	sounding := 0
	for i := 0; i < apu.SampleFreq; i++ {
		if au.Step() > 0 {
			sounding++
		}
	}

	if sounding == 0 {
		t.Fatalf("length-limited tone produced no samples")
	}
	if sounding > expected {
		t.Fatalf("tone still sounding after the length counter expired (%d > %d samples)", sounding, expected)
	}
}

func TestSilenceBeforeTrigger(t *testing.T) {
	au := apu.NewAPU()
	for i := 0; i < 100; i++ {
		test.Equate(t, au.Step(), 0)
	}
}

func TestMasterEnable(t *testing.T) {
	au := apu.NewAPU()
	au.PlayCue(apu.CueReset)
	au.WriteRegister(apu.NR52, 0x00)
	for i := 0; i < 100; i++ {
		test.Equate(t, au.Step(), 0)
	}
}

type cueRecorder struct {
	cues []apu.Cue
}

func (rec *cueRecorder) CueTrigger(cue apu.Cue) {
	rec.cues = append(rec.cues, cue)
}

func TestTracker(t *testing.T) {
	au := apu.NewAPU()
	rec := &cueRecorder{}
	au.SetTracker(rec)

	au.PlayCue(apu.CueStartStop)
	au.PlayCue(apu.CueReset)

	test.Equate(t, len(rec.cues), 2)
	test.Equate(t, rec.cues[0].String(), "start/stop")
	test.Equate(t, rec.cues[1].String(), "reset")
}

func TestSampleHeadroom(t *testing.T) {
	au := apu.NewAPU()

	// a steady tone at maximum channel and master volume. samples must
	// leave headroom for an unsigned device silence offset of 0x80 or the
	// loud phase of a cue wraps below the silence level
	au.WriteRegister(apu.NR50, 0x77)
	au.WriteRegister(apu.NR10, 0x00)
	au.WriteRegister(apu.NR11, 0x80)
	au.WriteRegister(apu.NR12, 0xf0)
	au.WriteRegister(apu.NR13, 0x37)
	au.WriteRegister(apu.NR14, 0x87)

	peak := uint8(0)
	for i := 0; i < apu.SampleFreq; i++ {
		if s := au.Step(); s > peak {
			peak = s
		}
	}

	if peak == 0 {
		t.Fatalf("no sound from a maximum volume tone")
	}
	if peak > 127 {
		t.Fatalf("sample value %d overflows when offset to unsigned", peak)
	}
}
