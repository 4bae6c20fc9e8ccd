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

	"github.com/seggers/gopherwatch/curated"
	"github.com/seggers/gopherwatch/stopwatch"
	"github.com/seggers/gopherwatch/test"
)

func TestNewEncoding(t *testing.T) {
	enc, err := stopwatch.NewEncoding("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, enc.Name(), "binary")

	enc, err = stopwatch.NewEncoding("binary")
	test.ExpectedSuccess(t, err)
	test.Equate(t, enc.Name(), "binary")
	test.Equate(t, enc.TicksPerSecond(), 100)

	enc, err = stopwatch.NewEncoding("bcd")
	test.ExpectedSuccess(t, err)
	test.Equate(t, enc.Name(), "bcd")
	test.Equate(t, enc.TicksPerSecond(), 128)

	_, err = stopwatch.NewEncoding("roman")
	if test.ExpectedFailure(t, err) {
		test.ExpectedSuccess(t, curated.Is(err, stopwatch.UnknownEncoding))
	}
}

func TestBinaryCarries(t *testing.T) {
	enc := stopwatch.NewBinaryEncoding()

	// the rollover return value fires on exactly the tick that advances the
	// seconds field
	for i := 0; i < 99; i++ {
		test.Equate(t, enc.Tick(), false)
	}
	test.Equate(t, enc.Tick(), true)

	m, s, h := enc.Elapsed()
	test.Equate(t, m, 0)
	test.Equate(t, s, 1)
	test.Equate(t, h, 0)

	// to one second before the minute boundary
	for i := 0; i < 58*100+99; i++ {
		enc.Tick()
	}
	m, s, h = enc.Elapsed()
	test.Equate(t, m, 0)
	test.Equate(t, s, 59)
	test.Equate(t, h, 99)

	// a single tick carries through both fields
	test.Equate(t, enc.Tick(), true)
	m, s, h = enc.Elapsed()
	test.Equate(t, m, 1)
	test.Equate(t, s, 0)
	test.Equate(t, h, 0)
}

func TestBinaryMinutesWrap(t *testing.T) {
	enc := stopwatch.NewBinaryEncoding()

	// one full hour. minutes wrap silently to zero
	for i := 0; i < 60*60*100; i++ {
		enc.Tick()
	}
	m, s, h := enc.Elapsed()
	test.Equate(t, m, 0)
	test.Equate(t, s, 0)
	test.Equate(t, h, 0)
}

func TestBinaryDigitsBounded(t *testing.T) {
	enc := stopwatch.NewBinaryEncoding()

	// whatever the elapsed time, every field converts to exactly two ASCII
	// digits. sampled over a full hour with a stride that is coprime to the
	// carry boundaries
	for i := 0; i < 60*60*100; i += 7 {
		for j := 0; j < 7; j++ {
			enc.Tick()
		}
		for _, d := range [][2]byte{enc.MinutesDigits(), enc.SecondsDigits(), enc.SubUnitDigits()} {
			if d[0] < '0' || d[0] > '9' || d[1] < '0' || d[1] > '9' {
				t.Fatalf("non-digit in conversion after %d ticks: %q", i+7, d)
			}
		}
	}
}

func TestBinaryReset(t *testing.T) {
	enc := stopwatch.NewBinaryEncoding()

	for i := 0; i < 12345; i++ {
		enc.Tick()
	}
	enc.Reset()

	m, s, h := enc.Elapsed()
	test.Equate(t, m, 0)
	test.Equate(t, s, 0)
	test.Equate(t, h, 0)
	d := enc.MinutesDigits()
	test.Equate(t, string(d[:]), "00")
}
