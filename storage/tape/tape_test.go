// This file is part of Gopher8bit.
//
// Gopher8bit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8bit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8bit.  If not, see <https://www.gnu.org/licenses/>.

package tape_test

import (
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/storage/tape"
	"github.com/jetsetilly/gopher8bit/test"
)

type collector struct {
	pulses []tape.Pulse
}

func (c *collector) ProcessInputPulse(p tape.Pulse) {
	c.pulses = append(c.pulses, p)
}

func TestPulseTape(t *testing.T) {
	pulses := []tape.Pulse{
		{Type: tape.High, Length: time.Millisecond},
		{Type: tape.Low, Length: time.Millisecond},
	}
	pt := tape.NewPulseTape(pulses)
	test.ExpectEquality(t, pt.Len(), 2)
	test.ExpectEquality(t, pt.Duration(), 2*time.Millisecond)

	test.ExpectEquality(t, pt.NextPulse(), pulses[0])
	test.ExpectEquality(t, pt.NextPulse(), pulses[1])
	test.ExpectSuccess(t, pt.AtEnd())
	test.ExpectEquality(t, pt.NextPulse().Type, tape.Zero)

	pt.Rewind()
	test.ExpectFailure(t, pt.AtEnd())
	test.ExpectEquality(t, pt.NextPulse(), pulses[0])
}

func TestPlayerTiming(t *testing.T) {
	// one pulse is 1000 cycles at 1MHz
	pulses := []tape.Pulse{
		{Type: tape.High, Length: time.Millisecond},
		{Type: tape.Low, Length: time.Millisecond},
		{Type: tape.High, Length: time.Millisecond},
	}
	c := &collector{}
	pl := tape.NewPlayer(1000000, c)
	test.ExpectSuccess(t, pl.AtEnd())

	pl.SetSource(tape.NewPulseTape(pulses))
	test.ExpectSuccess(t, pl.HasTape())

	pl.RunFor(999)
	test.ExpectEquality(t, len(c.pulses), 0)
	pl.RunFor(1)
	test.ExpectEquality(t, len(c.pulses), 1)

	// two pulses in one call
	pl.RunFor(2000)
	test.ExpectEquality(t, len(c.pulses), 3)
	test.ExpectSuccess(t, pl.AtEnd())

	pl.RunFor(10000)
	test.ExpectEquality(t, len(c.pulses), 3)
	if diff := deep.Equal(c.pulses, pulses); diff != nil {
		t.Error(diff)
	}

	pl.Rewind()
	pl.RunFor(1000)
	test.ExpectEquality(t, len(c.pulses), 4)
}

func TestRecorder(t *testing.T) {
	r := &tape.Recorder{}
	r.WritePulse(tape.Pulse{Type: tape.High, Length: time.Millisecond})
	r.WritePulse(tape.Pulse{Type: tape.Low, Length: time.Millisecond})
	test.ExpectEquality(t, r.Duration(), 2*time.Millisecond)

	// 48 samples per millisecond
	samples := r.Render(48000)
	test.ExpectEquality(t, len(samples), 96)
	test.ExpectSuccess(t, samples[0] > 0)
	test.ExpectSuccess(t, samples[47] > 0)
	test.ExpectSuccess(t, samples[48] < 0)

	pt := r.Tape()
	test.ExpectEquality(t, pt.Len(), 2)

	r.Reset()
	test.ExpectEquality(t, len(r.Pulses()), 0)
	test.ExpectEquality(t, pt.Len(), 2)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := tape.NewPCMTape("tape.uef", nil)
	test.ExpectSuccess(t, curated.Is(err, tape.UnsupportedFormat))

	_, err = tape.NewPCMTape("tape.wav", []byte("not a wav file"))
	test.ExpectFailure(t, err)
}
