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

package tape

import "time"

// PulseSink receives pulses emitted by a machine.
type PulseSink interface {
	WritePulse(p Pulse)
}

// amplitude of a rendered square wave
const renderAmplitude = 0x6000

// Recorder is a PulseSink that keeps every pulse written to it.
type Recorder struct {
	pulses []Pulse
}

// WritePulse implements the PulseSink interface.
func (r *Recorder) WritePulse(p Pulse) {
	r.pulses = append(r.pulses, p)
}

// Pulses returns the recorded pulses.
func (r *Recorder) Pulses() []Pulse {
	return r.pulses
}

// Duration is the total length of the recording.
func (r *Recorder) Duration() time.Duration {
	var d time.Duration
	for _, p := range r.pulses {
		d += p.Length
	}
	return d
}

// Tape returns a copy of the recording as a PulseTape.
func (r *Recorder) Tape() *PulseTape {
	p := make([]Pulse, len(r.pulses))
	copy(p, r.pulses)
	return NewPulseTape(p)
}

// Reset discards the recording.
func (r *Recorder) Reset() {
	r.pulses = r.pulses[:0]
}

// Render the recording as a square wave at the specified sample rate. High
// pulses are positive, low pulses are negative and zero pulses are silence.
func (r *Recorder) Render(sampleRate int) []int {
	var out []int
	if sampleRate <= 0 {
		return out
	}

	rate := float64(sampleRate)
	var end float64
	var next int

	for _, p := range r.pulses {
		var level int
		switch p.Type {
		case High:
			level = renderAmplitude
		case Low:
			level = -renderAmplitude
		}

		end += p.Length.Seconds()
		for float64(next)/rate < end {
			out = append(out, level)
			next++
		}
	}

	return out
}
