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

package audio

import (
	"math"

	"github.com/jetsetilly/gopher8bit/hardware/clocks"
)

// SampleSource is implemented by sound chips. GetSamples fills the target
// with the next len(target) samples, each sample being one cycle of the
// chip's input clock.
type SampleSource interface {
	GetSamples(target []int16)
}

// SpeakerDelegate receives completed output buffers. The samples slice is
// only valid for the duration of the call.
type SpeakerDelegate interface {
	SpeakerDidCompleteSamples(spk *Speaker, samples []int16)
}

// DefaultCutoff is the high frequency cutoff of a new speaker in Hz.
const DefaultCutoff = 8000.0

// DefaultBufferSize is the number of output samples passed to the delegate in
// each call to SpeakerDidCompleteSamples().
const DefaultBufferSize = 512

// Speaker resamples a SampleSource from its input rate to an output rate
// through a single pole low-pass filter.
type Speaker struct {
	source   SampleSource
	delegate SpeakerDelegate

	inputRate  float64
	outputRate float64
	cutoff     float64

	// filter coefficient derived from the input rate and cutoff
	alpha    float64
	filtered float64

	// number of input samples per output sample and the position between two
	// output samples
	step  float64
	phase float64

	input  []int16
	output []int16
}

// NewSpeaker is the preferred method of initialisation for the Speaker type.
func NewSpeaker(source SampleSource, inputRate float64, outputRate float64) *Speaker {
	spk := &Speaker{
		source:     source,
		inputRate:  inputRate,
		outputRate: outputRate,
		output:     make([]int16, 0, DefaultBufferSize),
	}
	spk.SetHighFrequencyCutoff(DefaultCutoff)
	return spk
}

// SetDelegate sets the recipient of completed output buffers.
func (spk *Speaker) SetDelegate(delegate SpeakerDelegate) {
	spk.delegate = delegate
}

// SetHighFrequencyCutoff sets the cutoff frequency of the low-pass filter. The
// cutoff is limited to the Nyquist frequency of the output rate.
func (spk *Speaker) SetHighFrequencyCutoff(hz float64) {
	if hz > spk.outputRate/2 {
		hz = spk.outputRate / 2
	}
	spk.cutoff = hz
	spk.alpha = 1.0 - math.Exp(-2.0*math.Pi*hz/spk.inputRate)
	spk.step = spk.inputRate / spk.outputRate
}

// SetOutputRate changes the sample rate of the output buffers.
func (spk *Speaker) SetOutputRate(hz float64) {
	spk.outputRate = hz
	spk.SetHighFrequencyCutoff(spk.cutoff)
}

// OutputRate returns the rate of the samples sent to the delegate.
func (spk *Speaker) OutputRate() float64 {
	return spk.outputRate
}

// Cutoff returns the current filter cutoff in Hz.
func (spk *Speaker) Cutoff() float64 {
	return spk.cutoff
}

// RunFor defers the generation of the given number of input cycles onto the
// queue.
func (spk *Speaker) RunFor(q *Queue, cycles clocks.Cycles) {
	if cycles <= 0 {
		return
	}
	q.Defer(func() {
		spk.run(int(cycles))
	})
}

func (spk *Speaker) run(n int) {
	if cap(spk.input) < n {
		spk.input = make([]int16, n)
	}
	spk.input = spk.input[:n]
	spk.source.GetSamples(spk.input)

	for _, s := range spk.input {
		spk.filtered += spk.alpha * (float64(s) - spk.filtered)
		spk.phase++
		if spk.phase >= spk.step {
			spk.phase -= spk.step
			spk.output = append(spk.output, int16(spk.filtered))
			if len(spk.output) == cap(spk.output) {
				spk.complete()
			}
		}
	}
}

// Drain passes any partially filled output buffer to the delegate.
func (spk *Speaker) Drain(q *Queue) {
	q.Defer(func() {
		if len(spk.output) > 0 {
			spk.complete()
		}
	})
}

func (spk *Speaker) complete() {
	if spk.delegate != nil {
		spk.delegate.SpeakerDidCompleteSamples(spk, spk.output)
	}
	spk.output = spk.output[:0]
}
