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

import "github.com/jetsetilly/gopher8bit/hardware/clocks"

// Chip is a sound chip that generates samples and accepts register writes.
type Chip interface {
	SampleSource
	SetRegister(value uint8)
}

// Output joins a Chip to a Speaker through a Queue. Register writes and
// sample generation are both deferred so that they are performed in the order
// they happened in emulation time.
//
// Output satisfies the chips.Audio interface.
type Output struct {
	queue   *Queue
	chip    Chip
	speaker *Speaker
}

// NewOutput is the preferred method of initialisation for the Output type.
func NewOutput(queue *Queue, chip Chip, speaker *Speaker) *Output {
	return &Output{
		queue:   queue,
		chip:    chip,
		speaker: speaker,
	}
}

// Advance implements the chips.Audio interface.
func (o *Output) Advance(elapsed clocks.Cycles) {
	o.speaker.RunFor(o.queue, elapsed)
}

// SetRegister implements the chips.Audio interface.
func (o *Output) SetRegister(value uint8) {
	o.queue.Defer(func() {
		o.chip.SetRegister(value)
	})
}

// Speaker returns the speaker attached to the output.
func (o *Output) Speaker() *Speaker {
	return o.speaker
}

// Queue returns the queue used by the output.
func (o *Output) Queue() *Queue {
	return o.queue
}
