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

import (
	"github.com/jetsetilly/gopher8bit/hardware/clocks"
)

// PulseProcessor receives pulses from a Player.
type PulseProcessor interface {
	ProcessInputPulse(p Pulse)
}

// Player plays a Source as emulated time passes.
type Player struct {
	source    Source
	processor PulseProcessor

	// cycles per second of the machine driving the player
	clockRate float64

	// the pulse being played and how far into it the player is, in cycles
	current  Pulse
	length   float64
	position float64
	loaded   bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(clockRate float64, processor PulseProcessor) *Player {
	return &Player{
		clockRate: clockRate,
		processor: processor,
	}
}

// SetSource inserts a tape into the player. A nil source ejects the tape.
func (pl *Player) SetSource(source Source) {
	pl.source = source
	pl.loaded = false
	pl.position = 0
}

// HasTape returns true if a tape is inserted.
func (pl *Player) HasTape() bool {
	return pl.source != nil
}

// AtEnd returns true if there is no tape or the tape has been played to the
// end.
func (pl *Player) AtEnd() bool {
	return pl.source == nil || (!pl.loaded && pl.source.AtEnd())
}

// Rewind the tape.
func (pl *Player) Rewind() {
	if pl.source != nil {
		pl.source.Rewind()
	}
	pl.loaded = false
	pl.position = 0
}

// RunFor advances the tape by the specified number of cycles. Every pulse that
// ends during that time is sent to the PulseProcessor.
func (pl *Player) RunFor(cycles clocks.Cycles) {
	if pl.source == nil {
		return
	}

	remaining := float64(cycles)
	for remaining > 0 {
		if !pl.loaded {
			if pl.source.AtEnd() {
				return
			}
			pl.current = pl.source.NextPulse()
			pl.length = pl.current.Length.Seconds() * pl.clockRate
			pl.position = 0
			pl.loaded = true
		}

		left := pl.length - pl.position
		if remaining < left {
			pl.position += remaining
			return
		}

		remaining -= left
		pl.loaded = false
		if pl.processor != nil {
			pl.processor.ProcessInputPulse(pl.current)
		}
	}
}
