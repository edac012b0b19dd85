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
	"fmt"
	"time"
)

// PulseType is the level of the signal during a pulse.
type PulseType int

// List of valid PulseType values.
const (
	Low PulseType = iota
	High
	Zero
)

func (t PulseType) String() string {
	switch t {
	case Low:
		return "low"
	case High:
		return "high"
	case Zero:
		return "zero"
	}
	return "unknown"
}

// Pulse is a period of constant signal.
type Pulse struct {
	Type   PulseType
	Length time.Duration
}

func (p Pulse) String() string {
	return fmt.Sprintf("%s %v", p.Type, p.Length)
}

// Source is implemented by anything that can supply pulses.
type Source interface {
	// the next pulse on the tape. the result is undefined if AtEnd() is true
	NextPulse() Pulse

	// true if there are no more pulses
	AtEnd() bool

	// return to the start of the tape
	Rewind()
}

// PulseTape is a Source of pulses held in memory.
type PulseTape struct {
	pulses []Pulse
	idx    int
}

// NewPulseTape is the preferred method of initialisation for the PulseTape
// type. The pulses slice is not copied.
func NewPulseTape(pulses []Pulse) *PulseTape {
	return &PulseTape{pulses: pulses}
}

// NextPulse implements the Source interface.
func (t *PulseTape) NextPulse() Pulse {
	if t.idx >= len(t.pulses) {
		return Pulse{Type: Zero}
	}
	p := t.pulses[t.idx]
	t.idx++
	return p
}

// AtEnd implements the Source interface.
func (t *PulseTape) AtEnd() bool {
	return t.idx >= len(t.pulses)
}

// Rewind implements the Source interface.
func (t *PulseTape) Rewind() {
	t.idx = 0
}

// Len returns the number of pulses on the tape.
func (t *PulseTape) Len() int {
	return len(t.pulses)
}

// Duration returns the total length of the tape.
func (t *PulseTape) Duration() time.Duration {
	var d time.Duration
	for _, p := range t.pulses {
		d += p.Length
	}
	return d
}
