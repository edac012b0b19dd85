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

// Package acorn converts between tape pulses and bits in the format used by
// the Acorn Electron and BBC Micro.
//
// The format is a 1200 baud frequency-shift encoding. A zero bit is one cycle
// of a 1200Hz tone and a one bit is two cycles of a 2400Hz tone. Each cycle
// is a low pulse followed by a high pulse, so a zero is two long pulses and a
// one is four short pulses.
package acorn

import (
	"time"

	"github.com/jetsetilly/gopher8bit/storage/tape"
)

// pulse lengths of the two tones
const (
	ShortPulse = 208 * time.Microsecond
	LongPulse  = 416 * time.Microsecond
)

// ShortThreshold is the length below which a pulse is considered short. It is
// midway between the short and long pulse lengths.
const ShortThreshold = 312 * time.Microsecond

// ShifterDelegate receives the bits recognised by a Shifter.
type ShifterDelegate interface {
	AcornShifterOutputBit(bit uint8)
}

// Shifter classifies pulses and groups them into bits.
type Shifter struct {
	delegate ShifterDelegate

	shorts int
	longs  int
}

// NewShifter is the preferred method of initialisation for the Shifter type.
func NewShifter(delegate ShifterDelegate) *Shifter {
	return &Shifter{delegate: delegate}
}

// Reset forgets any partially recognised bit.
func (s *Shifter) Reset() {
	s.shorts = 0
	s.longs = 0
}

// ProcessPulse adds a pulse to the shifter. The delegate is called as soon as
// a complete bit has been recognised. A zero pulse resets the shifter.
func (s *Shifter) ProcessPulse(p tape.Pulse) {
	if p.Type == tape.Zero {
		s.Reset()
		return
	}

	if p.Length < ShortThreshold {
		s.longs = 0
		s.shorts++
		if s.shorts == 4 {
			s.shorts = 0
			s.output(1)
		}
		return
	}

	s.shorts = 0
	s.longs++
	if s.longs == 2 {
		s.longs = 0
		s.output(0)
	}
}

func (s *Shifter) output(bit uint8) {
	if s.delegate != nil {
		s.delegate.AcornShifterOutputBit(bit)
	}
}

// EncodeBit writes the pulses for a single bit to the sink.
func EncodeBit(sink tape.PulseSink, bit uint8) {
	if bit&0x01 == 0x00 {
		sink.WritePulse(tape.Pulse{Type: tape.Low, Length: LongPulse})
		sink.WritePulse(tape.Pulse{Type: tape.High, Length: LongPulse})
		return
	}
	for i := 0; i < 2; i++ {
		sink.WritePulse(tape.Pulse{Type: tape.Low, Length: ShortPulse})
		sink.WritePulse(tape.Pulse{Type: tape.High, Length: ShortPulse})
	}
}

// EncodeByte writes a framed byte to the sink: a zero start bit, eight data
// bits with the least significant bit first, and a one stop bit.
func EncodeByte(sink tape.PulseSink, value uint8) {
	EncodeBit(sink, 0)
	for i := 0; i < 8; i++ {
		EncodeBit(sink, value>>i)
	}
	EncodeBit(sink, 1)
}

// EncodeCarrier writes the specified number of one bits to the sink. A
// carrier tone precedes data on a real tape.
func EncodeCarrier(sink tape.PulseSink, bits int) {
	for i := 0; i < bits; i++ {
		EncodeBit(sink, 1)
	}
}
