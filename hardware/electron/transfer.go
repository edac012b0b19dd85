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

package electron

import (
	"github.com/jetsetilly/gopher8bit/hardware/clocks"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/storage/tape"
)

type tapeReader struct {
	data []byte
}

func (r *tapeReader) TapeDidChangeInterruptStatus(t *Tape) {
	if t.InterruptStatus()&ReceiveDataFull == ReceiveDataFull {
		r.data = append(r.data, t.DataRegister())
	}
}

// ReadTape plays the source through a tape engine in input mode and returns
// every byte received.
func ReadTape(perm logger.Permission, source tape.Source) []byte {
	r := &tapeReader{}

	t := NewTape(perm)
	t.SetInputMode(true)
	t.SetEnabled(true)
	t.SetRunning(true)
	t.SetSource(source)
	t.SetDelegate(r)

	for !t.player.AtEnd() {
		t.RunFor(CyclesPerBit)
	}

	return r.data
}

type tapeWriter struct {
	data   []byte
	next   int
	active bool
}

func (w *tapeWriter) TapeDidChangeInterruptStatus(t *Tape) {
	if !w.active || w.next >= len(w.data) {
		return
	}
	if t.InterruptStatus()&TransmitDataEmpty == TransmitDataEmpty {
		v := w.data[w.next]
		w.next++
		t.SetDataRegister(v)
	}
}

// WriteTape shifts data through a tape engine in output mode and writes the
// resulting pulses to the sink. The data is surrounded by the specified
// number of carrier bits.
func WriteTape(perm logger.Permission, sink tape.PulseSink, data []byte, carrier int) {
	w := &tapeWriter{data: data}

	t := NewTape(perm)
	t.SetSink(sink)
	t.SetInputMode(false)
	t.SetEnabled(true)
	t.SetRunning(true)
	t.SetDelegate(w)

	t.RunFor(CyclesPerBit * clocks.Cycles(carrier))

	w.active = true
	if len(data) > 0 {
		w.next = 1
		t.SetDataRegister(data[0])
	}
	for w.next < len(w.data) || t.bitsRemainingUntilEmpty > 0 {
		t.RunFor(CyclesPerBit)
	}

	t.RunFor(CyclesPerBit * clocks.Cycles(carrier))
}
