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

package electron_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/jetsetilly/gopher8bit/hardware/electron"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/storage/tape"
	"github.com/jetsetilly/gopher8bit/storage/tape/acorn"
	"github.com/jetsetilly/gopher8bit/test"
)

type counter struct {
	calls  int
	status []electron.Interrupt
}

func (c *counter) TapeDidChangeInterruptStatus(t *electron.Tape) {
	c.calls++
	c.status = append(c.status, t.InterruptStatus())
}

// feed pulses for the bits directly to the tape engine
func feedBits(t *electron.Tape, bits ...uint8) {
	r := &tape.Recorder{}
	for _, b := range bits {
		acorn.EncodeBit(r, b)
	}
	for _, p := range r.Pulses() {
		t.ProcessInputPulse(p)
	}
}

func feedByte(t *electron.Tape, v uint8) {
	r := &tape.Recorder{}
	acorn.EncodeByte(r, v)
	for _, p := range r.Pulses() {
		t.ProcessInputPulse(p)
	}
}

func inputTape() *electron.Tape {
	t := electron.NewTape(logger.Allow)
	t.SetInputMode(true)
	t.SetEnabled(true)
	t.SetRunning(true)
	return t
}

func TestRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xff, 0xa5, 0x5a, 0x12, 0x80, 0x01, 0x2a}

	r := &tape.Recorder{}
	electron.WriteTape(logger.Allow, r, data, 20)

	got := electron.ReadTape(logger.Allow, r.Tape())
	if diff := deep.Equal(got, data); diff != nil {
		t.Error(diff)
	}
}

func TestRoundTripNoCarrier(t *testing.T) {
	data := []byte{0x3c, 0xc3}

	r := &tape.Recorder{}
	electron.WriteTape(logger.Allow, r, data, 0)

	got := electron.ReadTape(logger.Allow, r.Tape())
	if diff := deep.Equal(got, data); diff != nil {
		t.Error(diff)
	}
}

func TestReceive(t *testing.T) {
	tp := inputTape()
	c := &counter{}
	tp.SetDelegate(c)

	feedBits(tp, 1, 1)
	feedByte(tp, 0xa5)
	test.ExpectEquality(t, tp.InterruptStatus()&electron.ReceiveDataFull, electron.ReceiveDataFull)
	test.ExpectEquality(t, c.calls, 1)

	// reading consumes the byte
	test.ExpectEquality(t, tp.DataRegister(), uint8(0xa5))
	test.ExpectEquality(t, tp.InterruptStatus()&electron.ReceiveDataFull, electron.Interrupt(0))
	test.ExpectEquality(t, c.calls, 2)

	// consecutive frames
	feedByte(tp, 0x5a)
	test.ExpectEquality(t, tp.DataRegister(), uint8(0x5a))
	feedByte(tp, 0x00)
	test.ExpectEquality(t, tp.DataRegister(), uint8(0x00))
}

func TestMaskedClear(t *testing.T) {
	tp := inputTape()

	feedByte(tp, 0x42)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.ReceiveDataFull)

	tp.ClearInterrupts(electron.HighToneDetect | electron.TransmitDataEmpty)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.ReceiveDataFull)

	tp.ClearInterrupts(electron.ReceiveDataFull)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))

	feedByte(tp, 0x42)
	feedBits(tp, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.ReceiveDataFull|electron.HighToneDetect)

	tp.ClearInterrupts(electron.ReceiveDataFull)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.HighToneDetect)
}

func TestEdgeNotification(t *testing.T) {
	tp := electron.NewTape(logger.Allow)
	tp.SetInputMode(false)
	tp.SetEnabled(true)

	c := &counter{}
	tp.SetDelegate(c)

	tp.RunFor(electron.CyclesPerBit)
	test.ExpectEquality(t, c.calls, 1)
	test.ExpectEquality(t, c.status[0], electron.TransmitDataEmpty)

	// no change so no notification
	tp.RunFor(electron.CyclesPerBit)
	tp.ClearInterrupts(electron.ReceiveDataFull)
	test.ExpectEquality(t, c.calls, 1)

	tp.ClearInterrupts(electron.TransmitDataEmpty)
	test.ExpectEquality(t, c.calls, 2)

	tp.RunFor(electron.CyclesPerBit)
	test.ExpectEquality(t, c.calls, 3)
}

func TestTransmit(t *testing.T) {
	r := &tape.Recorder{}

	tp := electron.NewTape(logger.Allow)
	tp.SetSink(r)
	tp.SetInputMode(false)
	tp.SetEnabled(true)

	tp.SetDataRegister(0xa5)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))

	tp.RunFor(electron.CyclesPerBit * 9)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))
	tp.RunFor(electron.CyclesPerBit - 1)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))
	tp.RunFor(1)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.TransmitDataEmpty)

	b := &bits{}
	s := acorn.NewShifter(b)
	for _, p := range r.Pulses() {
		s.ProcessPulse(p)
	}
	expected := []uint8{0, 1, 0, 1, 0, 0, 1, 0, 1, 1}
	if diff := deep.Equal(b.values, expected); diff != nil {
		t.Error(diff)
	}

	// idle output is a carrier
	r.Reset()
	b.values = b.values[:0]
	tp.RunFor(electron.CyclesPerBit * 3)
	for _, p := range r.Pulses() {
		s.ProcessPulse(p)
	}
	if diff := deep.Equal(b.values, []uint8{1, 1, 1}); diff != nil {
		t.Error(diff)
	}
}

type bits struct {
	values []uint8
}

func (b *bits) AcornShifterOutputBit(bit uint8) {
	b.values = append(b.values, bit)
}

func TestModeSwitchReset(t *testing.T) {
	tp := inputTape()

	// stale zero bits followed by half of a zero bit
	feedBits(tp, 0, 0, 0)
	tp.ProcessInputPulse(tape.Pulse{Type: tape.Low, Length: acorn.LongPulse})

	tp.SetInputMode(false)
	tp.SetInputMode(true)
	test.ExpectEquality(t, tp.DataRegister(), uint8(0xff))

	feedByte(tp, 0x3c)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.ReceiveDataFull)
	test.ExpectEquality(t, tp.DataRegister(), uint8(0x3c))
}

func TestModeSwitchClearsTransmit(t *testing.T) {
	tp := electron.NewTape(logger.Allow)
	tp.SetEnabled(true)
	tp.SetInputMode(false)

	c := &counter{}
	tp.SetDelegate(c)

	tp.SetDataRegister(0x42)
	tp.RunFor(electron.CyclesPerBit * 10)
	test.DemandEquality(t, tp.InterruptStatus(), electron.TransmitDataEmpty)
	test.ExpectEquality(t, c.calls, 1)

	tp.SetInputMode(true)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))
	test.ExpectEquality(t, c.calls, 2)
}

func TestGating(t *testing.T) {
	tp := electron.NewTape(logger.Allow)
	tp.SetInputMode(true)

	c := &counter{}
	tp.SetDelegate(c)

	feedByte(tp, 0x81)
	test.ExpectEquality(t, c.calls, 0)
	test.ExpectEquality(t, tp.DataRegister(), uint8(0xff))

	tp.SetEnabled(true)
	feedByte(tp, 0x81)
	test.ExpectEquality(t, c.calls, 0)

	tp.SetRunning(true)
	feedByte(tp, 0x81)
	test.ExpectEquality(t, c.calls, 1)
	test.ExpectEquality(t, tp.DataRegister(), uint8(0x81))

	// output is not shifted while disabled
	tp.SetInputMode(false)
	tp.SetEnabled(false)
	tp.RunFor(electron.CyclesPerBit * 4)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))
}

func TestCounter(t *testing.T) {
	tp := inputTape()
	tp.SetCounter(20)

	feedBits(tp, 1, 1)
	feedByte(tp, 0xa5)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))

	feedByte(tp, 0x3c)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.ReceiveDataFull)
	test.ExpectEquality(t, tp.DataRegister(), uint8(0x3c))
}

func TestHighTone(t *testing.T) {
	tp := inputTape()

	feedBits(tp, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))
	feedBits(tp, 1)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.HighToneDetect)
	feedBits(tp, 0)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))
}

func TestPlayer(t *testing.T) {
	r := &tape.Recorder{}
	acorn.EncodeCarrier(r, 4)
	acorn.EncodeByte(r, 0x99)

	tp := inputTape()
	tp.SetSource(r.Tape())

	tp.SetRunning(false)
	tp.RunFor(electron.CyclesPerBit * 20)
	test.ExpectEquality(t, tp.InterruptStatus(), electron.Interrupt(0))
	test.ExpectFailure(t, tp.Player().AtEnd())

	tp.SetRunning(true)
	tp.RunFor(electron.CyclesPerBit * 20)
	test.ExpectSuccess(t, tp.Player().AtEnd())
	test.ExpectEquality(t, tp.DataRegister(), uint8(0x99))
}

func TestInterruptString(t *testing.T) {
	test.ExpectEquality(t, electron.Interrupt(0).String(), "-")
	test.ExpectEquality(t, (electron.ReceiveDataFull | electron.HighToneDetect).String(), "RDF HTD")
}
