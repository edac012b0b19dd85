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
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/clocks"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/storage/tape"
	"github.com/jetsetilly/gopher8bit/storage/tape/acorn"
)

const logTag = "electron: tape"

// CyclesPerBit is the number of machine cycles taken to shift one bit to the
// tape at 1200 baud.
const CyclesPerBit clocks.Cycles = 1664

// the number of bits in a frame. a start bit, eight data bits and a stop bit
const frameBits = 10

// the number of consecutive one bits that make a high tone
const highToneBits = 10

// the shift register when there is no data. a partial frame can never match
// against an idle register
const idleRegister uint16 = 0xffff

// TapeDelegate is notified whenever the interrupt status of the tape changes.
type TapeDelegate interface {
	TapeDidChangeInterruptStatus(t *Tape)
}

// Tape is the bit-serial engine that connects the ULA to the tape.
type Tape struct {
	perm logger.Permission

	delegate TapeDelegate
	player   *tape.Player
	shifter  *acorn.Shifter
	sink     tape.PulseSink

	running   bool
	enabled   bool
	inputMode bool

	// bits are shifted in at the top of the register and out from the bottom
	register uint16

	// input state
	minimumBitsUntilFull int
	ones                 int

	// output state
	cyclesIntoBit           clocks.Cycles
	bitsRemainingUntilEmpty int

	status     Interrupt
	lastPosted Interrupt

	// the end of the tape has been reported in the log
	endReported bool
}

// NewTape is the preferred method of initialisation for the Tape type. The
// tape starts in input mode, stopped and disabled.
func NewTape(perm logger.Permission) *Tape {
	t := &Tape{
		perm:      perm,
		inputMode: true,
		register:  idleRegister,
	}
	t.shifter = acorn.NewShifter(t)
	t.player = tape.NewPlayer(clocks.Electron, t)
	return t
}

func (t *Tape) String() string {
	mode := "output"
	if t.inputMode {
		mode = "input"
	}
	return fmt.Sprintf("%s register=%04x status=%s", mode, t.register, t.status)
}

// SetDelegate sets the recipient of interrupt status changes.
func (t *Tape) SetDelegate(delegate TapeDelegate) {
	t.delegate = delegate
}

// SetSource inserts a tape into the player. A nil source ejects the tape.
func (t *Tape) SetSource(source tape.Source) {
	t.player.SetSource(source)
	t.endReported = false
}

// Player returns the tape player feeding the engine in input mode.
func (t *Tape) Player() *tape.Player {
	return t.player
}

// SetSink sets the destination of pulses generated in output mode.
func (t *Tape) SetSink(sink tape.PulseSink) {
	t.sink = sink
}

// SetRunning controls the tape motor.
func (t *Tape) SetRunning(running bool) {
	t.running = running
}

// SetEnabled connects or disconnects the engine from the tape.
func (t *Tape) SetEnabled(enabled bool) {
	t.enabled = enabled
}

// InputMode returns true if the engine is reading from the tape.
func (t *Tape) InputMode() bool {
	return t.inputMode
}

// SetInputMode switches the direction of the engine. The shift register,
// the counters and the pulse shifter are all reset. Interrupts left over
// from the previous direction are cleared.
func (t *Tape) SetInputMode(input bool) {
	t.inputMode = input
	t.register = idleRegister
	t.minimumBitsUntilFull = 0
	t.ones = 0
	t.cyclesIntoBit = 0
	t.bitsRemainingUntilEmpty = 0
	t.shifter.Reset()

	t.status &^= TapeInterrupts
	t.evaluate()
}

// DataRegister returns the most recently assembled byte. In input mode the
// byte is consumed and ReceiveDataFull is cleared.
func (t *Tape) DataRegister() uint8 {
	v := uint8(t.register >> 7)
	if t.inputMode {
		t.status &^= ReceiveDataFull
		t.evaluate()
	}
	return v
}

// SetDataRegister loads the next byte to be shifted out in output mode.
func (t *Tape) SetDataRegister(v uint8) {
	if t.inputMode {
		logger.Logf(t.perm, logTag, "ignored write to data register in input mode (%02x)", v)
		return
	}

	// stop bit, data and start bit. the register fills with ones as it
	// shifts out
	t.register = 0xfe00 | uint16(v)<<1
	t.bitsRemainingUntilEmpty = frameBits
	t.status &^= TransmitDataEmpty
	t.evaluate()
}

// SetCounter reinitialises the number of bits that must be received before
// a byte is considered to be available. The output counters are zeroed.
func (t *Tape) SetCounter(v uint8) {
	t.minimumBitsUntilFull = int(v)
	t.cyclesIntoBit = 0
	t.bitsRemainingUntilEmpty = 0
}

// InterruptStatus returns the interrupt flags currently raised by the tape.
func (t *Tape) InterruptStatus() Interrupt {
	return t.status
}

// ClearInterrupts clears the flags in the mask. Other flags are unaffected.
func (t *Tape) ClearInterrupts(mask Interrupt) {
	t.status &^= mask
	t.evaluate()
}

// RunFor advances the engine. In input mode the tape player is advanced if
// the motor is running. In output mode one bit is shifted out every
// CyclesPerBit cycles.
func (t *Tape) RunFor(cycles clocks.Cycles) {
	if !t.enabled {
		return
	}

	if t.inputMode {
		if t.running && t.player.HasTape() {
			t.player.RunFor(cycles)
			if t.player.AtEnd() && !t.endReported {
				t.endReported = true
				logger.Log(t.perm, logTag, "end of tape")
			}
		}
		return
	}

	t.cyclesIntoBit += cycles
	for t.cyclesIntoBit >= CyclesPerBit {
		t.cyclesIntoBit -= CyclesPerBit
		t.shiftOut()
	}
}

// ProcessInputPulse implements the tape.PulseProcessor interface. The pulse
// is always seen by the shifter but only changes the register when the
// engine is enabled and running.
func (t *Tape) ProcessInputPulse(p tape.Pulse) {
	t.shifter.ProcessPulse(p)
}

// AcornShifterOutputBit implements the acorn.ShifterDelegate interface.
func (t *Tape) AcornShifterOutputBit(bit uint8) {
	if !t.inputMode || !t.enabled || !t.running {
		return
	}
	t.shiftIn(bit & 0x01)
}

func (t *Tape) shiftIn(bit uint8) {
	t.register = t.register>>1 | uint16(bit)<<15

	if t.minimumBitsUntilFull > 0 {
		t.minimumBitsUntilFull--
	}

	// a framed byte has the stop bit at the top of the register, the start
	// bit below the data and the end of the previous frame below that
	if t.minimumBitsUntilFull == 0 && t.register&0x8060 == 0x8020 {
		t.status |= ReceiveDataFull
		t.minimumBitsUntilFull = frameBits
	}

	if bit == 0x01 {
		t.ones++
	} else {
		t.ones = 0
	}
	if t.ones >= highToneBits {
		t.status |= HighToneDetect
	} else {
		t.status &^= HighToneDetect
	}

	t.evaluate()
}

func (t *Tape) shiftOut() {
	bit := uint8(t.register & 0x01)
	t.register = t.register>>1 | 0x8000

	if t.sink != nil {
		acorn.EncodeBit(t.sink, bit)
	}

	if t.bitsRemainingUntilEmpty > 0 {
		t.bitsRemainingUntilEmpty--
	}
	if t.bitsRemainingUntilEmpty == 0 {
		t.status |= TransmitDataEmpty
	}

	t.evaluate()
}

func (t *Tape) evaluate() {
	if t.status == t.lastPosted {
		return
	}
	t.lastPosted = t.status
	if t.delegate != nil {
		t.delegate.TapeDidChangeInterruptStatus(t)
	}
}
