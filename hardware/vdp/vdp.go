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

package vdp

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8bit/hardware/clocks"
)

// Personality selects the chip variant.
type Personality int

// List of valid Personality values.
const (
	TMS9918A Personality = iota
	SMSVDP
)

func (p Personality) String() string {
	switch p {
	case TMS9918A:
		return "TMS9918A"
	case SMSVDP:
		return "SMS VDP"
	}
	return "unknown personality"
}

// TVStandard selects the number of lines in a frame.
type TVStandard int

// List of valid TVStandard values.
const (
	NTSC TVStandard = iota
	PAL
)

func (s TVStandard) String() string {
	switch s {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return "unknown standard"
}

// timing constants. a line is 228 CPU cycles long and 342 pixels wide
const (
	HalfCyclesPerLine = 456
	PixelsPerLine     = 342
	ActiveLines       = 192

	linesNTSC = 262
	linesPAL  = 313
)

// sizes of the chip's memories
const (
	VRAMSize     = 0x4000
	CRAMSize     = 32
	NumRegisters = 16
)

// status register bits
const (
	StatusFrame     = 0x80
	StatusOverflow  = 0x40
	StatusCollision = 0x20
)

// codes written with the second byte of a control port pair
const (
	codeVRAMRead = iota
	codeVRAMWrite
	codeRegisterWrite
	codeCRAMWrite
)

// VDP is a video display processor.
type VDP struct {
	personality  Personality
	standard     TVStandard
	linesInFrame int

	vram      [VRAMSize]uint8
	cram      [CRAMSize]uint8
	registers [NumRegisters]uint8

	// access state of the control and data ports
	address     uint16
	code        uint8
	writeToggle bool
	latchLow    uint8
	readBuffer  uint8

	status      uint8
	linePending bool
	lineCounter uint8

	// beam position
	line       int
	halfCycles int

	latchedH uint8
}

// NewVDP is the preferred method of initialisation for the VDP type.
func NewVDP(personality Personality, standard TVStandard) *VDP {
	v := &VDP{
		personality: personality,
	}
	v.SetTVStandard(standard)
	return v
}

// SetTVStandard changes the number of lines in a frame.
func (v *VDP) SetTVStandard(standard TVStandard) {
	v.standard = standard
	switch standard {
	case PAL:
		v.linesInFrame = linesPAL
	default:
		v.linesInFrame = linesNTSC
	}
	if v.line >= v.linesInFrame {
		v.line = 0
	}
}

// FrameLength returns the duration of a complete frame for the current TV
// standard.
func (v *VDP) FrameLength() clocks.HalfCycles {
	return clocks.HalfCycles(HalfCyclesPerLine * v.linesInFrame)
}

// Personality returns the chip variant.
func (v *VDP) Personality() Personality {
	return v.personality
}

func (v *VDP) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s) line=%d half=%d", v.personality, v.standard, v.line, v.halfCycles))
	s.WriteString(fmt.Sprintf(" status=%02x addr=%04x code=%d", v.status, v.address, v.code))
	return s.String()
}

// Reset the chip to its power-on state.
func (v *VDP) Reset() {
	*v = VDP{
		personality: v.personality,
		standard:    v.standard,
	}
	v.SetTVStandard(v.standard)
}

// lineInterrupts is true if the chip has a line counter
func (v *VDP) lineInterrupts() bool {
	return v.personality == SMSVDP
}

// the value of the registers as bit fields
func (v *VDP) frameInterruptEnabled() bool {
	return v.registers[1]&0x20 == 0x20
}

func (v *VDP) lineInterruptEnabled() bool {
	return v.lineInterrupts() && v.registers[0]&0x10 == 0x10
}

// Advance implements the chips.Video interface.
func (v *VDP) Advance(elapsed clocks.HalfCycles) {
	h := int(elapsed)
	for h > 0 {
		remaining := HalfCyclesPerLine - v.halfCycles
		if h < remaining {
			v.halfCycles += h
			return
		}
		h -= remaining
		v.halfCycles = 0
		v.line++
		if v.line >= v.linesInFrame {
			v.line = 0
		}
		v.beginLine()
	}
}

// beginLine is called at the first half-cycle of every line
func (v *VDP) beginLine() {
	if v.line == ActiveLines {
		v.status |= StatusFrame
	}

	if !v.lineInterrupts() {
		return
	}

	if v.line <= ActiveLines {
		if v.lineCounter == 0 {
			v.lineCounter = v.registers[10]
			v.linePending = true
		} else {
			v.lineCounter--
		}
	} else {
		v.lineCounter = v.registers[10]
	}
}

// InterruptLine implements the chips.Video interface.
func (v *VDP) InterruptLine() bool {
	if v.status&StatusFrame == StatusFrame && v.frameInterruptEnabled() {
		return true
	}
	return v.linePending && v.lineInterruptEnabled()
}

// TimeUntilInterrupt implements the chips.Video interface.
//
// The timing state is stepped forward line by line until an enabled source
// would next raise its flag. The search is bounded to two frames.
func (v *VDP) TimeUntilInterrupt() clocks.HalfCycles {
	frame := v.frameInterruptEnabled()
	line := v.lineInterruptEnabled()
	if !frame && !line {
		return clocks.Never
	}

	ln := v.line
	counter := v.lineCounter
	t := HalfCyclesPerLine - v.halfCycles

	for i := 0; i < v.linesInFrame*2; i++ {
		ln++
		if ln >= v.linesInFrame {
			ln = 0
		}

		if frame && ln == ActiveLines {
			return clocks.HalfCycles(t)
		}

		if ln <= ActiveLines {
			if counter == 0 {
				if line {
					return clocks.HalfCycles(t)
				}
				counter = v.registers[10]
			} else {
				counter--
			}
		} else {
			counter = v.registers[10]
		}

		t += HalfCyclesPerLine
	}

	return clocks.Never
}

// CurrentLine implements the chips.Video interface. The V counter skips a
// range of values during the vertical blank so that it fits in eight bits.
func (v *VDP) CurrentLine() uint8 {
	switch v.standard {
	case PAL:
		if v.line > 0xf2 {
			return uint8(v.line - 57)
		}
	default:
		if v.line > 0xda {
			return uint8(v.line - 6)
		}
	}
	return uint8(v.line)
}

// horizontalCounter is the H counter for the current position in the line
func (v *VDP) horizontalCounter() uint8 {
	pixel := v.halfCycles * PixelsPerLine / HalfCyclesPerLine
	h := pixel >> 1
	if h > 0x93 {
		h += 0xe9 - 0x94
	}
	return uint8(h)
}

// LatchHorizontalCounter implements the chips.Video interface.
func (v *VDP) LatchHorizontalCounter() {
	v.latchedH = v.horizontalCounter()
}

// LatchedHorizontalCounter implements the chips.Video interface.
func (v *VDP) LatchedHorizontalCounter() uint8 {
	return v.latchedH
}

// Register implements the chips.Video interface. Odd addresses read the
// status register and even addresses read the data port.
func (v *VDP) Register(address uint16) uint8 {
	v.writeToggle = false

	if address&0x01 == 0x01 {
		s := v.status

		// there is no status bit for the line interrupt but the flag is
		// cleared with the other interrupt flags
		v.linePending = false
		v.status &^= StatusFrame | StatusOverflow | StatusCollision
		return s
	}

	d := v.readBuffer
	v.readBuffer = v.vram[v.address]
	v.address = (v.address + 1) & (VRAMSize - 1)
	return d
}

// SetRegister implements the chips.Video interface. Odd addresses write the
// control port and even addresses write the data port.
func (v *VDP) SetRegister(address uint16, value uint8) {
	if address&0x01 == 0x01 {
		v.writeControl(value)
		return
	}

	v.writeToggle = false
	if v.code == codeCRAMWrite && v.personality == SMSVDP {
		v.cram[v.address&(CRAMSize-1)] = value
	} else {
		v.vram[v.address] = value
	}
	v.readBuffer = value
	v.address = (v.address + 1) & (VRAMSize - 1)
}

func (v *VDP) writeControl(value uint8) {
	if !v.writeToggle {
		v.writeToggle = true
		v.latchLow = value
		v.address = (v.address & 0x3f00) | uint16(value)
		return
	}

	v.writeToggle = false
	v.code = value >> 6
	v.address = uint16(value&0x3f)<<8 | uint16(v.latchLow)

	switch v.code {
	case codeVRAMRead:
		v.readBuffer = v.vram[v.address]
		v.address = (v.address + 1) & (VRAMSize - 1)
	case codeRegisterWrite:
		v.writeRegister(value)
	case codeCRAMWrite:
		// the TMS9918A only looks at the top bit of the code
		if v.personality == TMS9918A {
			v.writeRegister(value)
		}
	}
}

func (v *VDP) writeRegister(value uint8) {
	mask := uint8(0x0f)
	if v.personality == TMS9918A {
		mask = 0x07
	}
	v.registers[value&mask] = v.latchLow
}

// Peek returns the value of a VDP register without side effects.
func (v *VDP) Peek(register int) uint8 {
	return v.registers[register&(NumRegisters-1)]
}

// VRAM returns the value in video memory at the specified address without
// side effects.
func (v *VDP) VRAM(address uint16) uint8 {
	return v.vram[address&(VRAMSize-1)]
}

// CRAM returns the value in colour memory at the specified address without
// side effects.
func (v *VDP) CRAM(address uint8) uint8 {
	return v.cram[address&(CRAMSize-1)]
}
