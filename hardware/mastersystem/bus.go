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

package mastersystem

import (
	"github.com/jetsetilly/gopher8bit/assert"
	"github.com/jetsetilly/gopher8bit/hardware/clocks"
	"github.com/jetsetilly/gopher8bit/hardware/memory/bus"
	"github.com/jetsetilly/gopher8bit/logger"
)

// value placed on the data bus during an interrupt acknowledge
const interruptAcknowledge = 0xff

// PerformMachineCycle implements the bus.Handler interface. The machine never
// inserts wait states so the return value is always zero.
func (m *Machine) PerformMachineCycle(c *bus.MachineCycle) clocks.HalfCycles {
	m.timeSinceVideoUpdate += c.Length
	m.timeSinceAudioUpdate += c.Length

	if c.Terminal {
		var address uint16
		if c.AddressValid {
			address = c.Address
		}

		switch c.Operation {
		case bus.ReadOpcode, bus.Read:
			c.Value = m.pager.Read(address)
		case bus.Write:
			m.write(address, c.Value)
		case bus.Input:
			c.Value = m.input(address)
		case bus.Output:
			m.output(address, c.Value)
		case bus.Interrupt:
			c.Value = interruptAcknowledge
		}
	}

	m.interrupts.elapse(c.Length)

	return 0
}

func (m *Machine) write(address uint16, value uint8) {
	switch m.target.PagingScheme {
	case Codemasters:
		if address&0x3fff == 0 && address < 0xc000 {
			m.setPagingRegister(int(address>>14), value)
		}
	default:
		if address >= 0xfffd && m.cartridgeSize > segaPagingThreshold {
			m.setPagingRegister(int(address-0xfffd), value)
		}
	}

	if !m.pager.Write(address, value) {
		logger.Logf(m, logTag, "ignored write to ROM (%04x <- %02x)", address, value)
	}
}

// thValues returns the TH inputs of both joystick ports in bits 6 and 7. a TH
// line configured as an output reads as the level it is driving
func (m *Machine) thValues() uint8 {
	c := m.ioPortControl
	return ((c & 0x02) << 5) | ((c & 0x20) << 1) | ((c & 0x08) << 4) | (c & 0x80)
}

func (m *Machine) input(address uint16) uint8 {
	switch address & 0xc1 {
	case 0x00:
		logger.Logf(m, logTag, "read of memory control is not supported (port %02x)", address&0xff)
		return 0xff

	case 0x01:
		logger.Logf(m, logTag, "read of I/O port control is not supported (port %02x)", address&0xff)
		return 0xff

	case 0x40:
		m.updateVideo()
		return m.video.CurrentLine()

	case 0x41:
		m.updateVideo()
		return m.video.LatchedHorizontalCounter()

	case 0x80, 0x81:
		m.updateVideo()
		v := m.video.Register(address)
		m.interrupts.update(m.video)
		return v

	case 0xc0:
		return m.joysticks[0].State() | m.joysticks[1].State()<<6

	case 0xc1:
		return m.joysticks[1].State()>>2 | 0x30 | m.thValues()
	}

	assert.Inconsistency(logTag, "mastersystem: undecoded input port (%04x)", address)
	return 0xff
}

func (m *Machine) output(address uint16, value uint8) {
	switch address & 0xc1 {
	case 0x00:
		if m.target.Model == MasterSystem {
			m.memoryControl = value
			m.pageCartridge()
		}

	case 0x01:
		// a TH line can be forced low here and then released. latch only on a
		// rising edge of either line
		prev := m.thValues()
		m.ioPortControl = value
		next := m.thValues()
		if (next^prev)&next != 0 {
			m.updateVideo()
			m.video.LatchHorizontalCounter()
		}

	case 0x40, 0x41:
		m.updateAudio()
		m.audio.SetRegister(value)

	case 0x80, 0x81:
		m.updateVideo()
		m.video.SetRegister(address, value)
		m.interrupts.update(m.video)

	case 0xc0:
		logger.Logf(m, logTag, "write to I/O port A/B is not supported (%02x)", value)

	case 0xc1:
		logger.Logf(m, logTag, "write to I/O port B/misc is not supported (%02x)", value)

	default:
		assert.Inconsistency(logTag, "mastersystem: undecoded output port (%04x)", address)
	}
}
