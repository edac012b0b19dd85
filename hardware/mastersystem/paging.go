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
	"github.com/jetsetilly/gopher8bit/hardware/memory/pagetable"
)

// the Sega paging registers are only present on cartridges larger than this
const segaPagingThreshold = 48 * 1024

// bits of the memory control register. a set bit disables the component
const (
	disableCartridge = 0x40
	disableRAM       = 0x10
	disableBIOS      = 0x08
)

// padCartridge returns a copy of the cartridge data padded with 0xff to the
// smallest power of two not less than its size. The minimum size is one 16KB
// window.
func padCartridge(data []uint8) []uint8 {
	size := 0x4000
	for size < len(data) {
		size <<= 1
	}

	cart := make([]uint8, size)
	n := copy(cart, data)
	for i := n; i < size; i++ {
		cart[i] = 0xff
	}

	return cart
}

// setPagingRegister changes a paging register and rebuilds the page tables.
// Nothing happens if the value has not changed.
func (m *Machine) setPagingRegister(register int, value uint8) {
	if m.pagingRegisters[register] == value {
		return
	}
	m.pagingRegisters[register] = value
	m.pageCartridge()
}

// pageCartridge rebuilds both page tables from the paging registers and the
// memory control register.
func (m *Machine) pageCartridge() {
	m.pager.Clear()

	if m.memoryControl&disableCartridge == 0 || m.target.Region == Japan {
		cartLen := len(m.pager.Arena.Data(m.cartridge))

		for w, r := range m.pagingRegisters {
			start := (int(r) * 0x4000) % cartLen
			size := min(0x4000, cartLen-start)
			m.mapRead(m.cartridge, start, size, w*0x4000, (w+1)*0x4000)
		}

		// the first 1KB of the cartridge never moves
		if m.target.PagingScheme == Sega {
			m.mapRead(m.cartridge, 0, 0x0400, 0, 0x0400)
		}
	}

	if m.memoryControl&disableRAM == 0 || m.target.Model != MasterSystem {
		size := len(m.pager.Arena.Data(m.ram))
		if err := m.pager.Map(m.ram, 0, size, 0xc000, 0x10000); err != nil {
			assert.Inconsistency(logTag, "mastersystem: %v", err)
		}
	}

	if m.target.HasBIOS() && m.memoryControl&disableBIOS == 0 {
		m.mapRead(m.bios, 0, biosSize, 0, 0)
	}

	m.rebuilds++
}

func (m *Machine) mapRead(id pagetable.BufferID, base int, size int, start int, end int) {
	if err := m.pager.MapRead(id, base, size, start, end); err != nil {
		assert.Inconsistency(logTag, "mastersystem: %v", err)
	}
}
