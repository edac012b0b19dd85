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

package pagetable

import (
	"fmt"
	"strings"
)

// Pager resolves reads and writes through a pair of Tables.
type Pager struct {
	Arena      Arena
	ReadTable  Table
	WriteTable Table
}

// Clear both tables. Every read will return Unmapped and every write will be
// dropped until the tables are rebuilt.
func (p *Pager) Clear() {
	p.ReadTable.Unmap(0, 0x10000)
	p.WriteTable.Unmap(0, 0x10000)
}

// Map installs the window in both the read and the write tables.
func (p *Pager) Map(id BufferID, base int, size int, start int, end int) error {
	if err := p.ReadTable.Map(&p.Arena, id, base, size, start, end); err != nil {
		return err
	}
	return p.WriteTable.Map(&p.Arena, id, base, size, start, end)
}

// MapRead installs the window in the read table only.
func (p *Pager) MapRead(id BufferID, base int, size int, start int, end int) error {
	return p.ReadTable.Map(&p.Arena, id, base, size, start, end)
}

// Read returns the value at the address. Unmapped slots return Unmapped.
func (p *Pager) Read(address uint16) uint8 {
	e := p.ReadTable.entries[address/SlotSize]
	if !e.Mapped {
		return Unmapped
	}
	return p.Arena.buffers[e.Buffer][e.Offset+int(address%SlotSize)]
}

// Write the value to the address. Returns false if the slot is unmapped, in
// which case the write has been dropped.
func (p *Pager) Write(address uint16, value uint8) bool {
	e := p.WriteTable.entries[address/SlotSize]
	if !e.Mapped {
		return false
	}
	p.Arena.buffers[e.Buffer][e.Offset+int(address%SlotSize)] = value
	return true
}

// Summary returns a multiline string describing the read and write tables.
// Adjacent slots that map contiguous parts of the same buffer are collapsed
// into a single line.
func (p *Pager) Summary() string {
	s := strings.Builder{}
	s.WriteString("read\n")
	s.WriteString(p.summarise(&p.ReadTable))
	s.WriteString("write\n")
	s.WriteString(p.summarise(&p.WriteTable))
	return s.String()
}

func (p *Pager) summarise(t *Table) string {
	s := strings.Builder{}

	describe := func(e Entry) string {
		if !e.Mapped {
			return "unmapped"
		}
		return fmt.Sprintf("%s [%04x]", p.Arena.Name(e.Buffer), e.Offset)
	}

	start := 0
	for slot := 1; slot <= NumSlots; slot++ {
		if slot < NumSlots {
			prev := t.entries[slot-1]
			e := t.entries[slot]
			if e.Mapped == prev.Mapped && (!e.Mapped || (e.Buffer == prev.Buffer && e.Offset == prev.Offset+SlotSize)) {
				continue
			}
		}
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start*SlotSize, slot*SlotSize-1, describe(t.entries[start])))
		start = slot
	}

	return s.String()
}
