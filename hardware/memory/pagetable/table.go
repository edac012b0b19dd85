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
	"github.com/jetsetilly/gopher8bit/curated"
)

// Sentinel error patterns returned by Map().
const (
	InvalidBuffer = "pagetable: invalid buffer (%d)"
	InvalidWindow = "pagetable: invalid window (%#x bytes at offset %#x of %#x)"
	InvalidRange  = "pagetable: invalid address range (%#x to %#x)"
)

// Entry is a single slot in a Table.
type Entry struct {
	Mapped bool
	Buffer BufferID

	// offset into the buffer of the first byte of the slot
	Offset int
}

// Table maps every 1KB slot of the address space.
type Table struct {
	entries [NumSlots]Entry
}

// Entry returns the entry for the slot containing the address.
func (t *Table) Entry(address uint16) Entry {
	return t.entries[address/SlotSize]
}

// Map installs a window of a buffer across every slot in the address range
// start (inclusive) to end (exclusive). An end value of zero means start+size.
//
// The window is size bytes of the buffer beginning at offset base. If the
// address range is larger than the window then the window repeats. Previous
// entries for the slots in the range are overwritten.
func (t *Table) Map(arena *Arena, id BufferID, base int, size int, start int, end int) error {
	if !arena.valid(id) {
		return curated.Errorf(InvalidBuffer, id)
	}

	if size < SlotSize || base < 0 || base+size > len(arena.Data(id)) {
		return curated.Errorf(InvalidWindow, size, base, len(arena.Data(id)))
	}

	if end == 0 {
		end = start + size
	}

	if start < 0 || end > 0x10000 || start >= end || start%SlotSize != 0 {
		return curated.Errorf(InvalidRange, start, end)
	}

	for address := start; address < end; address += SlotSize {
		t.entries[address/SlotSize] = Entry{
			Mapped: true,
			Buffer: id,
			Offset: base + ((address - start) % size),
		}
	}

	return nil
}

// Unmap clears every slot in the address range start (inclusive) to end
// (exclusive).
func (t *Table) Unmap(start int, end int) {
	if start < 0 {
		start = 0
	}
	if end > 0x10000 {
		end = 0x10000
	}
	for address := start; address < end; address += SlotSize {
		t.entries[address/SlotSize] = Entry{}
	}
}
