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

// Package pagetable implements the paged memory map used by machines where
// memory is selected with 1KB granularity.
//
// Memory is owned by an Arena. A Table maps each of the 64 1KB slots of a
// 16-bit address space either to nothing or to an offset inside one of the
// Arena's buffers. Table entries refer to buffers by BufferID and never hold a
// reference to the memory itself, so rebuilding a Table after a bank-switch
// can never leave an entry pointing at memory that no longer exists.
//
// A Pager pairs a read Table and a write Table. Machines rebuild both tables
// wholesale whenever paging state changes. There is no support for patching
// individual entries.
package pagetable

// SlotSize is the granularity of a Table.
const SlotSize = 1024

// NumSlots is the number of slots in a 16-bit address space.
const NumSlots = 0x10000 / SlotSize

// Unmapped is the value returned by a read from an unmapped slot.
const Unmapped = uint8(0xff)

// BufferID identifies a buffer in an Arena.
type BufferID int

// Arena owns the memory referred to by a Table.
type Arena struct {
	names   []string
	buffers [][]uint8
}

// Add a buffer to the arena. The arena takes ownership of the data.
func (a *Arena) Add(name string, data []uint8) BufferID {
	a.names = append(a.names, name)
	a.buffers = append(a.buffers, data)
	return BufferID(len(a.buffers) - 1)
}

// Data returns the buffer for the ID.
func (a *Arena) Data(id BufferID) []uint8 {
	return a.buffers[id]
}

// Name returns the name the buffer was added with.
func (a *Arena) Name(id BufferID) string {
	return a.names[id]
}

// Len returns the number of buffers in the arena.
func (a *Arena) Len() int {
	return len(a.buffers)
}

func (a *Arena) valid(id BufferID) bool {
	return id >= 0 && int(id) < len(a.buffers)
}
