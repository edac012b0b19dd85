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

// Package cpu connects an instruction set emulation to the bus of a machine.
//
// The Z80 type uses the Z80 emulation of "github.com/koron-go/z80". That
// emulation works in whole instructions and knows nothing of machine cycles,
// so every memory and I/O access is presented to the bus.Handler as a single
// terminal MachineCycle of nominal length: four cycles for an opcode fetch or
// an I/O access and three cycles for any other memory access. Internal cycles
// are not accounted for and so the timing is approximate.
//
// The interrupt line is level triggered. While it is held, and the CPU has
// interrupts enabled, each step begins with an interrupt acknowledge cycle
// and the value returned by the bus is used as the interrupt data.
package cpu
