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

// Package mastersystem emulates the bus of the Sega Master System and SG-1000.
//
// The Machine type sits between a Z80 CPU core, which is not part of this
// package, and the machine's memory and peripheral chips. The CPU presents
// every bus transaction to the Machine as a bus.MachineCycle through the
// PerformMachineCycle() function and the Machine services it:
//
//   - memory reads and writes go through a page table, rebuilt whenever the
//     cartridge paging registers or the memory control register change
//   - port reads and writes are decoded to the VDP, the sound generator, the
//     joystick ports and the machine's control registers
//   - the interrupt line of the CPU is kept in step with the VDP
//
// Peripheral chips are advanced lazily. Time is accumulated for each chip and
// the chip is only brought up to date when the CPU accesses it or the front
// end calls Flush(). The front end must call Flush() at least once per output
// frame and Close() before discarding the Machine.
package mastersystem
