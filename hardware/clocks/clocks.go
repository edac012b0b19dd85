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

// Package clocks defines the clock rates of the emulated machines and the
// types used to count time in the emulation.
//
// Time is only ever measured in cycles of a machine's master clock. The
// HalfCycles type is the fundamental unit because the Z80 bus protocol
// describes some of its phases in half-cycle lengths.
package clocks

// Master System / SG-1000 CPU clock rates in Hz.
const (
	NTSC_SMS = 3579540.0
	PAL_SMS  = 3546893.0
)

// Electron CPU and tape clock rate in Hz.
const Electron = 2000000.0
