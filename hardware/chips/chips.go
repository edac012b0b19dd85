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

// Package chips defines the capabilities that a machine requires of its
// peripheral chips. A machine holds references to these interfaces and never
// to a concrete chip type, so any chip family with the same capability can be
// installed.
//
// Chips are advanced lazily. The machine accumulates the time since a chip was
// last advanced and calls Advance() immediately before any operation whose
// result depends on the chip's current state.
package chips

import "github.com/jetsetilly/gopher8bit/hardware/clocks"

// Video is the capability required of a video display processor.
type Video interface {
	// advance the chip by the specified number of CPU half-cycles
	Advance(elapsed clocks.HalfCycles)

	// read and write the chip's ports. the address is the full port address
	// from the CPU and the chip decodes whichever bits it requires
	Register(address uint16) uint8
	SetRegister(address uint16, value uint8)

	// the current level of the chip's interrupt output
	InterruptLine() bool

	// the time until the chip's interrupt output will next become active, in
	// CPU half-cycles. a negative value means that no interrupt is scheduled
	TimeUntilInterrupt() clocks.HalfCycles

	// the raster line as seen through the V counter port
	CurrentLine() uint8

	// the horizontal counter as captured by the most recent latch
	LatchedHorizontalCounter() uint8

	// capture the current value of the horizontal counter
	LatchHorizontalCounter()
}

// Audio is the capability required of a sound generator.
type Audio interface {
	// advance the chip by the specified number of chip cycles
	Advance(elapsed clocks.Cycles)

	// write a value to the chip
	SetRegister(value uint8)
}

// InterruptSource is the subset of the Video capability required by an
// interrupt arbiter. It is satisfied by any chip that can raise an interrupt.
type InterruptSource interface {
	InterruptLine() bool
	TimeUntilInterrupt() clocks.HalfCycles
}
