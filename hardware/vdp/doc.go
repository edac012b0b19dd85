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

// Package vdp implements the timing and register model of the TMS9918A video
// display processor and its Master System derivative.
//
// Only the parts of the chip visible to the CPU are modelled: VRAM and CRAM
// access through the data and control ports, the status register, the
// frame and line interrupts, and the V and H counters. Pixel generation is
// the concern of a presentation layer and is not part of this package.
//
// The VDP satisfies the chips.Video interface. It is advanced lazily in CPU
// half-cycles and can predict the time until its interrupt output next
// becomes active.
package vdp
