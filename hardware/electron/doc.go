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

// Package electron contains the parts of the Acorn Electron that are
// concerned with the cassette interface.
//
// The Tape type is the bit-serial engine that sits between the tape player
// and the ULA. In input mode it assembles bytes from the pulses read from a
// tape and in output mode it shifts bytes out as pulses. In both directions
// the ULA is told about changes to the interrupt status through the
// TapeDelegate interface.
package electron
