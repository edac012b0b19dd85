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

// Package audio connects emulation-time audio events to the rate at which
// audio is consumed by the output device.
//
// A sound chip's register writes happen at emulation time but samples are
// consumed at the rate of the audio device. The Queue separates the two. Work
// is deferred onto the Queue in emulation order and performed later, in bulk
// and in the same order, by a call to Perform(). The front end must call
// Perform() at least once per output frame and Flush() before shutting down
// so that trailing events are not lost.
//
// The Speaker converts samples generated at a chip's input rate to the rate
// of the output device, applying a low-pass filter on the way.
package audio
