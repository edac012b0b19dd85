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

// Package tape represents cassette tapes as streams of pulses.
//
// A pulse is a period during which the tape signal is at one level. Sources
// of pulses are either created in memory, with PulseTape, or decoded from a
// PCM recording in WAV or MP3 format with NewPCMTape().
//
// The Player advances through a Source as emulated time passes and hands each
// pulse to a PulseProcessor at the moment the pulse ends. The Recorder is the
// reverse and collects pulses emitted by an emulated machine. The recorded
// pulses can be rendered as PCM data for writing to disk.
package tape
