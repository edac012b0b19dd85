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

// Package sn76489 implements the SN76489 programmable sound generator and the
// variant built into the Master System VDP.
//
// The chip has three square wave tone channels and one noise channel. Each
// channel has a four bit attenuation in 2dB steps. Register writes use a
// latch/data byte protocol: a byte with bit 7 set selects a channel register
// and supplies its low four bits, a byte with bit 7 clear supplies further
// bits to the most recently latched register.
//
// The chip is a sample source for the audio.Speaker. One sample is generated
// for every cycle of the chip's input clock, which is the CPU clock divided by
// two. Register writes and sample generation are ordered through an
// audio.Queue by wrapping the chip in an audio.Output.
package sn76489
