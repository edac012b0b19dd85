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

// Package cartridgeloader loads the media attached to an emulated machine:
// cartridge images, BIOS images and tape recordings.
//
// Data is loaded with the Load() function of the Loader type. Local files and
// files over HTTP are supported:
//
//	cl := cartridgeloader.NewLoader("roms/Alex Kidd.sms")
//	err := cl.Load()
//
// The kind of the media is decided by the filename extension. Recordings in
// WAV and MP3 format are tapes, everything else is a cartridge.
//
// ROMs required by the machine itself, the BIOS for example, are supplied by
// a ROMFetcher.
package cartridgeloader
