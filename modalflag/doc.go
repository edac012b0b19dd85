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

// Package modalflag wraps the flag package of the Go standard library so that
// a command line can be split into a series of modes, each with its own
// flags. For example:
//
//	gopher8bit -log TAPE -bytes recording.wav
//
// The -log flag belongs to the top level, "TAPE" selects a mode and -bytes is
// a flag of the TAPE mode.
//
// Parsing begins with NewArgs(). Flags and sub-modes for the current level
// are then added and Parse() is called. If a sub-mode was selected then Mode()
// returns its name. To parse the flags of that mode call NewMode(), add the
// flags for the mode and call Parse() again.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TAPE")
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "TAPE":
//		md.NewMode()
//		bytes := md.AddBool("bytes", false, "print bytes")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Sub-mode names are case insensitive.
package modalflag
