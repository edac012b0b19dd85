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

// Package prefs holds typed preference values that can be saved to and loaded
// from disk, and overridden from the command line.
//
// Preference values are declared as fields of a preferences type belonging to
// the package that uses them. Each value is added to a Disk instance under a
// unique key, usually of the form "package.value":
//
//	var p struct {
//		logging prefs.Bool
//	}
//	dsk, _ := prefs.NewDisk(filename)
//	_ = dsk.Add("mastersystem.logging", &p.logging)
//	_ = dsk.Load(true)
//
// The on disk format is one "key :: value" entry per line, sorted by key, and
// preceded by the WarningBoilerPlate line. Entries belonging to other Disk
// instances sharing the same file are preserved when saving.
//
// Values supplied on the command line, with PushCommandLineStack(), take
// precedence over values loaded from disk. Command line values are consumed
// as they are used so that unused values can be reported.
//
// All preference types are safe for concurrent use.
package prefs
