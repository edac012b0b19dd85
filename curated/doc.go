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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is kept with the error and is used to identify it later. The
// Is() function checks whether an error was created with a specific pattern
// and the Has() function checks whether the pattern occurs anywhere in the
// error chain:
//
//	e := curated.Errorf("pagetable: slot out of range (%d)", n)
//	f := curated.Errorf("mastersystem: %v", e)
//
//	curated.Is(f, "pagetable: slot out of range (%d)")  // false
//	curated.Has(f, "pagetable: slot out of range (%d)") // true
//
// Sentinel errors are pattern strings exported as constants by the package
// that creates them. For example, the mastersystem package exports
// MissingROMs:
//
//	m, err := mastersystem.New(target, fetcher)
//	if curated.Has(err, mastersystem.MissingROMs) {
//		...
//	}
//
// The Error() function normalises the message so that duplicate adjacent
// parts of the chain are removed. Parts are separated by the sub-string ": "
// so that
//
//	curated.Errorf("tape: %v", curated.Errorf("tape: %v", "unexpected end"))
//
// prints as "tape: unexpected end".
//
// IsAny() answers whether an error is curated at all. An uncurated error is
// one that the emulation did not expect and the front end should treat it as
// such.
package curated
