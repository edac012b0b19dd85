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

// Package assert reports internal inconsistencies in the emulation. An
// internal inconsistency is a defect in the emulator's own tables or decoding
// logic (an address decode that falls outside every port group for example)
// and not a condition caused by the program being emulated.
//
// By default an inconsistency is logged and the emulation continues with the
// offending operation abandoned. Building with the "assertions" tag causes
// Inconsistency() to panic instead, so that the defect is found as early as
// possible:
//
//	go test -tags assertions ./...
package assert

import (
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/logger"
)

// InternalInconsistency is the pattern for errors created by Inconsistency().
const InternalInconsistency = "internal inconsistency: %v"

// Inconsistency reports that the emulation has reached a state that should
// be impossible. The report is logged whatever the logging preference. When
// assertions are enabled the panic value is a curated error that satisfies
// curated.Has(err, InternalInconsistency).
func Inconsistency(tag string, pattern string, values ...interface{}) {
	err := curated.Errorf(InternalInconsistency, curated.Errorf(pattern, values...))
	logger.Log(logger.Allow, tag, err)
	if enabled {
		panic(err)
	}
}

// Enabled returns true if the assert package has been built with the
// "assertions" tag.
func Enabled() bool {
	return enabled
}
