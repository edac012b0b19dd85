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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/clocks"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestFlush(t *testing.T) {
	var h clocks.HalfCycles
	h += 7
	h += 8
	test.ExpectEquality(t, h.Flush(), clocks.HalfCycles(15))
	test.ExpectEquality(t, h, clocks.HalfCycles(0))
}

func TestDivideCycles(t *testing.T) {
	var h clocks.HalfCycles = 9

	// 9 half cycles is two whole periods of two cycles with one half cycle
	// remaining
	test.ExpectEquality(t, h.DivideCycles(2), clocks.Cycles(2))
	test.ExpectEquality(t, h, clocks.HalfCycles(1))

	h += 3
	test.ExpectEquality(t, h.DivideCycles(2), clocks.Cycles(1))
	test.ExpectEquality(t, h, clocks.HalfCycles(0))

	test.ExpectEquality(t, h.DivideCycles(0), clocks.Cycles(0))
}

func TestConversion(t *testing.T) {
	test.ExpectEquality(t, clocks.Cycles(228).HalfCycles(), clocks.HalfCycles(456))
	test.ExpectEquality(t, clocks.HalfCycles(457).Cycles(), clocks.Cycles(228))
}
