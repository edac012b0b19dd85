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

package clocks

// Cycles is a count of whole clock cycles.
type Cycles int64

// HalfCycles is a count of half clock cycles.
type HalfCycles int64

// Never is the value used for durations until an event that is not scheduled
// to happen. Any negative duration should be treated as never.
const Never HalfCycles = -1

// HalfCycles converts whole cycles to half cycles.
func (c Cycles) HalfCycles() HalfCycles {
	return HalfCycles(c * 2)
}

// Cycles returns the number of whole cycles, rounded down.
func (h HalfCycles) Cycles() Cycles {
	return Cycles(h / 2)
}

// Flush returns the accumulated value and sets the accumulator to zero.
func (h *HalfCycles) Flush() HalfCycles {
	v := *h
	*h = 0
	return v
}

// DivideCycles returns the number of whole periods of length divisor (in whole
// cycles) contained in the accumulator. The remainder, which may include an
// odd half cycle, is left in the accumulator.
func (h *HalfCycles) DivideCycles(divisor Cycles) Cycles {
	if divisor <= 0 {
		return 0
	}
	period := divisor.HalfCycles()
	n := *h / period
	*h -= n * period
	return Cycles(n)
}
