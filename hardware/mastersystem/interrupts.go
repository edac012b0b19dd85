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

package mastersystem

import (
	"github.com/jetsetilly/gopher8bit/hardware/chips"
	"github.com/jetsetilly/gopher8bit/hardware/clocks"
	"github.com/jetsetilly/gopher8bit/hardware/memory/bus"
)

// arbiter keeps the CPU's interrupt line in step with an interrupt source.
// between accesses to the source the arbiter counts down to the predicted
// interrupt.
type arbiter struct {
	cpu bus.InterruptReceiver

	// a value of zero or less means that no interrupt is pending
	timeUntilInterrupt clocks.HalfCycles
}

// update is called after every access to the interrupt source
func (a *arbiter) update(src chips.InterruptSource) {
	if a.cpu != nil {
		a.cpu.SetInterruptLine(src.InterruptLine(), 0)
	}
	a.timeUntilInterrupt = src.TimeUntilInterrupt()
}

// elapse is called for every machine cycle. the offset given to the CPU is
// how far into the past the interrupt was raised
func (a *arbiter) elapse(length clocks.HalfCycles) {
	if a.timeUntilInterrupt <= 0 {
		return
	}

	a.timeUntilInterrupt -= length
	if a.timeUntilInterrupt <= 0 && a.cpu != nil {
		a.cpu.SetInterruptLine(true, a.timeUntilInterrupt)
	}
}
