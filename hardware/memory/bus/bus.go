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

// Package bus defines the contract between a CPU and the machine it is
// installed in.
//
// The CPU is not emulated in terms of memory reads and writes. Instead, for
// every portion of a machine cycle that elapses, the CPU presents a
// MachineCycle to the machine's Handler. The Handler accounts for the elapsed
// time, services the memory or I/O transaction when the cycle is terminal and
// tells the CPU about changes to its interrupt input through the
// InterruptReceiver interface.
package bus

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/clocks"
)

// Operation is the type of bus activity in a machine cycle.
type Operation int

// List of valid Operation values.
const (
	ReadOpcode Operation = iota
	Read
	Write
	Input
	Output
	Interrupt
	Refresh
	Internal
	BusAcknowledge
)

func (op Operation) String() string {
	switch op {
	case ReadOpcode:
		return "read opcode"
	case Read:
		return "read"
	case Write:
		return "write"
	case Input:
		return "input"
	case Output:
		return "output"
	case Interrupt:
		return "interrupt acknowledge"
	case Refresh:
		return "refresh"
	case Internal:
		return "internal"
	case BusAcknowledge:
		return "bus acknowledge"
	}
	return "unknown operation"
}

// MachineCycle describes one portion of a CPU machine cycle.
//
// Multi-phase bus protocols present several MachineCycles for a single
// transaction. Only the terminal phase carries an authoritative address and
// operation. Non-terminal phases only represent elapsed time.
type MachineCycle struct {
	Operation Operation

	// whether this is the phase at which the transaction is serviced
	Terminal bool

	// the address is only meaningful if AddressValid is true
	Address      uint16
	AddressValid bool

	// for Write and Output, the value being placed on the bus by the CPU. for
	// every other operation the Handler places the result here
	Value uint8

	// the length of this portion of the machine cycle
	Length clocks.HalfCycles
}

func (c MachineCycle) String() string {
	if !c.Terminal {
		return fmt.Sprintf("%s (non-terminal) %d", c.Operation, c.Length)
	}
	return fmt.Sprintf("%s %#04x=%#02x %d", c.Operation, c.Address, c.Value, c.Length)
}

// Handler is implemented by machines to service the CPU's machine cycles.
//
// The return value is the number of additional half-cycles the CPU should wait
// before continuing, in other words any wait states inserted by the machine.
type Handler interface {
	PerformMachineCycle(c *MachineCycle) clocks.HalfCycles
}

// InterruptReceiver is implemented by the CPU.
//
// The offset argument is the time relative to the end of the current machine
// cycle at which the change in the interrupt line took place. It is zero or
// negative, a negative value meaning the change happened during the cycle.
type InterruptReceiver interface {
	SetInterruptLine(active bool, offset clocks.HalfCycles)
}
