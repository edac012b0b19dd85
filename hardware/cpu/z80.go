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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/clocks"
	"github.com/jetsetilly/gopher8bit/hardware/memory/bus"
	"github.com/koron-go/z80"
)

// nominal lengths of the machine cycles presented to the bus
const (
	opcodeLength clocks.HalfCycles = 8
	memoryLength clocks.HalfCycles = 6
	ioLength     clocks.HalfCycles = 8

	// interrupt acknowledge is an opcode fetch with two extra wait states
	acknowledgeLength clocks.HalfCycles = 12

	// time that passes for each step while the CPU is halted
	haltLength clocks.HalfCycles = 8
)

// Z80 drives a bus.Handler with the Z80 instruction set.
type Z80 struct {
	cpu     z80.CPU
	handler bus.Handler

	// state of the interrupt input
	irq bool

	// total time elapsed since creation
	elapsed clocks.HalfCycles

	// the number of bus accesses made during the current step. the first
	// access at the program counter is the opcode fetch
	accesses int
	pc       uint16
}

// NewZ80 is the preferred method of initialisation for the Z80 type.
func NewZ80(handler bus.Handler) *Z80 {
	c := &Z80{
		handler: handler,
	}
	c.cpu = z80.CPU{
		Memory: c,
		IO:     c,
	}
	return c
}

func (c *Z80) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x irq=%v", c.cpu.PC, c.cpu.SP, c.irq)
}

// Reset the CPU registers. The program counter is set to zero.
func (c *Z80) Reset() {
	c.cpu.States = z80.States{}
	c.cpu.Interrupt = nil
	c.cpu.HALT = false
}

// PC returns the program counter.
func (c *Z80) PC() uint16 {
	return c.cpu.PC
}

// Elapsed returns the time that has elapsed since creation.
func (c *Z80) Elapsed() clocks.HalfCycles {
	return c.elapsed
}

// SetInterruptLine implements the bus.InterruptReceiver interface. The line
// is level triggered and stays asserted until the caller clears it.
func (c *Z80) SetInterruptLine(active bool, _ clocks.HalfCycles) {
	c.irq = active
	if !active {
		c.cpu.Interrupt = nil
	}
}

// the library forgets an interrupt once accepted so the request is made
// afresh for every step that the line is held and interrupts are enabled.
// the acknowledge cycle supplies the byte placed on the data bus
func (c *Z80) requestInterrupt() {
	c.cpu.Interrupt = nil
	if !c.irq || !c.cpu.IFF1 {
		return
	}
	v := c.cycle(bus.MachineCycle{
		Operation: bus.Interrupt,
		Terminal:  true,
		Length:    acknowledgeLength,
	})
	c.cpu.Interrupt = &z80.Interrupt{
		Type: z80.IMType,
		Data: []uint8{v},
	}
}

// Step executes a single instruction and returns the time taken.
func (c *Z80) Step() clocks.HalfCycles {
	start := c.elapsed
	c.accesses = 0
	c.pc = c.cpu.PC

	c.requestInterrupt()
	c.cpu.Step()

	// no bus activity means the CPU is halted
	if c.accesses == 0 {
		c.cycle(bus.MachineCycle{
			Operation: bus.Internal,
			Terminal:  true,
			Length:    haltLength,
		})
	}

	return c.elapsed - start
}

// RunFor executes instructions until at least the specified amount of time
// has elapsed. Returns the time actually taken.
func (c *Z80) RunFor(length clocks.HalfCycles) clocks.HalfCycles {
	start := c.elapsed
	target := c.elapsed + length
	for c.elapsed < target {
		c.Step()
	}
	return c.elapsed - start
}

func (c *Z80) cycle(mc bus.MachineCycle) uint8 {
	wait := c.handler.PerformMachineCycle(&mc)
	c.elapsed += mc.Length + wait
	c.accesses++
	return mc.Value
}

// Get implements the z80.Memory interface.
func (c *Z80) Get(address uint16) uint8 {
	mc := bus.MachineCycle{
		Operation:    bus.Read,
		Terminal:     true,
		Address:      address,
		AddressValid: true,
		Length:       memoryLength,
	}
	if c.accesses == 0 && address == c.pc {
		mc.Operation = bus.ReadOpcode
		mc.Length = opcodeLength
	}
	return c.cycle(mc)
}

// Set implements the z80.Memory interface.
func (c *Z80) Set(address uint16, value uint8) {
	c.cycle(bus.MachineCycle{
		Operation:    bus.Write,
		Terminal:     true,
		Address:      address,
		AddressValid: true,
		Value:        value,
		Length:       memoryLength,
	})
}

// In implements the z80.IO interface.
func (c *Z80) In(address uint8) uint8 {
	return c.cycle(bus.MachineCycle{
		Operation:    bus.Input,
		Terminal:     true,
		Address:      uint16(address),
		AddressValid: true,
		Length:       ioLength,
	})
}

// Out implements the z80.IO interface.
func (c *Z80) Out(address uint8, value uint8) {
	c.cycle(bus.MachineCycle{
		Operation:    bus.Output,
		Terminal:     true,
		Address:      uint16(address),
		AddressValid: true,
		Value:        value,
		Length:       ioLength,
	})
}
