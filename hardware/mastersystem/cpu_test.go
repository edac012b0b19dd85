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

package mastersystem_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/cpu"
	"github.com/jetsetilly/gopher8bit/hardware/mastersystem"
	"github.com/jetsetilly/gopher8bit/hardware/memory/bus"
	"github.com/jetsetilly/gopher8bit/test"
)

func peek(m *mastersystem.Machine, address uint16) uint8 {
	c := bus.MachineCycle{Operation: bus.Read, Terminal: true, Address: address, AddressValid: true}
	m.PerformMachineCycle(&c)
	return c.Value
}

func TestProgram(t *testing.T) {
	cartridge := make([]uint8, 0x8000)
	copy(cartridge, []uint8{
		0xf3,             // DI
		0x31, 0xf0, 0xdf, // LD SP, 0xdff0
		0x3e, 0x90, // LD A, 0x90
		0xd3, 0x7f, // OUT (0x7f), A
		0x3e, 0x42, // LD A, 0x42
		0x32, 0x00, 0xc0, // LD (0xc000), A
		0x3e, 0x20, // LD A, 0x20
		0xd3, 0xbf, // OUT (0xbf), A
		0x3e, 0x81, // LD A, 0x81
		0xd3, 0xbf, // OUT (0xbf), A
		0xed, 0x56, // IM 1
		0xfb,       // EI
		0x18, 0xfe, // JR -2
	})
	copy(cartridge[0x38:], []uint8{
		0xdb, 0xbf, // IN A, (0xbf)
		0x3e, 0x77, // LD A, 0x77
		0x32, 0x01, 0xc0, // LD (0xc001), A
		0xfb,       // EI
		0xed, 0x4d, // RETI
	})

	m, err := mastersystem.New(mastersystem.Target{
		Model:     mastersystem.MasterSystem,
		Region:    mastersystem.Japan,
		Cartridge: cartridge,
	}, nil, nil)
	test.DemandSuccess(t, err)

	z := cpu.NewZ80(m)
	m.AttachCPU(z)

	test.ExpectEquality(t, m.PSG().Volume(0), uint8(0x0f))

	z.RunFor(m.VDP().FrameLength() * 2)
	m.Flush()

	test.ExpectEquality(t, m.PSG().Volume(0), uint8(0x00))
	test.ExpectEquality(t, peek(m, 0xc000), uint8(0x42))
	test.ExpectEquality(t, peek(m, 0xc001), uint8(0x77))

	// the interrupt handler read the status register so the line is clear
	test.ExpectFailure(t, m.VDP().InterruptLine())
}
