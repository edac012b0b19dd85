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

package pagetable_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/memory/pagetable"
	"github.com/jetsetilly/gopher8bit/test"
)

func pattern(size int) []uint8 {
	d := make([]uint8, size)
	for i := range d {
		d[i] = uint8(i ^ (i >> 8))
	}
	return d
}

func TestUnmapped(t *testing.T) {
	var p pagetable.Pager

	for a := 0; a < 0x10000; a += 0x111 {
		test.ExpectEquality(t, p.Read(uint16(a)), pagetable.Unmapped)
		test.ExpectFailure(t, p.Write(uint16(a), 0x00))
	}

	// a read from an unmapped slot has no effect on the write table
	ram := p.Arena.Add("ram", make([]uint8, 1024))
	test.DemandSuccess(t, p.WriteTable.Map(&p.Arena, ram, 0, 1024, 0x0000, 0))
	test.ExpectEquality(t, p.Read(0x0000), pagetable.Unmapped)
	test.ExpectSuccess(t, p.Write(0x0000, 0x42))
	test.ExpectEquality(t, p.Arena.Data(ram)[0], uint8(0x42))
}

func TestMirroring(t *testing.T) {
	var p pagetable.Pager

	// 8KB mirrored through 16KB
	ram := p.Arena.Add("ram", make([]uint8, 8192))
	test.DemandSuccess(t, p.Map(ram, 0, 8192, 0xc000, 0x10000))

	test.ExpectSuccess(t, p.Write(0xc123, 0x55))
	test.ExpectEquality(t, p.Read(0xe123), uint8(0x55))

	test.ExpectSuccess(t, p.Write(0xfffe, 0xaa))
	test.ExpectEquality(t, p.Read(0xdffe), uint8(0xaa))
}

func TestWindow(t *testing.T) {
	var p pagetable.Pager

	data := pattern(0x10000)
	cart := p.Arena.Add("cartridge", data)

	// a 16KB window starting at 32KB into the buffer, installed at 0x4000
	test.DemandSuccess(t, p.MapRead(cart, 0x8000, 0x4000, 0x4000, 0))
	for a := 0x4000; a < 0x8000; a += 0x101 {
		test.ExpectEquality(t, p.Read(uint16(a)), data[0x8000+a-0x4000])
	}

	// outside the window is still unmapped
	test.ExpectEquality(t, p.Read(0x3fff), pagetable.Unmapped)
	test.ExpectEquality(t, p.Read(0x8000), pagetable.Unmapped)

	// a later call overwrites the first slot only
	test.DemandSuccess(t, p.MapRead(cart, 0, 0x400, 0x4000, 0))
	test.ExpectEquality(t, p.Read(0x4001), data[1])
	test.ExpectEquality(t, p.Read(0x4401), data[0x8401])
}

func TestInvalidMapping(t *testing.T) {
	var p pagetable.Pager
	small := p.Arena.Add("small", make([]uint8, 2048))

	err := p.MapRead(small, 0, 4096, 0, 0)
	test.ExpectSuccess(t, curated.Is(err, pagetable.InvalidWindow))

	err = p.MapRead(small+1, 0, 1024, 0, 0)
	test.ExpectSuccess(t, curated.Is(err, pagetable.InvalidBuffer))

	err = p.MapRead(small, 0, 1024, 0xfc00, 0x10400)
	test.ExpectSuccess(t, curated.Is(err, pagetable.InvalidRange))
}

const expectedSummary = `read
0000 -> 1fff	bios [0000]
2000 -> bfff	unmapped
c000 -> dfff	ram [0000]
e000 -> ffff	ram [0000]
write
0000 -> bfff	unmapped
c000 -> dfff	ram [0000]
e000 -> ffff	ram [0000]
`

func TestSummary(t *testing.T) {
	var p pagetable.Pager

	bios := p.Arena.Add("bios", make([]uint8, 8192))
	ram := p.Arena.Add("ram", make([]uint8, 8192))
	test.DemandSuccess(t, p.Map(ram, 0, 8192, 0xc000, 0x10000))
	test.DemandSuccess(t, p.MapRead(bios, 0, 8192, 0x0000, 0))

	test.ExpectEquality(t, p.Summary(), expectedSummary)

	p.Clear()
	test.ExpectEquality(t, p.Read(0xc000), pagetable.Unmapped)
}
