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

package sn76489_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/audio"
	"github.com/jetsetilly/gopher8bit/hardware/chips"
	"github.com/jetsetilly/gopher8bit/hardware/sn76489"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestImplements(t *testing.T) {
	var q audio.Queue
	c := sn76489.NewChip(sn76489.SMS)
	out := audio.NewOutput(&q, c, audio.NewSpeaker(c, 1789770, 44100))

	var a chips.Audio
	test.DemandImplements(t, out, &a)
	var s audio.Chip
	test.DemandImplements(t, c, &s)
}

func TestLatchAndData(t *testing.T) {
	c := sn76489.NewChip(sn76489.SMS)

	// latch tone 1 period low bits then data byte for the high bits
	c.SetRegister(0xa5)
	c.SetRegister(0x12)
	test.ExpectEquality(t, c.Period(1), uint16(0x125))

	// latch of low bits only replaces the low bits
	c.SetRegister(0xaf)
	test.ExpectEquality(t, c.Period(1), uint16(0x12f))

	// volume of tone 2
	c.SetRegister(0xd3)
	test.ExpectEquality(t, c.Volume(2), uint8(0x03))

	// noise volume
	c.SetRegister(0xf7)
	test.ExpectEquality(t, c.Volume(3), uint8(0x07))

	// noise control
	c.SetRegister(0xe5)
	test.ExpectEquality(t, c.NoiseMode(), uint8(0x05))
}

func TestDataByteToVolume(t *testing.T) {
	sms := sn76489.NewChip(sn76489.SMS)
	sms.SetRegister(0x90)
	sms.SetRegister(0x0a)
	test.ExpectEquality(t, sms.Volume(0), uint8(0x0a))

	psg := sn76489.NewChip(sn76489.SN76489)
	psg.SetRegister(0x90)
	psg.SetRegister(0x0a)
	test.ExpectEquality(t, psg.Volume(0), uint8(0x00))
}

func TestSilentAtReset(t *testing.T) {
	c := sn76489.NewChip(sn76489.SMS)
	samples := make([]int16, 1000)
	c.GetSamples(samples)
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d is not silent (%d)", i, s)
		}
	}
}

func TestToneFrequency(t *testing.T) {
	c := sn76489.NewChip(sn76489.SMS)

	// tone 0 at full volume with period 4
	c.SetRegister(0x84)
	c.SetRegister(0x00)
	c.SetRegister(0x90)

	samples := make([]int16, 8*4*20)
	c.GetSamples(samples)

	// one transition for every four counter clocks of eight input cycles
	transitions := 0
	for i := 1; i < len(samples); i++ {
		if samples[i] != samples[i-1] {
			transitions++
		}
	}
	test.ExpectEquality(t, transitions, 20)

	// output is either silent or full volume
	for _, s := range samples {
		test.ExpectSuccess(t, s == 0 || s == 8191)
	}
}

func TestNoiseOutput(t *testing.T) {
	c := sn76489.NewChip(sn76489.SMS)

	// white noise at the fastest rate and full volume
	c.SetRegister(0xe4)
	c.SetRegister(0xf0)

	samples := make([]int16, 10000)
	c.GetSamples(samples)

	high := 0
	for _, s := range samples {
		if s != 0 {
			high++
		}
	}
	test.ExpectSuccess(t, high > 0 && high < len(samples))
}
