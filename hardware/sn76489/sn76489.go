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

package sn76489

import (
	"fmt"
	"math"
	"strings"
)

// Personality selects the chip variant.
type Personality int

// List of valid Personality values.
const (
	SN76489 Personality = iota
	SMS
)

func (p Personality) String() string {
	switch p {
	case SN76489:
		return "SN76489"
	case SMS:
		return "SMS"
	}
	return "unknown personality"
}

// the tone and noise counters are clocked once for every eight input cycles
const counterDivider = 8

// maximum output of a single channel. four channels at full volume will not
// overflow an int16
const maxChannelVolume = 8191

// volumes is the attenuation table. each step is 2dB and the final step is
// silence
var volumes [16]int16

func init() {
	for i := 0; i < 15; i++ {
		volumes[i] = int16(maxChannelVolume * math.Pow(10, -0.1*float64(i)))
	}
	volumes[15] = 0
}

type tone struct {
	period  uint16
	counter uint16
	output  bool
	volume  uint8
}

type noise struct {
	mode    uint8
	counter uint16
	toggle  bool
	lfsr    uint16
	volume  uint8
}

// Chip is a SN76489 sound generator.
type Chip struct {
	personality Personality

	tones [3]tone
	noise noise

	// the most recently latched register
	latchedChannel int
	latchedVolume  bool

	// input cycles until the next counter clock
	divider int

	// the LFSR shape depends on the personality
	lfsrReset uint16
	lfsrTap   uint16
	lfsrTop   uint
}

// NewChip is the preferred method of initialisation for the Chip type.
func NewChip(personality Personality) *Chip {
	c := &Chip{
		personality: personality,
	}

	switch personality {
	case SMS:
		c.lfsrReset = 0x8000
		c.lfsrTap = 0x0009
		c.lfsrTop = 15
	default:
		c.lfsrReset = 0x4000
		c.lfsrTap = 0x0003
		c.lfsrTop = 14
	}

	c.Reset()
	return c
}

// Reset the chip to its power-on state. All channels are silent.
func (c *Chip) Reset() {
	for i := range c.tones {
		c.tones[i] = tone{volume: 0x0f}
	}
	c.noise = noise{volume: 0x0f, lfsr: c.lfsrReset}
	c.latchedChannel = 0
	c.latchedVolume = false
	c.divider = counterDivider
}

func (c *Chip) String() string {
	s := strings.Builder{}
	for i, t := range c.tones {
		s.WriteString(fmt.Sprintf("tone%d: %03x vol=%x  ", i, t.period, t.volume))
	}
	s.WriteString(fmt.Sprintf("noise: %x vol=%x", c.noise.mode, c.noise.volume))
	return s.String()
}

// SetRegister writes a byte to the chip. The write takes effect immediately.
// Use audio.Output to defer writes so that they interleave correctly with
// sample generation.
func (c *Chip) SetRegister(value uint8) {
	if value&0x80 == 0x80 {
		c.latchedChannel = int(value>>5) & 0x03
		c.latchedVolume = value&0x10 == 0x10
		c.applyLow(value & 0x0f)
		return
	}

	if c.latchedVolume || c.latchedChannel == 3 {
		// data bytes to the volume or noise registers replace the low bits.
		// the original SN76489 ignores them
		if c.personality == SMS {
			c.applyLow(value & 0x0f)
		}
		return
	}

	t := &c.tones[c.latchedChannel]
	t.period = (t.period & 0x00f) | (uint16(value&0x3f) << 4)
}

func (c *Chip) applyLow(data uint8) {
	if c.latchedVolume {
		if c.latchedChannel == 3 {
			c.noise.volume = data
		} else {
			c.tones[c.latchedChannel].volume = data
		}
		return
	}

	if c.latchedChannel == 3 {
		c.noise.mode = data & 0x07
		c.noise.lfsr = c.lfsrReset
		return
	}

	t := &c.tones[c.latchedChannel]
	t.period = (t.period & 0x3f0) | uint16(data)
}

// noise period in counter clocks. a mode of three takes its period from the
// third tone channel
func (c *Chip) noisePeriod() uint16 {
	return 0x10 << (c.noise.mode & 0x03)
}

func (c *Chip) shiftLFSR() {
	var feedback uint16
	if c.noise.mode&0x04 == 0x04 {
		// white noise
		f := c.noise.lfsr & c.lfsrTap
		f ^= f >> 8
		f ^= f >> 4
		f ^= f >> 2
		f ^= f >> 1
		feedback = f & 0x01
	} else {
		// periodic noise
		feedback = c.noise.lfsr & 0x01
	}
	c.noise.lfsr = (c.noise.lfsr >> 1) | (feedback << c.lfsrTop)
}

// clock all counters once
func (c *Chip) clock() {
	for i := range c.tones {
		t := &c.tones[i]
		if t.period <= 1 {
			// a period of zero or one holds the output high. this is used to play
			// samples through the volume register
			t.output = true
			continue
		}
		if t.counter > 0 {
			t.counter--
		}
		if t.counter == 0 {
			t.counter = t.period
			t.output = !t.output

			if i == 2 && c.noise.mode&0x03 == 0x03 && t.output {
				c.shiftLFSR()
			}
		}
	}

	if c.noise.mode&0x03 == 0x03 {
		return
	}

	if c.noise.counter > 0 {
		c.noise.counter--
	}
	if c.noise.counter == 0 {
		c.noise.counter = c.noisePeriod()
		c.noise.toggle = !c.noise.toggle
		if c.noise.toggle {
			c.shiftLFSR()
		}
	}
}

// level is the sum of all channels at the current time
func (c *Chip) level() int16 {
	var l int16
	for _, t := range c.tones {
		if t.output {
			l += volumes[t.volume]
		}
	}
	if c.noise.lfsr&0x01 == 0x01 {
		l += volumes[c.noise.volume]
	}
	return l
}

// GetSamples implements the audio.SampleSource interface.
func (c *Chip) GetSamples(target []int16) {
	for i := range target {
		c.divider--
		if c.divider == 0 {
			c.divider = counterDivider
			c.clock()
		}
		target[i] = c.level()
	}
}

// Period returns the ten bit period of a tone channel.
func (c *Chip) Period(channel int) uint16 {
	return c.tones[channel%3].period
}

// Volume returns the attenuation of a channel. Channel three is the noise
// channel.
func (c *Chip) Volume(channel int) uint8 {
	if channel == 3 {
		return c.noise.volume
	}
	return c.tones[channel%3].volume
}

// NoiseMode returns the three bit noise control value.
func (c *Chip) NoiseMode() uint8 {
	return c.noise.mode
}
