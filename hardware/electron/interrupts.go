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

package electron

import "strings"

// Interrupt is a set of bits in the ULA's interrupt status register.
type Interrupt uint8

// List of valid Interrupt flags.
const (
	PowerOnReset      Interrupt = 0x02
	DisplayEnd        Interrupt = 0x04
	RealTimeClock     Interrupt = 0x08
	ReceiveDataFull   Interrupt = 0x10
	TransmitDataEmpty Interrupt = 0x20
	HighToneDetect    Interrupt = 0x40
)

// TapeInterrupts are the flags that the tape engine can raise.
const TapeInterrupts = ReceiveDataFull | TransmitDataEmpty | HighToneDetect

var interruptNames = []struct {
	flag Interrupt
	name string
}{
	{PowerOnReset, "POR"},
	{DisplayEnd, "DE"},
	{RealTimeClock, "RTC"},
	{ReceiveDataFull, "RDF"},
	{TransmitDataEmpty, "TDE"},
	{HighToneDetect, "HTD"},
}

func (i Interrupt) String() string {
	var s strings.Builder
	for _, n := range interruptNames {
		if i&n.flag == n.flag {
			if s.Len() > 0 {
				s.WriteRune(' ')
			}
			s.WriteString(n.name)
		}
	}
	if s.Len() == 0 {
		return "-"
	}
	return s.String()
}
