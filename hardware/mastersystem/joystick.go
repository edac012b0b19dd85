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
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/input"
)

// bits of the joystick state. a clear bit means that the input is active
const (
	joyUp    = 0x01
	joyDown  = 0x02
	joyLeft  = 0x04
	joyRight = 0x08
	joyFire  = 0x10
	joyFire2 = 0x20
)

// UnhandledEvent is returned by HandleEvent() for events the joystick does not
// recognise or event data of the wrong type.
const UnhandledEvent = "joystick: unhandled event (%v)"

// Joystick is a two button digital joystick.
type Joystick struct {
	state uint8
}

// NewJoystick is the preferred method of initialisation for the Joystick type.
func NewJoystick() *Joystick {
	return &Joystick{state: 0xff}
}

func (j *Joystick) String() string {
	return fmt.Sprintf("%06b", j.state&0x3f)
}

// State returns the active-low state of the joystick in the lower six bits.
// The upper two bits are always clear so that the states of two joysticks can
// be packed into the joystick ports.
func (j *Joystick) State() uint8 {
	return j.state & 0x3f
}

// HandleEvent applies an input event to the joystick. The event data must be
// a bool, true meaning pressed.
func (j *Joystick) HandleEvent(ev input.Event, data input.EventData) error {
	var bit uint8
	switch ev {
	case input.NoEvent:
		return nil
	case input.Up:
		bit = joyUp
	case input.Down:
		bit = joyDown
	case input.Left:
		bit = joyLeft
	case input.Right:
		bit = joyRight
	case input.Fire:
		bit = joyFire
	case input.Fire2:
		bit = joyFire2
	default:
		return curated.Errorf(UnhandledEvent, ev)
	}

	pressed, ok := data.(bool)
	if !ok {
		return curated.Errorf(UnhandledEvent, data)
	}

	if pressed {
		j.state &^= bit
	} else {
		j.state |= bit
	}

	return nil
}
