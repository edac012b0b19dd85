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

// Package input defines the discrete events produced by game controllers.
// Events are applied immediately by the machine that receives them. There is
// no buffering or debouncing.
package input

import "fmt"

// PortID identifies a controller port.
type PortID int

// List of valid PortID values.
const (
	Player0 PortID = iota
	Player1
)

func (id PortID) String() string {
	switch id {
	case Player0:
		return "player 0"
	case Player1:
		return "player 1"
	}
	return fmt.Sprintf("port %d", int(id))
}

// Event represents an action performed on a controller.
type Event string

// List of defined events. The EventData for each is a bool, true meaning
// pressed.
const (
	NoEvent Event = "NoEvent"
	Up      Event = "Up"
	Down    Event = "Down"
	Left    Event = "Left"
	Right   Event = "Right"
	Fire    Event = "Fire"
	Fire2   Event = "Fire2"
)

// EventData is the value associated with the event.
type EventData interface{}

// Handler is implemented by machines that accept controller input.
type Handler interface {
	HandleEvent(id PortID, ev Event, data EventData) error
}
