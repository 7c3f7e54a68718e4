// This file is part of Guncon2Go.
//
// Guncon2Go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Guncon2Go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Guncon2Go.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import (
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
)

// HandleInput conceptualises data being sent to the console ports.
type HandleInput interface {
	// HandleEvent forwards the Event and EventData to the device connected
	// to the specified PortID.
	HandleEvent(id plugging.PortID, ev ports.Event, d ports.EventData) (bool, error)

	// PeripheralID identifies the device currently attached to the port.
	PeripheralID(id plugging.PortID) plugging.PeripheralID
}

// Event represents the raw input from the host hardware.
type Event interface{}

// EventQuit is sent when the user closes the host window.
type EventQuit struct{}

// EventMouseMotion is the mouse position in window coordinates. OffScreen
// is set when the mouse has left the window entirely.
type EventMouseMotion struct {
	X, Y      float32
	OffScreen bool
}

// MouseButton identifies the mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton is the mouse button being pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventKeyboard is a key being pressed or released.
type EventKeyboard struct {
	Key  string
	Down bool
}

// GamepadButton identifies the gamepad button.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonA
	GamepadButtonB
	GamepadButtonC
	GamepadButtonSelect
	GamepadButtonStart
	GamepadButtonTrigger
	GamepadButtonShootOffscreen
	GamepadButtonRecalibrate
)

// EventGamepadButton is a gamepad button being pressed or released.
type EventGamepadButton struct {
	ID     plugging.PortID
	Button GamepadButton
	Down   bool
}

// DPadDirection indicates the direction of the gamepad DPad.
type DPadDirection int

// List of valid DPadDirection values.
const (
	DPadCentre DPadDirection = iota
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
)

// EventGamepadDPad is the gamepad DPad being pressed in a direction.
type EventGamepadDPad struct {
	ID        plugging.PortID
	Direction DPadDirection
}

// EventGamepadStick is a gamepad analogue stick value, used for relative
// aiming. Values are in the range [-1,1] per axis.
type EventGamepadStick struct {
	ID    plugging.PortID
	Horiz float32
	Vert  float32
}
