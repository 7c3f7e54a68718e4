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

package ports

import (
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
)

// Event represents the actions that can be performed at one of the gun
// ports.
type Event string

// List of defined events. The comment indicates the expected type of the
// associated EventData.
const (
	NoEvent Event = "NoEvent" // nil

	// gun buttons.
	Trigger Event = "Trigger" // bool
	A       Event = "A"       // bool
	B       Event = "B"       // bool
	C       Event = "C"       // bool
	Select  Event = "Select"  // bool
	Start   Event = "Start"   // bool

	// d-pad.
	DPadUp    Event = "DPadUp"    // bool
	DPadDown  Event = "DPadDown"  // bool
	DPadLeft  Event = "DPadLeft"  // bool
	DPadRight Event = "DPadRight" // bool

	// pseudo-buttons interpreted by the gun itself rather than reported on
	// the wire.
	ShootOffscreen Event = "ShootOffscreen" // bool
	Recalibrate    Event = "Recalibrate"    // bool

	// relative aiming half-axes. data is the half-axis magnitude in the
	// range [0,1].
	RelativeLeft  Event = "RelativeLeft"  // float32
	RelativeRight Event = "RelativeRight" // float32
	RelativeUp    Event = "RelativeUp"    // float32
	RelativeDown  Event = "RelativeDown"  // float32
)

// EventData is the value associated with the event. The underlying type
// should be restricted to bool or float32. string is also acceptable but for
// simplicity of playback parsers, the strings "true" or "false" should not
// be used and numbers should be represented by float32 never as a string.
type EventData interface{}

// EventRecorder implementations mirror an incoming event.
//
// Implementations should be able to handle being attached to more than one
// peripheral at once. The PortID parameter of the RecordEvent() function
// helps differentiate between multiple devices.
type EventRecorder interface {
	RecordEvent(plugging.PortID, Event, EventData) error
}
