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
	"github.com/lightgun-emu/guncon2go/environment"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
)

// Peripheral represents an input device that can be plugged into one of the
// console's USB ports.
type Peripheral interface {
	// String should return information about the state of the peripheral.
	String() string

	// Peripheral is to be removed. The peripheral should stop any background
	// helpers it has started and release any host devices it has opened.
	Unplug()

	// Snapshot the instance of the Peripheral.
	Snapshot() Peripheral

	// The port the peripheral is plugged into.
	PortID() plugging.PortID

	// The ID of the peripheral being represented.
	ID() plugging.PeripheralID

	// Handle an incoming input event.
	HandleEvent(Event, EventData) (bool, error)

	// Reset state of the peripheral. This has nothing to do with the console
	// reset button.
	Reset()
}

// RestartPeripheral is implemented by peripherals that can significantly
// change configuration. Restarting is a special event and should not happen
// too often due to the possible nature of configuration changes.
type RestartPeripheral interface {
	Restart()
}

// NewPeripheral defines the function signature for creating a new
// peripheral, suitable for use with the Plug() function of the Ports type.
type NewPeripheral func(*environment.Environment, plugging.PortID) Peripheral
