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

// Package plugging conceptualises the act of plugging a peripheral into one
// of the two USB ports of the emulated console.
package plugging

// PortID differentiates the two USB ports into which peripherals can be
// plugged.
type PortID string

// List of defined PortIDs.
const (
	Unplugged PortID = "Unplugged"
	Port0     PortID = "Port0"
	Port1     PortID = "Port1"
)

// Index returns the numeric index of the port, as referred to by per-title
// calibration data. Returns -1 for any PortID that is not a real port.
func (id PortID) Index() int {
	switch id {
	case Port0:
		return 0
	case Port1:
		return 1
	}
	return -1
}

// PeripheralID identifies the type of peripheral that is plugged into a
// port.
type PeripheralID string

// List of defined PeripheralIDs.
const (
	PeriphNone    PeripheralID = "None"
	PeriphGunCon2 PeripheralID = "GunCon2"
)

// PlugMonitor implementations are notified whenever a plugging event occurs.
type PlugMonitor interface {
	Plugged(port PortID, peripheral PeripheralID)
}

// Monitorable implementations are capable of having a PlugMonitor attached.
//
// It is expected that the implementation will call PlugMonitor.Plugged() when
// a monitor is attached, as well as whenever a plugging event occurs.
type Monitorable interface {
	AttachPlugMonitor(m PlugMonitor)
}
