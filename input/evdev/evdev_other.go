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

//go:build !linux

package evdev

import (
	"github.com/lightgun-emu/guncon2go/curated"
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/input"
)

// sentinel error patterns for the evdev package.
const (
	// DeviceUnavailable is returned by Open when the device file cannot be
	// opened or interrogated.
	DeviceUnavailable = "evdev: %v: %v"
)

// EventHandler receives the button transitions read from the device.
type EventHandler func(ports.Event, ports.EventData)

// Device is a raw absolute-axis input device. The raw device path only
// exists on Linux; on other platforms Open always fails and the gun stays
// on its pointer source.
type Device struct{}

// Open always fails on this platform.
func Open(path string, _ input.Display, _ EventHandler) (*Device, error) {
	return nil, curated.Errorf(DeviceUnavailable, path, "not supported on this platform")
}

// Available implements the input.Device interface.
func (dev *Device) Available() bool {
	return false
}

// Close implements the input.Device interface.
func (dev *Device) Close() error {
	return nil
}

// Drain implements the input.Device interface.
func (dev *Device) Drain() {
}

// WindowPosition implements the input.Source interface.
func (dev *Device) WindowPosition() (float32, float32) {
	return -1, -1
}
