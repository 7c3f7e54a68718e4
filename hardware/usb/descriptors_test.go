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

package usb_test

import (
	"testing"

	"github.com/lightgun-emu/guncon2go/hardware/usb"
	"github.com/lightgun-emu/guncon2go/test"
)

func TestDeviceDescriptor(t *testing.T) {
	d := usb.NewDescriptors()

	desc, ok := d.HandleControl(usb.DeviceInRequest|usb.GetDescriptor, usb.DescTypeDevice<<8, 0, make([]byte, 64))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, len(desc), 18)

	// vendor 0x0b9a, product 0x016a, little-endian
	test.Equate(t, desc[8], uint8(0x9a))
	test.Equate(t, desc[9], uint8(0x0b))
	test.Equate(t, desc[10], uint8(0x6a))
	test.Equate(t, desc[11], uint8(0x01))
}

func TestConfigDescriptor(t *testing.T) {
	d := usb.NewDescriptors()

	desc, ok := d.HandleControl(usb.DeviceInRequest|usb.GetDescriptor, usb.DescTypeConfig<<8, 0, make([]byte, 64))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, len(desc), 25)

	// the appended endpoint descriptor names EP1 IN, interrupt
	test.Equate(t, desc[20], uint8(0x81))
	test.Equate(t, desc[21], uint8(0x03))

	// a short transfer length clips the reply
	desc, ok = d.HandleControl(usb.DeviceInRequest|usb.GetDescriptor, usb.DescTypeConfig<<8, 0, make([]byte, 9))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, len(desc), 9)
}

func TestUnhandledRequests(t *testing.T) {
	d := usb.NewDescriptors()

	// class requests are not descriptor plumbing
	_, ok := d.HandleControl(usb.SetParam, 0, 0, make([]byte, 6))
	test.ExpectedFailure(t, ok)

	// unknown string descriptor index
	_, ok = d.HandleControl(usb.DeviceInRequest|usb.GetDescriptor, usb.DescTypeString<<8|5, 0, make([]byte, 64))
	test.ExpectedFailure(t, ok)
}
