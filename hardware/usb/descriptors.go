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

package usb

// DescriptorHandler deals with the control requests that are generic
// descriptor plumbing rather than gun behaviour. HandleControl returns the
// reply payload (nil for requests with no data stage) and whether the
// request was recognised. Unrecognised requests fall through to the gun.
type DescriptorHandler interface {
	HandleControl(request int, value int, index int, data []byte) ([]byte, bool)
}

// device descriptor for the Namco GunCon 2 (vendor 0x0b9a, product 0x016a).
var deviceDescriptor = []byte{
	0x12,       // bLength
	0x01,       // bDescriptorType (Device)
	0x00, 0x01, // bcdUSB
	0x00,       // bDeviceClass
	0x00,       // bDeviceSubClass
	0x00,       // bDeviceProtocol
	0x08,       // bMaxPacketSize0
	0x9a, 0x0b, // idVendor
	0x6a, 0x01, // idProduct
	0x00, 0x01, // bcdDevice
	0x00, // iManufacturer
	0x00, // iProduct
	0x00, // iSerialNumber
	0x01, // bNumConfigurations
}

// configuration descriptor, with the interface and single interrupt-IN
// endpoint descriptor appended as the wire format requires.
var configDescriptor = []byte{
	0x09,       // bLength
	0x02,       // bDescriptorType (Configuration)
	0x19, 0x00, // wTotalLength
	0x01, // bNumInterfaces
	0x01, // bConfigurationValue
	0x00, // iConfiguration
	0x80, // bmAttributes (bus powered)
	0x19, // bMaxPower

	// interface
	0x09, // bLength
	0x04, // bDescriptorType (Interface)
	0x00, // bInterfaceNumber
	0x00, // bAlternateSetting
	0x01, // bNumEndpoints
	0xff, // bInterfaceClass
	0x6a, // bInterfaceSubClass
	0x00, // bInterfaceProtocol
	0x00, // iInterface

	// endpoint
	0x07,       // bLength
	0x05,       // bDescriptorType (Endpoint)
	0x81,       // bEndpointAddress (EP1 IN)
	0x03,       // bmAttributes (interrupt)
	0x08, 0x00, // wMaxPacketSize
	0x08, // bInterval
}

// string descriptor zero: supported language ids (US English only).
var stringDescriptor0 = []byte{
	0x04, 0x03, 0x09, 0x04,
}

// the device name encoded as a UTF-16LE string descriptor.
var stringDescriptor1 = encodeStringDescriptor("Namco GunCon2")

func encodeStringDescriptor(s string) []byte {
	d := make([]byte, 2, 2+len(s)*2)
	d[1] = DescTypeString
	for _, r := range s {
		d = append(d, byte(r), byte(r>>8))
	}
	d[0] = byte(len(d))
	return d
}

// Descriptors is the default DescriptorHandler for the gun.
type Descriptors struct{}

// NewDescriptors is the preferred method of initialisation for the
// Descriptors type.
func NewDescriptors() *Descriptors {
	return &Descriptors{}
}

// HandleControl implements the DescriptorHandler interface.
func (d *Descriptors) HandleControl(request int, value int, index int, data []byte) ([]byte, bool) {
	switch request {
	case DeviceInRequest | GetDescriptor:
		switch value >> 8 {
		case DescTypeDevice:
			return clip(deviceDescriptor, len(data)), true
		case DescTypeConfig:
			return clip(configDescriptor, len(data)), true
		case DescTypeString:
			switch value & 0xff {
			case 0:
				return clip(stringDescriptor0, len(data)), true
			case 1:
				return clip(stringDescriptor1, len(data)), true
			}
		}
		return nil, false

	case SetConfiguration, SetInterface:
		return nil, true
	}

	return nil, false
}

// clip a descriptor to the requested transfer length.
func clip(desc []byte, length int) []byte {
	if length > 0 && length < len(desc) {
		return desc[:length]
	}
	return desc
}
