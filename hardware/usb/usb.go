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

// Package usb defines the transaction protocol boundary between a gun and
// the host's USB plumbing: token and status values, the control requests
// the gun understands, and static descriptor handling.
//
// Only as much of the protocol as the gun needs is represented. This is not
// a general USB stack.
package usb

// Token identifies the direction of a data transaction.
type Token int

// List of valid Token values.
const (
	TokenIn Token = iota
	TokenOut
)

// Status is the result of a transaction.
type Status int

// List of valid Status values. A stalled transaction is not an error at
// this layer; retry policy belongs to the host.
const (
	StatusOK Status = iota
	StatusStall
)

// Control request values. A request combines bmRequestType (high byte) and
// bRequest (low byte) in the manner of the wire setup packet.
const (
	// host-to-device, class, interface
	ClassInterfaceOutRequest = 0x2100

	// device-to-host, standard, device
	DeviceInRequest = 0x8000

	// bRequest of the standard GET_DESCRIPTOR request
	GetDescriptor = 0x06

	// SetParam is the class request carrying the gun's 6-byte parameter
	// payload: x offset (s16), y offset (s16), mode flags (u16), all
	// little-endian.
	SetParam = ClassInterfaceOutRequest | 0x09

	// standard requests the descriptor handler accepts and ignores
	SetConfiguration = 0x0009
	SetInterface     = 0x010b
)

// descriptor type values, found in the high byte of the wValue of a
// GET_DESCRIPTOR request.
const (
	DescTypeDevice = 0x01
	DescTypeConfig = 0x02
	DescTypeString = 0x03
)

// the endpoint on which position reports are produced.
const ReportEndpoint = 1

// the size in bytes of a position report.
const ReportSize = 6
