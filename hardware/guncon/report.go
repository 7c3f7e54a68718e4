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

package guncon

import (
	"encoding/binary"

	"github.com/lightgun-emu/guncon2go/hardware/usb"
)

// encodeReport packs the wire report: a 16-bit button mask followed by the
// signed 16-bit position, little-endian throughout. The buttons argument is
// already in wire form (active low, progressive flag OR'd in).
func encodeReport(buttons uint16, x, y int16) [usb.ReportSize]byte {
	var rep [usb.ReportSize]byte
	binary.LittleEndian.PutUint16(rep[0:], buttons)
	binary.LittleEndian.PutUint16(rep[2:], uint16(x))
	binary.LittleEndian.PutUint16(rep[4:], uint16(y))
	return rep
}

// wireButtons converts the internal active-high mask to the wire encoding.
// The mask is truncated to 16 bits, complemented, and the progressive mode
// flag OR'd in. The flag is not a button; it travels in the button field
// because that is the wire contract.
func wireButtons(buttons uint32, mode uint16) uint16 {
	return uint16(^buttons) | (mode & flagProgressive)
}
