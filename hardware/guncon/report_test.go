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
	"testing"

	"github.com/lightgun-emu/guncon2go/test"
)

func TestWireButtons(t *testing.T) {
	// no buttons pressed: all wire bits high (active low)
	test.Equate(t, wireButtons(0, 0), uint16(0xffff))

	// trigger pressed clears bit 13 on the wire
	test.Equate(t, wireButtons(maskTrigger, 0), uint16(0xdfff))

	// the pseudo-buttons above bit 15 never reach the wire
	test.Equate(t, wireButtons(maskShootOffscreen|maskRecalibrate, 0), uint16(0xffff))

	// the progressive flag is OR'd in even when every wire bit is low
	test.Equate(t, wireButtons(0xffffffff, flagProgressive), uint16(0x0100))

	// only the progressive bit of the mode makes it into the report
	test.Equate(t, wireButtons(0xffffffff, 0xffff), uint16(0x0100))
}

func TestEncodeReport(t *testing.T) {
	rep := encodeReport(0xdfff, 390, 154)

	test.Equate(t, rep[0], uint8(0xff))
	test.Equate(t, rep[1], uint8(0xdf))
	test.Equate(t, rep[2], uint8(390&0xff))
	test.Equate(t, rep[3], uint8(390>>8))
	test.Equate(t, rep[4], uint8(154))
	test.Equate(t, rep[5], uint8(0))

	// negative positions are two's complement on the wire
	rep = encodeReport(0xffff, -1, -2)
	test.Equate(t, rep[2], uint8(0xff))
	test.Equate(t, rep[3], uint8(0xff))
	test.Equate(t, rep[4], uint8(0xfe))
	test.Equate(t, rep[5], uint8(0xff))
}
