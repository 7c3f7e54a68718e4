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
	"github.com/lightgun-emu/guncon2go/logger"
)

// HandleControl processes one control transfer. Descriptor plumbing is
// delegated to the gun's DescriptorHandler; the SetParam class request
// updates the gun's aim offsets and mode; anything else stalls.
//
// Automatic configuration is applied on the first control transfer of the
// session. The running title is well and truly known by then.
func (gun *GunCon2) HandleControl(request int, value int, index int, data []byte) ([]byte, usb.Status) {
	gun.autoConfigure()

	if reply, ok := gun.desc.HandleControl(request, value, index, data); ok {
		return reply, usb.StatusOK
	}

	if request == usb.SetParam && len(data) >= usb.ReportSize {
		gun.paramX = int16(binary.LittleEndian.Uint16(data[0:]))
		gun.paramY = int16(binary.LittleEndian.Uint16(data[2:]))
		gun.paramMode = binary.LittleEndian.Uint16(data[4:])
		logger.Logf(gun.env, "guncon2", "set param %04x %d %d", gun.paramMode, gun.paramX, gun.paramY)
		return nil, usb.StatusOK
	}

	logger.Logf(gun.env, "guncon2", "unhandled control request %04x (val %04x idx %04x)", request, value, index)
	return nil, usb.StatusStall
}

// HandleData processes one data transaction. An IN token on the report
// endpoint yields exactly one report; any other token or endpoint stalls.
// Must be driven from the goroutine that owns the gun.
func (gun *GunCon2) HandleData(token usb.Token, endpoint int) ([usb.ReportSize]byte, usb.Status) {
	if token != usb.TokenIn || endpoint != usb.ReportEndpoint {
		logger.Logf(gun.env, "guncon2", "unhandled data transaction (token %d ep %d)", token, endpoint)
		return [usb.ReportSize]byte{}, usb.StatusStall
	}

	// normally configuration has been applied by the first control
	// transfer. a host that skips enumeration still gets configured here
	gun.autoConfigure()

	x, y := gun.position()
	gun.latchCalibration(x, y)

	buttons := wireButtons(gun.buttons, gun.paramMode)
	buttons, x, y = gun.applyOverrides(buttons, x, y)

	return encodeReport(buttons, x, y), usb.StatusOK
}
