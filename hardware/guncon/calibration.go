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

// Light-gun titles calibrate by displaying a black frame for a single
// frame, waiting for the gun to report (0,0), and then computing an offset
// from the first non-zero position. After the recalibrate button is
// pressed, the gun latches the fire position, keeps reporting it for a few
// transactions, then flashes the (0,0) report before resuming normal
// values. Latching the position reduces error if the pointer is moving
// during those frames.
const (
	// total length of a calibration hold, in data transactions
	calibrationDelay = 12

	// the number of final hold transactions that report (0,0)
	calibrationReportDelay = 5
)

// latchCalibration starts a hold when the recalibrate button transitions to
// pressed while no hold is active. The timer's monotonic countdown absorbs
// any further transitions; a hold can never re-enter.
func (gun *GunCon2) latchCalibration(x, y int16) {
	recalibrate := gun.buttons&maskRecalibrate != 0
	if recalibrate && !gun.lastRecalibrate && gun.calibrationTimer == 0 {
		gun.calibrationTimer = calibrationDelay
		gun.calibrationX = x
		gun.calibrationY = y
	}
	gun.lastRecalibrate = recalibrate
}

// applyOverrides adjusts an outgoing report for an active calibration hold
// or, failing that, an intentional off-screen shot. In both cases the
// trigger is forced down on the wire. The hold is checked first; an
// off-screen shot during a hold is absorbed by the hold.
func (gun *GunCon2) applyOverrides(buttons uint16, x, y int16) (uint16, int16, int16) {
	if gun.calibrationTimer > 0 {
		buttons &^= uint16(1) << bitTrigger
		x = gun.calibrationX
		y = gun.calibrationY
		gun.calibrationTimer--

		if gun.calibrationTimer < calibrationReportDelay {
			x = 0
			y = 0
		}
	} else if gun.buttons&maskShootOffscreen != 0 {
		buttons &^= uint16(1) << bitTrigger
		x = 0
		y = 0
	}

	return buttons, x, y
}
