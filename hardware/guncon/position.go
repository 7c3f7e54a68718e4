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
	"math"

	"github.com/lightgun-emu/guncon2go/hardware/preferences"
)

// geometry is the working copy of a title's calibration profile. scale
// values are fractions rather than the percentages of the profile table.
type geometry struct {
	scaleX       float32
	scaleY       float32
	centerX      uint32
	centerY      uint32
	screenWidth  uint32
	screenHeight uint32

	// custom geometry is user supplied and suppresses auto-configuration
	custom bool

	// whether auto-configuration has run this session. set at most once
	// unless the gun is explicitly reconfigured
	autoConfigDone bool
}

func defaultGeometry() geometry {
	return geometry{
		scaleX:       preferences.DefaultScaleX / 100.0,
		scaleY:       preferences.DefaultScaleY / 100.0,
		centerX:      preferences.DefaultCenterX,
		centerY:      preferences.DefaultCenterY,
		screenWidth:  preferences.DefaultScreenWidth,
		screenHeight: preferences.DefaultScreenHeight,
	}
}

// resolve converts a display-normalized position into the gun's device
// coordinate space. Negative coordinates are the off-screen sentinel and
// resolve to (0,0). Pure function; determinism matters because resolved
// positions cross the save-state boundary.
func resolve(u, v float32, geo geometry, offsetX, offsetY int16, progressive bool) (int16, int16) {
	if u < 0.0 || v < 0.0 {
		return 0, 0
	}

	// scale to device coordinate system. the half-size term divides before
	// converting to float, as the hardware tables were tuned against
	fx := u*float32(geo.screenWidth) - float32(geo.screenWidth/2)
	fy := v*float32(geo.screenHeight) - float32(geo.screenHeight/2)

	// curvature scale
	fx *= geo.scaleX
	fy *= geo.scaleY

	// recenter on the title's center point
	x := int(math.Round(float64(fx) + float64(geo.centerX)))
	y := int(math.Round(float64(fy) + float64(geo.centerY)))

	// game-configured aim offset, halved in progressive mode
	ox := int(offsetX)
	oy := int(offsetY)
	if progressive {
		ox /= 2
		oy /= 2
	}
	x -= ox
	y -= oy

	// (0,0) is reserved for off-screen so never resolve to it
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}

	return int16(x), int16(y)
}

// position resolves the gun's current aim. The raw device path is drained
// first and, when available, supplies the window position; otherwise the
// relative axes (once any relative event has been seen) or the plain
// pointer source do.
func (gun *GunCon2) position() (int16, int16) {
	if gun.device != nil {
		gun.device.Drain()
	}

	var wx, wy float32
	switch {
	case gun.device != nil && gun.device.Available():
		wx, wy = gun.device.WindowPosition()
	case gun.hasRelative:
		wx, wy = gun.relative.WindowPosition()
	case gun.source != nil:
		wx, wy = gun.source.WindowPosition()
	default:
		return 0, 0
	}

	u, v := gun.display.WindowToDisplay(wx, wy)

	if u >= 0.0 && v >= 0.0 {
		if st := gun.observed(); st.SplitActive {
			if r, ok := gun.titles.LookupSplit(st.Title, gun.port.Index()); ok {
				u, v = splitCorrect(u, v, r)
			}
		}
	}

	return resolve(u, v, gun.geometry,
		gun.paramX, gun.paramY, gun.paramMode&flagProgressive != 0)
}
