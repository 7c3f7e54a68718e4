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
	"github.com/lightgun-emu/guncon2go/logger"
)

// autoConfigure applies the running title's calibration profile to the
// gun's geometry. It runs at most once per session and never when the user
// has supplied a custom configuration. A title with no profile is not an
// error; the compiled-in defaults remain in place.
func (gun *GunCon2) autoConfigure() {
	if gun.geometry.autoConfigDone || gun.geometry.custom {
		return
	}
	gun.geometry.autoConfigDone = true

	title := gun.observed().Title

	p, ok := gun.titles.Lookup(title)
	if !ok {
		logger.Logf(gun.env, "guncon2", "no automatic config found for %q", title)
		return
	}

	gun.geometry.scaleX = p.ScaleX / 100.0
	gun.geometry.scaleY = p.ScaleY / 100.0
	gun.geometry.centerX = p.CenterX
	gun.geometry.centerY = p.CenterY
	gun.geometry.screenWidth = p.ScreenWidth
	gun.geometry.screenHeight = p.ScreenHeight

	logger.Logf(gun.env, "guncon2", "automatic config for %s: scale %.2fx%.2f center (%d,%d) screen %dx%d",
		title, p.ScaleX, p.ScaleY, p.CenterX, p.CenterY, p.ScreenWidth, p.ScreenHeight)
}
