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
	"github.com/lightgun-emu/guncon2go/hardware/guncon/titledb"
)

// splitCorrect remaps a display-normalized position into the sub-region of
// the display assigned to one port when a title is in split-view mode.
//
// The vertical remap gets an additional quadratic correction for the
// distortion observed on these titles. The correction term is computed from
// the pre-remap v and only applied while the remapped v is strictly inside
// the display. Pure function.
func splitCorrect(u, v float32, r titledb.SplitRegion) (float32, float32) {
	u2 := u*(r.MaxX-r.MinX) + r.MinX
	v2 := v*(r.MaxY-r.MinY) + r.MinY

	if v2 > 0.0 && v2 < 1.0 {
		v2 += ((-0.04 * (v * v)) + (0.04 * v)) * r.K
	}

	return u2, v2
}
