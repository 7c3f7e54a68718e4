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

package input

// FixedDisplay is the simplest Display implementation: the active display
// area fills the entire window.
type FixedDisplay struct {
	Width  float32
	Height float32
}

// WindowSize implements the Display interface.
func (d FixedDisplay) WindowSize() (float32, float32) {
	return d.Width, d.Height
}

// WindowToDisplay implements the Display interface.
func (d FixedDisplay) WindowToDisplay(wx, wy float32) (float32, float32) {
	if wx < 0 || wy < 0 || wx > d.Width || wy > d.Height || d.Width <= 0 || d.Height <= 0 {
		return -1, -1
	}
	return wx / d.Width, wy / d.Height
}
