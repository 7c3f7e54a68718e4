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

import (
	"sync"
)

// Axis identifies one of the four relative aiming half-axes.
type Axis int

// List of valid Axis values.
const (
	AxisLeft Axis = iota
	AxisRight
	AxisUp
	AxisDown
	NumAxes
)

// RelativeAxes derives a pseudo-absolute pointer position from four
// half-axis magnitudes, each in the range [0,1]. Useful for aiming with a
// gamepad analogue stick.
type RelativeAxes struct {
	display Display

	crit sync.Mutex
	pos  [NumAxes]float32
}

// NewRelativeAxes is the preferred method of initialisation for the
// RelativeAxes type.
func NewRelativeAxes(display Display) *RelativeAxes {
	return &RelativeAxes{display: display}
}

// Set the magnitude of one half-axis. Values outside [0,1] are clamped.
func (rel *RelativeAxes) Set(axis Axis, value float32) {
	if axis < 0 || axis >= NumAxes {
		return
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	rel.crit.Lock()
	defer rel.crit.Unlock()
	rel.pos[axis] = value
}

// WindowPosition implements the Source interface.
//
// The position is derived per dimension from the positive-going axis if it
// has any magnitude, otherwise the negated negative-going axis, mapped from
// [-1,1] to [0,1] and scaled to the window.
func (rel *RelativeAxes) WindowPosition() (float32, float32) {
	rel.crit.Lock()
	defer rel.crit.Unlock()

	var x, y float32
	if rel.pos[AxisRight] > 0.0 {
		x = rel.pos[AxisRight]
	} else {
		x = -rel.pos[AxisLeft]
	}
	if rel.pos[AxisDown] > 0.0 {
		y = rel.pos[AxisDown]
	} else {
		y = -rel.pos[AxisUp]
	}

	x = (x + 1.0) * 0.5
	y = (y + 1.0) * 0.5

	w, h := rel.display.WindowSize()
	return x * w, y * h
}
