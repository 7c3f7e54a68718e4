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

// Pointer is the simplest Source: an absolute window-space position set by
// the host's own pointer handling (usually the mouse).
type Pointer struct {
	crit      sync.Mutex
	x, y      float32
	offscreen bool
}

// NewPointer is the preferred method of initialisation for the Pointer type.
// The pointer starts off-screen.
func NewPointer() *Pointer {
	return &Pointer{offscreen: true}
}

// SetWindowPosition updates the pointer position in window coordinates. The
// pointer is considered on-screen after this call.
func (pt *Pointer) SetWindowPosition(x, y float32) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.x = x
	pt.y = y
	pt.offscreen = false
}

// SetOffScreen marks the pointer as being outside of the host window
// entirely.
func (pt *Pointer) SetOffScreen() {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.offscreen = true
}

// WindowPosition implements the Source interface.
func (pt *Pointer) WindowPosition() (float32, float32) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	if pt.offscreen {
		return -1, -1
	}
	return pt.x, pt.y
}
