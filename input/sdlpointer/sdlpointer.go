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

// Package sdlpointer supplies an input.Source and input.Display backed by
// the SDL mouse state and window. This is the pointer path used by the demo
// binary; embedding emulators will usually have their own windowing and
// provide their own Source.
package sdlpointer

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Pointer reads the mouse position from SDL on demand. It implements both
// the input.Source and input.Display interfaces.
//
// SDL requires that event and state functions are called from the main
// thread. The transaction loop of the demo binary satisfies this; see
// sdl.Main for embedding in other programs.
type Pointer struct {
	window *sdl.Window
}

// NewPointer is the preferred method of initialisation for the Pointer
// type.
func NewPointer(window *sdl.Window) *Pointer {
	return &Pointer{window: window}
}

// WindowPosition implements the input.Source interface.
func (p *Pointer) WindowPosition() (float32, float32) {
	x, y, _ := sdl.GetMouseState()

	// SDL reports the last known position even when the mouse has left the
	// window. treat a position on the very edge as off-screen
	w, h := p.window.GetSize()
	if x <= 0 || y <= 0 || x >= w-1 || y >= h-1 {
		return -1, -1
	}

	return float32(x), float32(y)
}

// WindowSize implements the input.Display interface.
func (p *Pointer) WindowSize() (float32, float32) {
	w, h := p.window.GetSize()
	return float32(w), float32(h)
}

// WindowToDisplay implements the input.Display interface.
func (p *Pointer) WindowToDisplay(wx, wy float32) (float32, float32) {
	w, h := p.WindowSize()
	if wx < 0 || wy < 0 || wx > w || wy > h || w <= 0 || h <= 0 {
		return -1, -1
	}
	return wx / w, wy / h
}
