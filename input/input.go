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

// Package input defines how host pointer positions reach the emulated gun.
//
// A gun aims with whatever Source it has been given: a plain Pointer fed by
// the host's mouse handling, a RelativeAxes instance fed by gamepad
// half-axes, or a raw absolute-axis device (see the evdev sub-package).
// Sources yield window-space coordinates; the Display implementation
// translates those into display-normalized coordinates with the negative
// off-screen sentinel.
package input

// Source implementations supply the pointer position in host window
// coordinates. A Source is queried once per data transaction.
type Source interface {
	WindowPosition() (float32, float32)
}

// Device is a Source that buffers samples from a raw host device. Pending
// samples are drained before the position is read, once per data
// transaction. A Device that is not Available degrades silently; the gun
// falls back to its plain pointer source.
type Device interface {
	Source

	// Drain consumes all pending samples. Last write wins for each axis.
	Drain()

	// Available reports whether the underlying device is open.
	Available() bool

	// Close releases the underlying device.
	Close() error
}

// Display provides the host window metrics needed to interpret window-space
// coordinates.
type Display interface {
	// WindowSize returns the size of the host window in window coordinates.
	WindowSize() (float32, float32)

	// WindowToDisplay converts window coordinates to display-normalized
	// coordinates in the range [0,1]. Coordinates outside of the active
	// display area are returned as negative values, the off-screen sentinel.
	WindowToDisplay(wx, wy float32) (float32, float32)
}
