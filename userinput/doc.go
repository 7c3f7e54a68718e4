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

// Package userinput handles input from the real hardware that the user of
// the emulator is using to aim and fire the emulated gun.
//
// It can be thought of as a translation layer between the GUI
// implementation and the hardware ports package. As such, this package
// attempts to hide details of the GUI implementation while protecting the
// ports package from complication.
//
// The GUI implementation in use during development was SDL and so there
// will be a bias towards that system.
package userinput
