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

// Package curated is the error mechanism used throughout the project. A
// curated error keeps hold of the pattern string it was created with, which
// allows callers to test for a class of error without string comparison of
// the formatted message.
//
// Creation is through the Errorf() function, which looks and feels like
// fmt.Errorf():
//
//	err := curated.Errorf("guncon2: restore: %v", err)
//
// The pattern can then be tested for with the Is() and Has() functions.
// Error messages are normalised on formatting, meaning that duplicate
// adjacent message parts are removed from the error chain.
package curated
