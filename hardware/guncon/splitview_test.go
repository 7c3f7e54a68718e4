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
	"testing"

	"github.com/lightgun-emu/guncon2go/hardware/guncon/titledb"
	"github.com/lightgun-emu/guncon2go/test"
)

func TestSplitCorrect(t *testing.T) {
	// Time Crisis 2 (U), port 0
	db := titledb.Standard()
	r, ok := db.LookupSplit("SLUS-20219", 0)
	test.ExpectedSuccess(t, ok)

	u, v := splitCorrect(0.5, 0.5, r)

	// u' = 0.5*(0.9035-0.035) + 0.035
	test.EquateNearly(t, u, 0.46925, 1e-5)

	// v' = 0.5*(0.69-0.25) + 0.25, plus the quadratic term
	// ((-0.04*0.25) + (0.04*0.5)) * 2.7 = 0.027
	test.EquateNearly(t, v, 0.497, 1e-5)
}

func TestSplitCorrectQuadraticGate(t *testing.T) {
	// the quadratic term only applies while the remapped v is strictly
	// inside the display
	r := titledb.SplitRegion{MinX: 0.0, MaxX: 1.0, MinY: 1.0, MaxY: 2.0, K: 2.7}

	_, v := splitCorrect(0.5, 0.5, r)
	test.EquateNearly(t, v, 1.5, 1e-5)

	r = titledb.SplitRegion{MinX: 0.0, MaxX: 1.0, MinY: -1.0, MaxY: 0.0, K: 2.7}
	_, v = splitCorrect(0.5, 0.5, r)
	test.EquateNearly(t, v, -0.5, 1e-5)
}

func TestSplitCorrectUsesPreRemapV(t *testing.T) {
	// the correction is born from the un-remapped vertical coordinate.
	// with v = 1 the quadratic term vanishes even though the remapped
	// coordinate is well inside the display
	r := titledb.SplitRegion{MinX: 0.0, MaxX: 1.0, MinY: 0.25, MaxY: 0.69, K: 2.7}

	_, v := splitCorrect(0.5, 1.0, r)
	test.EquateNearly(t, v, 0.69, 1e-5)
}
