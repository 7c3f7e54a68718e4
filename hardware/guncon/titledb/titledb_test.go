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

package titledb_test

import (
	"strings"
	"testing"

	"github.com/lightgun-emu/guncon2go/hardware/guncon/titledb"
	"github.com/lightgun-emu/guncon2go/test"
)

func TestLookup(t *testing.T) {
	db := titledb.Standard()

	p, ok := db.Lookup("SLUS-20219")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, p.ScaleX, float32(90.25))
	test.Equate(t, p.ScaleY, float32(97.5))
	test.Equate(t, p.CenterX, 390)
	test.Equate(t, p.CenterY, 154)
	test.Equate(t, p.ScreenWidth, 640)
	test.Equate(t, p.ScreenHeight, 240)

	_, ok = db.Lookup("SLUS-00000")
	test.ExpectedFailure(t, ok)
}

func TestLookupSplit(t *testing.T) {
	db := titledb.Standard()

	r, ok := db.LookupSplit("SLUS-20219", 0)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.MinX, float32(0.035))
	test.Equate(t, r.MaxX, float32(0.9035))
	test.Equate(t, r.K, float32(2.7))

	// port 1 constants are asymmetric with port 0
	r, ok = db.LookupSplit("SLUS-20219", 1)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.MinX, float32(0.093))

	// titles without split-view data
	_, ok = db.LookupSplit("SLES-51289", 0)
	test.ExpectedFailure(t, ok)

	// out of range port
	_, ok = db.LookupSplit("SLUS-20219", 2)
	test.ExpectedFailure(t, ok)
}

func TestLookupSplitSignature(t *testing.T) {
	db := titledb.Standard()

	addr, ok := db.LookupSplitSignature("SLUS-20645")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, addr, 0x43A16C)

	_, ok = db.LookupSplitSignature("SLES-51289")
	test.ExpectedFailure(t, ok)
}

const overrides = `
- serial: SLUS-20219
  scale_x: 91.0
  scale_y: 98.0
  center_x: 391
  center_y: 155
  screen_width: 640
  screen_height: 240
- serial: HOME-00001
  scale_x: 100.0
  scale_y: 100.0
  center_x: 320
  center_y: 120
  screen_width: 640
  screen_height: 240
`

func TestLoadOverrides(t *testing.T) {
	db := titledb.Standard()
	test.ExpectedSuccess(t, db.LoadOverrides(strings.NewReader(overrides)))

	// override shadows the compiled-in profile
	p, ok := db.Lookup("SLUS-20219")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, p.ScaleX, float32(91.0))
	test.Equate(t, p.CenterX, 391)

	// new serials become available
	p, ok = db.Lookup("HOME-00001")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, p.ScreenWidth, 640)

	// an empty overrides file is fine
	db = titledb.Standard()
	test.ExpectedSuccess(t, db.LoadOverrides(strings.NewReader("")))

	// a missing serial is not
	test.ExpectedFailure(t, db.LoadOverrides(strings.NewReader("- scale_x: 100.0\n")))
}

func TestReloadOverrides(t *testing.T) {
	db := titledb.Standard()
	test.ExpectedSuccess(t, db.LoadOverrides(strings.NewReader(overrides)))

	// loading an updated overrides file replaces the earlier values for the
	// same serial
	updated := `
- serial: SLUS-20219
  scale_x: 92.5
  scale_y: 98.0
  center_x: 395
  center_y: 155
  screen_width: 640
  screen_height: 240
`
	test.ExpectedSuccess(t, db.LoadOverrides(strings.NewReader(updated)))

	p, ok := db.Lookup("SLUS-20219")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, p.ScaleX, float32(92.5))
	test.Equate(t, p.CenterX, 395)

	// serials from the first load that the second did not mention survive
	p, ok = db.Lookup("HOME-00001")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, p.ScreenWidth, 640)
}
