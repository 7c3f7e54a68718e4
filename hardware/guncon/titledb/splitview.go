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

package titledb

// SplitRegion describes the sub-region of the normalized coordinate space
// assigned to one port when a title is in split-view mode, plus the weight
// of the quadratic correction applied to the vertical coordinate.
//
// The constants are asymmetric between ports and inconsistent between
// otherwise similar titles. That is what was measured; leave them alone.
type SplitRegion struct {
	MinX, MaxX float32
	MinY, MaxY float32

	// weight of the quadratic vertical correction term
	K float32
}

// split-view regions per title, indexed by port.
var splitRegions = map[string][2]SplitRegion{
	// Time Crisis 2 (U)
	"SLUS-20219": {
		{MinX: 0.035, MaxX: 0.9035, MinY: 0.25, MaxY: 0.69, K: 2.7},
		{MinX: 0.093, MaxX: 0.970, MinY: 0.247, MaxY: 0.690, K: 2.7},
	},
	// Time Crisis II (E)
	"SCES-50300": {
		{MinX: 0.02798462, MaxX: 0.90, MinY: 0.25, MaxY: 0.6950202, K: 2.7},
		{MinX: 0.093, MaxX: 0.970, MinY: 0.247, MaxY: 0.690, K: 2.7},
	},
	// Time Crisis 3 (E)
	"SCES-51844": {
		{MinX: 0.035, MaxX: 0.9035, MinY: 0.247, MaxY: 0.690, K: 3.0},
		{MinX: 0.095, MaxX: 0.97, MinY: 0.247, MaxY: 0.690, K: 3.0},
	},
	// Time Crisis 3 (U)
	"SLUS-20645": {
		{MinX: 0.035, MaxX: 0.9035, MinY: 0.247, MaxY: 0.690, K: 3.1},
		{MinX: 0.095, MaxX: 0.97, MinY: 0.247, MaxY: 0.690, K: 3.1},
	},
}

// LookupSplit returns the split-view region for a title and port. The second
// return value is false if the title/port has no split-view data, in which
// case coordinates should pass through unchanged.
func (db *DB) LookupSplit(serial string, port int) (SplitRegion, bool) {
	if port < 0 || port > 1 {
		return SplitRegion{}, false
	}
	if r, ok := splitRegions[serial]; ok {
		return r[port], true
	}
	return SplitRegion{}, false
}
