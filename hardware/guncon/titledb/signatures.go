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

// addresses of the byte in emulated memory that reads 1 while the title is
// presenting two simultaneous viewports.
var splitSignatures = map[string]uint32{
	"SCES-50300": 0x65CD24, // Time Crisis II (E)
	"SLUS-20219": 0x63EE64, // Time Crisis 2 (U)
	"SCES-51844": 0x474EEC, // Time Crisis 3 (E)
	"SLUS-20645": 0x43A16C, // Time Crisis 3 (U)
}

// LookupSplitSignature returns the address of the split-view flag byte for a
// title. The second return value is false if the title has no known
// signature, meaning split-view detection is not possible for it.
func (db *DB) LookupSplitSignature(serial string) (uint32, bool) {
	addr, ok := splitSignatures[serial]
	return addr, ok
}
