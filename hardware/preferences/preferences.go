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

// Package preferences gathers the user-facing configuration surface of the
// emulated guns. Values are read by a gun once, when configuration is
// applied, never per transaction.
package preferences

import (
	"github.com/lightgun-emu/guncon2go/prefs"
	"github.com/lightgun-emu/guncon2go/resources"
)

// the number of gun ports that preferences are maintained for.
const NumPorts = 2

// Preferences is the container for all preferences used by the emulation.
type Preferences struct {
	Guns [NumPorts]*GunPreferences
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	for i := range p.Guns {
		p.Guns[i], err = newGunPreferences(pth, i)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	for i := range p.Guns {
		p.Guns[i].SetDefaults()
	}
}

// Load all preference values from disk.
func (p *Preferences) Load() error {
	for i := range p.Guns {
		if err := p.Guns[i].Load(); err != nil {
			return err
		}
	}
	return nil
}

// Save all preference values to disk.
func (p *Preferences) Save() error {
	for i := range p.Guns {
		if err := p.Guns[i].Save(); err != nil {
			return err
		}
	}
	return nil
}
