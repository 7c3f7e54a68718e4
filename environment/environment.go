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

// Package environment provides context for an emulated peripheral.
// Particularly useful when more than one gun instance exists in the
// application (two-player titles) or when a temporary instance is created
// for preview or testing purposes.
package environment

import (
	"github.com/lightgun-emu/guncon2go/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation environment. Only
// environments with this label are allowed to make log entries.
const MainEmulation = Label("")

// Environment is used to provide context for an emulated gun.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created. Providing a non-nil value allows the preferences of more than one
// gun emulation to be synchronised.
func NewEnvironment(prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainEmulation)
}
