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

package preferences

import (
	"fmt"

	"github.com/lightgun-emu/guncon2go/curated"
	"github.com/lightgun-emu/guncon2go/prefs"
)

// default screen geometry for guns that have no title profile and no manual
// configuration.
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 240
	DefaultCenterX      = 320.0
	DefaultCenterY      = 120.0
	DefaultScaleX       = 100.0
	DefaultScaleY       = 100.0
)

// GunPreferences is the configuration surface for a single gun port.
type GunPreferences struct {
	dsk *prefs.Disk

	// CustomConfig forces the use of the geometry values below, suppressing
	// automatic per-title configuration.
	CustomConfig prefs.Bool

	// split screen behaviour for two-player titles
	SplitScreenHack        prefs.Bool
	SplitScreenFullStretch prefs.Bool

	// manual screen geometry. scale values are percentages
	ScreenWidth  prefs.Int
	ScreenHeight prefs.Int
	CenterX      prefs.Float
	CenterY      prefs.Float
	ScaleX       prefs.Float
	ScaleY       prefs.Float

	// on-screen cursor. rendering is the responsibility of the host
	CursorPath  prefs.String
	CursorScale prefs.Float
	CursorColor prefs.String

	// path to the raw absolute-axis input device (eg. /dev/input/event5).
	// empty means the normalized pointer path is used
	DevicePath prefs.String
}

func newGunPreferences(pth string, port int) (*GunPreferences, error) {
	p := &GunPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	key := func(s string) string {
		return fmt.Sprintf("guncon2.%d.%s", port, s)
	}

	err = p.dsk.Add(key("custom_config"), &p.CustomConfig)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("split_screen_hack"), &p.SplitScreenHack)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("split_screen_full_stretch"), &p.SplitScreenFullStretch)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("screen_width"), &p.ScreenWidth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("screen_height"), &p.ScreenHeight)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("center_x"), &p.CenterX)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("center_y"), &p.CenterY)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("scale_x"), &p.ScaleX)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("scale_y"), &p.ScaleY)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("cursor_path"), &p.CursorPath)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("cursor_scale"), &p.CursorScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("cursor_color"), &p.CursorColor)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(key("device_path"), &p.DevicePath)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preference values for the gun to their defaults.
func (p *GunPreferences) SetDefaults() {
	p.CustomConfig.Set(false)
	p.SplitScreenHack.Set(false)
	p.SplitScreenFullStretch.Set(false)
	p.ScreenWidth.Set(DefaultScreenWidth)
	p.ScreenHeight.Set(DefaultScreenHeight)
	p.CenterX.Set(DefaultCenterX)
	p.CenterY.Set(DefaultCenterY)
	p.ScaleX.Set(DefaultScaleX)
	p.ScaleY.Set(DefaultScaleY)
	p.CursorPath.Set("")
	p.CursorScale.Set(1.0)
	p.CursorColor.Set("#ffffff")
	p.DevicePath.Set("")
}

// Load gun preference values from disk.
func (p *GunPreferences) Load() error {
	return p.dsk.Load()
}

// Save current gun preference values to disk.
func (p *GunPreferences) Save() error {
	return p.dsk.Save()
}
