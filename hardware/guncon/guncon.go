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

// Package guncon emulates the Namco GunCon 2 light gun. The gun converts
// host pointer positions into the 6-byte report a real gun sends over the
// wire, reproducing the timing quirks of the hardware's recalibration
// handshake and the per-title screen geometry the hardware was tuned
// against.
//
// A gun is plugged into a port in the manner of the ports package. Input
// reaches it two ways: button and relative-axis events through
// HandleEvent(); pointer positions through whichever input.Source it has
// been given. The transaction functions in this package (HandleControl and
// HandleData) are the wire protocol boundary and must be driven from a
// single goroutine.
package guncon

import (
	"fmt"
	"os"

	"github.com/lightgun-emu/guncon2go/curated"
	"github.com/lightgun-emu/guncon2go/environment"
	"github.com/lightgun-emu/guncon2go/hardware/guncon/titledb"
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
	"github.com/lightgun-emu/guncon2go/hardware/usb"
	"github.com/lightgun-emu/guncon2go/input"
	"github.com/lightgun-emu/guncon2go/logger"
	"github.com/lightgun-emu/guncon2go/observer"
	"github.com/lightgun-emu/guncon2go/resources"
)

// sentinel error patterns for the guncon package.
const (
	// UnhandledEventData is returned by HandleEvent when the data does not
	// match the event.
	UnhandledEventData = "guncon2: %v: unexpected event data"
)

// the filename of the optional per-title calibration overrides, relative to
// the resources path.
const titleOverridesFile = "titledb.yaml"

// TitleObserver is the gun's view of the background observers. Snapshot
// reads only, at most once per data transaction.
type TitleObserver interface {
	State() observer.State
	Stop()
}

// GunCon2 is the light-gun peripheral. It implements the ports.Peripheral
// interface.
type GunCon2 struct {
	env  *environment.Environment
	port plugging.PortID

	titles *titledb.DB
	desc   usb.DescriptorHandler
	obs    TitleObserver

	// the normalized pointer path and the optional raw device path. when
	// the raw device is attached and available it takes precedence
	source input.Source
	device input.Device

	display input.Display

	// relative axes become the position source once the first relative
	// event has been received
	relative    *input.RelativeAxes
	hasRelative bool

	geometry geometry

	// active-high button state. complemented at encoding time
	buttons uint32

	// calibration runtime. paramX/Y/Mode are set by the SetParam control
	// request
	paramX    int16
	paramY    int16
	paramMode uint16

	calibrationTimer uint16
	calibrationX     int16
	calibrationY     int16

	// for edge detection of the recalibrate button
	lastRecalibrate bool
}

// NewGunCon2 is the preferred method of initialisation for the GunCon2
// type. Satisfies the ports.NewPeripheral function signature.
func NewGunCon2(env *environment.Environment, port plugging.PortID) ports.Peripheral {
	gun := &GunCon2{
		env:    env,
		port:   port,
		titles: titledb.Standard(),
		desc:   usb.NewDescriptors(),
	}
	gun.AttachDisplay(input.FixedDisplay{
		Width:  float32(preferencesScreenWidth(env, port)),
		Height: float32(preferencesScreenHeight(env, port)),
	})
	gun.Restart()
	return gun
}

func preferencesScreenWidth(env *environment.Environment, port plugging.PortID) int {
	if idx := port.Index(); idx >= 0 {
		return env.Prefs.Guns[idx].ScreenWidth.Get().(int)
	}
	return 0
}

func preferencesScreenHeight(env *environment.Environment, port plugging.PortID) int {
	if idx := port.Index(); idx >= 0 {
		return env.Prefs.Guns[idx].ScreenHeight.Get().(int)
	}
	return 0
}

// String implements the ports.Peripheral interface.
func (gun *GunCon2) String() string {
	return fmt.Sprintf("guncon2: %s: buttons=%04x timer=%d", gun.port, uint16(gun.buttons), gun.calibrationTimer)
}

// PortID implements the ports.Peripheral interface.
func (gun *GunCon2) PortID() plugging.PortID {
	return gun.port
}

// ID implements the ports.Peripheral interface.
func (gun *GunCon2) ID() plugging.PeripheralID {
	return plugging.PeriphGunCon2
}

// Snapshot implements the ports.Peripheral interface.
func (gun *GunCon2) Snapshot() ports.Peripheral {
	n := *gun
	return &n
}

// Unplug implements the ports.Peripheral interface. The background
// observers are stopped and joined and any raw device is released.
func (gun *GunCon2) Unplug() {
	if gun.obs != nil {
		gun.obs.Stop()
		gun.obs = nil
	}
	if gun.device != nil {
		_ = gun.device.Close()
		gun.device = nil
	}
}

// Reset implements the ports.Peripheral interface. Button and calibration
// runtime state is cleared; screen geometry is kept.
func (gun *GunCon2) Reset() {
	gun.buttons = 0
	gun.paramX = 0
	gun.paramY = 0
	gun.paramMode = 0
	gun.calibrationTimer = 0
	gun.calibrationX = 0
	gun.calibrationY = 0
	gun.lastRecalibrate = false
}

// Restart implements the ports.RestartPeripheral interface. Preferences are
// re-read and the gun's configuration reapplied; a custom configuration
// suppresses automatic per-title geometry.
func (gun *GunCon2) Restart() {
	gun.geometry = defaultGeometry()

	idx := gun.port.Index()
	if idx < 0 {
		return
	}
	p := gun.env.Prefs.Guns[idx]

	if p.CustomConfig.Get().(bool) {
		gun.geometry = geometry{
			scaleX:       float32(p.ScaleX.Get().(float64)) / 100.0,
			scaleY:       float32(p.ScaleY.Get().(float64)) / 100.0,
			centerX:      uint32(p.CenterX.Get().(float64)),
			centerY:      uint32(p.CenterY.Get().(float64)),
			screenWidth:  uint32(p.ScreenWidth.Get().(int)),
			screenHeight: uint32(p.ScreenHeight.Get().(int)),
			custom:       true,
		}
	}

	gun.loadTitleOverrides()
}

// loadTitleOverrides reads the optional user calibration overrides file.
// Absence of the file is not an error.
func (gun *GunCon2) loadTitleOverrides() {
	pth, err := resources.JoinPath(titleOverridesFile)
	if err != nil {
		logger.Logf(gun.env, "guncon2", "title overrides: %v", err)
		return
	}

	f, err := os.Open(pth)
	if err != nil {
		return
	}
	defer f.Close()

	if err := gun.titles.LoadOverrides(f); err != nil {
		logger.Logf(gun.env, "guncon2", "title overrides: %v", err)
		return
	}

	logger.Logf(gun.env, "guncon2", "title overrides loaded from %s", pth)
}

// AttachSource gives the gun its normalized pointer position source.
func (gun *GunCon2) AttachSource(src input.Source) {
	gun.source = src
}

// AttachDevice gives the gun an optional raw absolute-axis device. When the
// device is available it takes precedence over the pointer source; when it
// is not, the gun degrades silently to the pointer path.
func (gun *GunCon2) AttachDevice(dev input.Device) {
	gun.device = dev
}

// AttachDisplay gives the gun the window metrics used to normalise pointer
// positions. Also resets the relative axes.
func (gun *GunCon2) AttachDisplay(d input.Display) {
	gun.display = d
	gun.relative = input.NewRelativeAxes(d)
	gun.hasRelative = false
}

// AttachObserver gives the gun its view of the background title observers.
// The observer is stopped when the gun is unplugged.
func (gun *GunCon2) AttachObserver(obs TitleObserver) {
	gun.obs = obs
}

// observed returns the most recent observation snapshot, or the zero State
// if no observer is attached.
func (gun *GunCon2) observed() observer.State {
	if gun.obs == nil {
		return observer.State{}
	}
	return gun.obs.State()
}

// HandleEvent implements the ports.Peripheral interface.
func (gun *GunCon2) HandleEvent(event ports.Event, data ports.EventData) (bool, error) {
	var bit uint32
	var axis input.Axis

	switch event {
	case ports.NoEvent:
		return false, nil
	case ports.Trigger:
		bit = maskTrigger
	case ports.A:
		bit = maskA
	case ports.B:
		bit = maskB
	case ports.C:
		bit = maskC
	case ports.Select:
		bit = maskSelect
	case ports.Start:
		bit = maskStart
	case ports.DPadUp:
		bit = maskDPadUp
	case ports.DPadDown:
		bit = maskDPadDown
	case ports.DPadLeft:
		bit = maskDPadLeft
	case ports.DPadRight:
		bit = maskDPadRight
	case ports.ShootOffscreen:
		bit = maskShootOffscreen
	case ports.Recalibrate:
		bit = maskRecalibrate
	case ports.RelativeLeft:
		axis = input.AxisLeft
	case ports.RelativeRight:
		axis = input.AxisRight
	case ports.RelativeUp:
		axis = input.AxisUp
	case ports.RelativeDown:
		axis = input.AxisDown
	default:
		return false, nil
	}

	if bit != 0 {
		pressed, ok := data.(bool)
		if !ok {
			return false, curated.Errorf(UnhandledEventData, event)
		}
		if pressed {
			gun.buttons |= bit
		} else {
			gun.buttons &^= bit
		}
		return true, nil
	}

	value, ok := data.(float32)
	if !ok {
		return false, curated.Errorf(UnhandledEventData, event)
	}
	gun.relative.Set(axis, value)
	gun.hasRelative = true

	return true, nil
}
