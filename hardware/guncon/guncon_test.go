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

package guncon_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/lightgun-emu/guncon2go/curated"
	"github.com/lightgun-emu/guncon2go/environment"
	"github.com/lightgun-emu/guncon2go/hardware/guncon"
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
	"github.com/lightgun-emu/guncon2go/hardware/usb"
	"github.com/lightgun-emu/guncon2go/input"
	"github.com/lightgun-emu/guncon2go/observer"
	"github.com/lightgun-emu/guncon2go/test"
)

// stubObserver satisfies the guncon.TitleObserver interface without any
// background goroutines.
type stubObserver struct {
	state observer.State
}

func (s *stubObserver) State() observer.State {
	return s.state
}

func (s *stubObserver) Stop() {}

// newTestGun returns a gun plugged into port 0 with an on-screen pointer at
// the center of the default 640x240 display.
func newTestGun(t *testing.T) (*guncon.GunCon2, *input.Pointer) {
	t.Helper()

	env, err := environment.NewEnvironment(nil)
	if err != nil {
		t.Fatal(err)
	}

	gun := guncon.NewGunCon2(env, plugging.Port0).(*guncon.GunCon2)

	pointer := input.NewPointer()
	pointer.SetWindowPosition(320, 120)
	gun.AttachSource(pointer)

	return gun, pointer
}

// transact runs one IN transaction and decodes the report.
func transact(t *testing.T, gun *guncon.GunCon2) (buttons uint16, x int16, y int16) {
	t.Helper()

	rep, status := gun.HandleData(usb.TokenIn, usb.ReportEndpoint)
	test.Equate(t, int(status), int(usb.StatusOK))

	buttons = binary.LittleEndian.Uint16(rep[0:])
	x = int16(binary.LittleEndian.Uint16(rep[2:]))
	y = int16(binary.LittleEndian.Uint16(rep[4:]))
	return buttons, x, y
}

func setParam(t *testing.T, gun *guncon.GunCon2, x, y int16, mode uint16) {
	t.Helper()

	data := make([]byte, 6)
	binary.LittleEndian.PutUint16(data[0:], uint16(x))
	binary.LittleEndian.PutUint16(data[2:], uint16(y))
	binary.LittleEndian.PutUint16(data[4:], mode)

	_, status := gun.HandleControl(usb.SetParam, 0, 0, data)
	test.Equate(t, int(status), int(usb.StatusOK))
}

const triggerWireBit = uint16(1) << 13

func TestDefaultReport(t *testing.T) {
	gun, pointer := newTestGun(t)
	defer gun.Unplug()

	buttons, x, y := transact(t, gun)
	test.Equate(t, buttons, uint16(0xffff))
	test.Equate(t, x, int16(320))
	test.Equate(t, y, int16(120))

	// an off-screen pointer reports the sentinel
	pointer.SetOffScreen()
	_, x, y = transact(t, gun)
	test.Equate(t, x, int16(0))
	test.Equate(t, y, int16(0))
}

func TestButtonEvents(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	handled, err := gun.HandleEvent(ports.Trigger, true)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, handled)

	buttons, _, _ := transact(t, gun)
	test.Equate(t, buttons&triggerWireBit, uint16(0))

	handled, err = gun.HandleEvent(ports.Trigger, false)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, handled)

	buttons, _, _ = transact(t, gun)
	test.Equate(t, buttons&triggerWireBit, triggerWireBit)

	// wrong event data type
	_, err = gun.HandleEvent(ports.Trigger, float32(1.0))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, guncon.UnhandledEventData))
}

func TestCalibrationHandshake(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	_, err := gun.HandleEvent(ports.Recalibrate, true)
	test.ExpectedSuccess(t, err)

	// twelve transactions of hold: first seven report the latched
	// position, final five report the off-screen sentinel. trigger is
	// forced down on the wire throughout
	for i := 0; i < 12; i++ {
		buttons, x, y := transact(t, gun)
		test.Equate(t, buttons&triggerWireBit, uint16(0))

		if i < 7 {
			test.Equate(t, x, int16(320))
			test.Equate(t, y, int16(120))
		} else {
			test.Equate(t, x, int16(0))
			test.Equate(t, y, int16(0))
		}

		// trigger-button oscillation during the hold is absorbed by the
		// countdown
		_, _ = gun.HandleEvent(ports.Recalibrate, i%2 == 0)
	}

	// normal reporting resumes
	_, _ = gun.HandleEvent(ports.Recalibrate, false)
	buttons, x, y := transact(t, gun)
	test.Equate(t, buttons&triggerWireBit, triggerWireBit)
	test.Equate(t, x, int16(320))
	test.Equate(t, y, int16(120))
}

func TestOffscreenShot(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	_, _ = gun.HandleEvent(ports.Trigger, true)
	_, _ = gun.HandleEvent(ports.ShootOffscreen, true)

	buttons, x, y := transact(t, gun)
	test.Equate(t, buttons&triggerWireBit, uint16(0))
	test.Equate(t, x, int16(0))
	test.Equate(t, y, int16(0))

	// stateless: releasing the button resumes normal reporting at once
	_, _ = gun.HandleEvent(ports.ShootOffscreen, false)
	_, _ = gun.HandleEvent(ports.Trigger, false)
	_, x, y = transact(t, gun)
	test.Equate(t, x, int16(320))
	test.Equate(t, y, int16(120))
}

func TestSetParam(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	setParam(t, gun, 10, 6, 0)
	_, x, y := transact(t, gun)
	test.Equate(t, x, int16(310))
	test.Equate(t, y, int16(114))

	// progressive mode halves the offsets and flags the report
	setParam(t, gun, 10, 6, 0x0100)
	buttons, x, y := transact(t, gun)
	test.Equate(t, x, int16(315))
	test.Equate(t, y, int16(117))
	test.Equate(t, buttons&0x0100, uint16(0x0100))
}

func TestControlStall(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	// a class request the gun does not understand
	_, status := gun.HandleControl(usb.ClassInterfaceOutRequest|0x42, 0, 0, nil)
	test.Equate(t, int(status), int(usb.StatusStall))

	// descriptor requests are fine
	reply, status := gun.HandleControl(usb.DeviceInRequest|usb.GetDescriptor, usb.DescTypeDevice<<8, 0, make([]byte, 64))
	test.Equate(t, int(status), int(usb.StatusOK))
	test.Equate(t, len(reply), 18)
}

func TestDataStall(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	_, status := gun.HandleData(usb.TokenOut, usb.ReportEndpoint)
	test.Equate(t, int(status), int(usb.StatusStall))

	_, status = gun.HandleData(usb.TokenIn, 2)
	test.Equate(t, int(status), int(usb.StatusStall))
}

func TestAutoConfiguration(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	gun.AttachObserver(&stubObserver{state: observer.State{Title: "SLUS-20219"}})

	// configuration is applied on the first control transfer
	_, _ = gun.HandleControl(usb.DeviceInRequest|usb.GetDescriptor, usb.DescTypeDevice<<8, 0, make([]byte, 64))

	_, x, y := transact(t, gun)
	test.Equate(t, x, int16(390))
	test.Equate(t, y, int16(154))

	// idempotent: a second control transfer changes nothing
	_, _ = gun.HandleControl(usb.DeviceInRequest|usb.GetDescriptor, usb.DescTypeDevice<<8, 0, make([]byte, 64))
	_, x, y = transact(t, gun)
	test.Equate(t, x, int16(390))
	test.Equate(t, y, int16(154))
}

func TestAutoConfigurationUnknownTitle(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	gun.AttachObserver(&stubObserver{state: observer.State{Title: "SLUS-99999"}})

	// unknown titles keep the compiled-in defaults
	_, x, y := transact(t, gun)
	test.Equate(t, x, int16(320))
	test.Equate(t, y, int16(120))
}

func TestSplitViewPipeline(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	gun.AttachObserver(&stubObserver{state: observer.State{
		Title:       "SLUS-20219",
		SplitActive: true,
	}})

	// auto-configuration applies the SLUS-20219 profile; the split-view
	// correction then remaps the centered pointer into port 0's viewport
	_, x, y := transact(t, gun)
	test.Equate(t, x, int16(372))
	test.Equate(t, y, int16(153))
}

func TestRelativeAxes(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	// the first relative event switches the gun to the relative path
	_, err := gun.HandleEvent(ports.RelativeRight, float32(0.5))
	test.ExpectedSuccess(t, err)

	// x = ((0.5)+1)*0.5 = 0.75 of the window; y centered
	_, x, y := transact(t, gun)
	test.Equate(t, x, int16(480))
	test.Equate(t, y, int16(120))
}

func TestStateRoundTrip(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	gun.AttachObserver(&stubObserver{state: observer.State{Title: "SLUS-20219"}})
	setParam(t, gun, 10, 6, 0)

	// one transaction into a calibration hold
	_, _ = gun.HandleEvent(ports.Recalibrate, true)
	_, x, y := transact(t, gun)
	test.Equate(t, x, int16(380))
	test.Equate(t, y, int16(148))

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, gun.SaveState(buf))

	// a fresh gun resumes the hold and the auto-detected geometry
	gun2, _ := newTestGun(t)
	defer gun2.Unplug()
	test.ExpectedSuccess(t, gun2.RestoreState(bytes.NewReader(buf.Bytes())))

	for i := 0; i < 11; i++ {
		_, x, y := transact(t, gun2)
		if i < 6 {
			test.Equate(t, x, int16(380))
			test.Equate(t, y, int16(148))
		} else {
			test.Equate(t, x, int16(0))
			test.Equate(t, y, int16(0))
		}
	}

	// the hold is over; the restored geometry and offsets resolve the
	// pointer
	_, x, y = transact(t, gun2)
	test.Equate(t, x, int16(380))
	test.Equate(t, y, int16(148))
}

func TestStateCustomProtection(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	gun.AttachObserver(&stubObserver{state: observer.State{Title: "SLUS-20219"}})
	_, x, _ := transact(t, gun)
	test.Equate(t, x, int16(390))

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, gun.SaveState(buf))

	// a custom-configured gun ignores the saved geometry
	env, err := environment.NewEnvironment(nil)
	if err != nil {
		t.Fatal(err)
	}
	p := env.Prefs.Guns[0]
	p.CustomConfig.Set(true)
	p.ScaleX.Set(50.0)
	p.ScaleY.Set(50.0)
	p.CenterX.Set(100.0)
	p.CenterY.Set(100.0)

	gun2 := guncon.NewGunCon2(env, plugging.Port0).(*guncon.GunCon2)
	defer gun2.Unplug()

	pointer := input.NewPointer()
	pointer.SetWindowPosition(320, 120)
	gun2.AttachSource(pointer)

	test.ExpectedSuccess(t, gun2.RestoreState(bytes.NewReader(buf.Bytes())))

	_, x, y := transact(t, gun2)
	test.Equate(t, x, int16(100))
	test.Equate(t, y, int16(100))
}

func TestStateMalformed(t *testing.T) {
	gun, _ := newTestGun(t)
	defer gun.Unplug()

	// wrong marker
	err := gun.RestoreState(strings.NewReader("not a guncon2 save state at all"))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, guncon.RestoreStateError))

	// truncated
	err = gun.RestoreState(strings.NewReader("guncon2"))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, guncon.RestoreStateError))
}
