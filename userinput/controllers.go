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

package userinput

import (
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
	"github.com/lightgun-emu/guncon2go/input"
)

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// the pointer source shared with the plugged guns. mouse motion events
	// land here rather than at a port
	Pointer *input.Pointer

	// is true if last event was consumed/handled by an emulated gun
	HandledByGun bool
}

func (c *Controllers) mouseMotion(ev EventMouseMotion) error {
	if c.Pointer == nil {
		return nil
	}
	if ev.OffScreen {
		c.Pointer.SetOffScreen()
	} else {
		c.Pointer.SetWindowPosition(ev.X, ev.Y)
	}
	return nil
}

func (c *Controllers) mouseButton(ev EventMouseButton, handle HandleInput) error {
	var err error

	switch ev.Button {
	case MouseButtonLeft:
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.Trigger, ev.Down)
	case MouseButtonRight:
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.A, ev.Down)
	case MouseButtonMiddle:
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.B, ev.Down)
	}

	return err
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	var err error

	switch ev.Key {
	// gun buttons
	case "Space":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.Trigger, ev.Down)
	case "A":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.A, ev.Down)
	case "B":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.B, ev.Down)
	case "C":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.C, ev.Down)
	case "Return":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.Start, ev.Down)
	case "Backspace":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.Select, ev.Down)

	// d-pad
	case "Up":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.DPadUp, ev.Down)
	case "Down":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.DPadDown, ev.Down)
	case "Left":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.DPadLeft, ev.Down)
	case "Right":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.DPadRight, ev.Down)

	// pseudo-buttons interpreted by the gun
	case "O":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.ShootOffscreen, ev.Down)
	case "R":
		c.HandledByGun, err = handle.HandleEvent(plugging.Port0, ports.Recalibrate, ev.Down)
	}

	return err
}

func (c *Controllers) gamepadButton(ev EventGamepadButton, handle HandleInput) error {
	var event ports.Event

	switch ev.Button {
	case GamepadButtonA:
		event = ports.A
	case GamepadButtonB:
		event = ports.B
	case GamepadButtonC:
		event = ports.C
	case GamepadButtonSelect:
		event = ports.Select
	case GamepadButtonStart:
		event = ports.Start
	case GamepadButtonTrigger:
		event = ports.Trigger
	case GamepadButtonShootOffscreen:
		event = ports.ShootOffscreen
	case GamepadButtonRecalibrate:
		event = ports.Recalibrate
	default:
		return nil
	}

	var err error
	c.HandledByGun, err = handle.HandleEvent(ev.ID, event, ev.Down)
	return err
}

func (c *Controllers) gamepadDPad(ev EventGamepadDPad, handle HandleInput) error {
	// the gun's d-pad is four independent buttons; a direction event
	// releases the other three
	dirs := map[ports.Event]bool{
		ports.DPadUp:    false,
		ports.DPadDown:  false,
		ports.DPadLeft:  false,
		ports.DPadRight: false,
	}

	switch ev.Direction {
	case DPadUp:
		dirs[ports.DPadUp] = true
	case DPadDown:
		dirs[ports.DPadDown] = true
	case DPadLeft:
		dirs[ports.DPadLeft] = true
	case DPadRight:
		dirs[ports.DPadRight] = true
	}

	for event, down := range dirs {
		handled, err := handle.HandleEvent(ev.ID, event, down)
		if err != nil {
			return err
		}
		c.HandledByGun = c.HandledByGun || handled
	}

	return nil
}

func (c *Controllers) gamepadStick(ev EventGamepadStick, handle HandleInput) error {
	// split each stick axis into the gun's two half-axes
	send := func(neg ports.Event, pos ports.Event, amount float32) error {
		var negAmount, posAmount float32
		if amount < 0 {
			negAmount = -amount
		} else {
			posAmount = amount
		}
		if _, err := handle.HandleEvent(ev.ID, neg, negAmount); err != nil {
			return err
		}
		_, err := handle.HandleEvent(ev.ID, pos, posAmount)
		return err
	}

	if err := send(ports.RelativeLeft, ports.RelativeRight, ev.Horiz); err != nil {
		return err
	}
	return send(ports.RelativeUp, ports.RelativeDown, ev.Vert)
}

// HandleUserInput deciphers the Event and forwards the input to the gun
// ports. Returns true if the event is a Quit event and false otherwise.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	c.HandledByGun = false

	var err error
	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventMouseMotion:
		err = c.mouseMotion(ev)
	case EventMouseButton:
		err = c.mouseButton(ev, handle)
	case EventKeyboard:
		err = c.keyboard(ev, handle)
	case EventGamepadButton:
		err = c.gamepadButton(ev, handle)
	case EventGamepadDPad:
		err = c.gamepadDPad(ev, handle)
	case EventGamepadStick:
		err = c.gamepadStick(ev, handle)
	default:
	}

	return false, err
}
