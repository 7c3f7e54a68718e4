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

package ports_test

import (
	"testing"

	"github.com/lightgun-emu/guncon2go/curated"
	"github.com/lightgun-emu/guncon2go/environment"
	"github.com/lightgun-emu/guncon2go/hardware/guncon"
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
	"github.com/lightgun-emu/guncon2go/test"
)

type recorder struct {
	events []ports.Event
}

func (r *recorder) RecordEvent(_ plugging.PortID, ev ports.Event, _ ports.EventData) error {
	r.events = append(r.events, ev)
	return nil
}

type monitor struct {
	plugged map[plugging.PortID]plugging.PeripheralID
}

func (m *monitor) Plugged(port plugging.PortID, id plugging.PeripheralID) {
	m.plugged[port] = id
}

func newPorts(t *testing.T) *ports.Ports {
	t.Helper()
	env, err := environment.NewEnvironment(nil)
	if err != nil {
		t.Fatal(err)
	}
	return ports.NewPorts(env)
}

func TestPlug(t *testing.T) {
	p := newPorts(t)
	defer p.UnplugAll()

	test.Equate(t, string(p.PeripheralID(plugging.Port0)), string(plugging.PeriphNone))

	test.ExpectedSuccess(t, p.Plug(plugging.Port0, guncon.NewGunCon2))
	test.ExpectedSuccess(t, p.Plug(plugging.Port1, guncon.NewGunCon2))
	test.Equate(t, string(p.PeripheralID(plugging.Port0)), string(plugging.PeriphGunCon2))
	test.Equate(t, string(p.PeripheralID(plugging.Port1)), string(plugging.PeriphGunCon2))

	// not a real port. the peripheral must not be constructed, which would
	// leak whatever resources the constructor acquires
	constructed := false
	err := p.Plug(plugging.Unplugged, func(env *environment.Environment, id plugging.PortID) ports.Peripheral {
		constructed = true
		return guncon.NewGunCon2(env, id)
	})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, ports.NoSuchPort))
	test.ExpectedFailure(t, constructed)
}

func TestHandleEventRouting(t *testing.T) {
	p := newPorts(t)
	defer p.UnplugAll()

	test.ExpectedSuccess(t, p.Plug(plugging.Port0, guncon.NewGunCon2))

	handled, err := p.HandleEvent(plugging.Port0, ports.Trigger, true)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, handled)

	// nothing plugged into port 1: not handled, not an error
	handled, err = p.HandleEvent(plugging.Port1, ports.Trigger, true)
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, handled)

	_, err = p.HandleEvent(plugging.Unplugged, ports.Trigger, true)
	test.ExpectedFailure(t, err)
}

func TestEventRecorder(t *testing.T) {
	p := newPorts(t)
	defer p.UnplugAll()

	test.ExpectedSuccess(t, p.Plug(plugging.Port0, guncon.NewGunCon2))

	r := &recorder{}
	p.AttachEventRecorder(r)

	_, _ = p.HandleEvent(plugging.Port0, ports.Trigger, true)
	_, _ = p.HandleEvent(plugging.Port0, ports.Trigger, false)

	test.Equate(t, len(r.events), 2)
	test.Equate(t, string(r.events[0]), string(ports.Trigger))
}

func TestPlugMonitor(t *testing.T) {
	p := newPorts(t)
	defer p.UnplugAll()

	m := &monitor{plugged: make(map[plugging.PortID]plugging.PeripheralID)}
	p.AttachPlugMonitor(m)

	test.ExpectedSuccess(t, p.Plug(plugging.Port0, guncon.NewGunCon2))
	test.Equate(t, string(m.plugged[plugging.Port0]), string(plugging.PeriphGunCon2))
}
