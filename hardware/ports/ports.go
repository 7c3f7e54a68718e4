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

// Package ports represents the two USB ports of the emulated console, insofar
// as the light-gun emulation needs them: peripherals are plugged into a port
// and input events are routed to the peripheral in the named port.
package ports

import (
	"strings"

	"github.com/lightgun-emu/guncon2go/curated"
	"github.com/lightgun-emu/guncon2go/environment"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
)

// sentinel error patterns for the ports package.
const (
	// NoSuchPort is returned by functions that take a PortID argument that
	// does not name a real port.
	NoSuchPort = "ports: no such port (%v)"
)

// Ports is the mux for all peripherals plugged into the console.
type Ports struct {
	env *environment.Environment

	Port0 Peripheral
	Port1 Peripheral

	recorder []EventRecorder
	monitor  plugging.PlugMonitor
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(env *environment.Environment) *Ports {
	return &Ports{
		env:      env,
		recorder: make([]EventRecorder, 0),
	}
}

func (p *Ports) String() string {
	s := strings.Builder{}
	if p.Port0 != nil {
		s.WriteString(p.Port0.String())
		s.WriteString("\n")
	}
	if p.Port1 != nil {
		s.WriteString(p.Port1.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Plug connects a peripheral to a port. Any peripheral already plugged into
// the port is unplugged first.
//
// The port is validated before the peripheral is constructed, so a failed
// Plug never creates a peripheral that would need unplugging.
func (p *Ports) Plug(port plugging.PortID, c NewPeripheral) error {
	if port != plugging.Port0 && port != plugging.Port1 {
		return curated.Errorf(NoSuchPort, port)
	}

	periph := c(p.env, port)

	// notify monitor of the plug event
	if p.monitor != nil {
		p.monitor.Plugged(port, periph.ID())
	}

	// attach any existing monitor to the new peripheral
	if a, ok := periph.(plugging.Monitorable); ok {
		a.AttachPlugMonitor(p.monitor)
	}

	switch port {
	case plugging.Port0:
		if p.Port0 != nil {
			p.Port0.Unplug()
		}
		p.Port0 = periph
	case plugging.Port1:
		if p.Port1 != nil {
			p.Port1.Unplug()
		}
		p.Port1 = periph
	}

	return nil
}

// HandleEvent forwards the Event and EventData to the peripheral in the
// named port.
//
// Returns true if the event was handled by a peripheral and false if not.
// Unrecognised events cause an error.
func (p *Ports) HandleEvent(id plugging.PortID, ev Event, d EventData) (bool, error) {
	var handled bool
	var err error

	switch id {
	case plugging.Port0:
		if p.Port0 != nil {
			handled, err = p.Port0.HandleEvent(ev, d)
		}
	case plugging.Port1:
		if p.Port1 != nil {
			handled, err = p.Port1.HandleEvent(ev, d)
		}
	default:
		return false, curated.Errorf(NoSuchPort, id)
	}

	// record event with the attached recorders
	for _, r := range p.recorder {
		if rerr := r.RecordEvent(id, ev, d); rerr != nil {
			return handled, curated.Errorf("ports: %v", rerr)
		}
	}

	if err != nil {
		return handled, curated.Errorf("ports: %v", err)
	}

	return handled, nil
}

// PeripheralID identifies the device currently attached to the port.
func (p *Ports) PeripheralID(id plugging.PortID) plugging.PeripheralID {
	switch id {
	case plugging.Port0:
		if p.Port0 != nil {
			return p.Port0.ID()
		}
	case plugging.Port1:
		if p.Port1 != nil {
			return p.Port1.ID()
		}
	}
	return plugging.PeriphNone
}

// ResetPeripherals to an initial state.
func (p *Ports) ResetPeripherals() {
	if p.Port0 != nil {
		p.Port0.Reset()
	}
	if p.Port1 != nil {
		p.Port1.Reset()
	}
}

// UnplugAll peripherals. Background helpers started by the peripherals are
// stopped and joined before this function returns.
func (p *Ports) UnplugAll() {
	if p.Port0 != nil {
		p.Port0.Unplug()
		p.Port0 = nil
	}
	if p.Port1 != nil {
		p.Port1.Unplug()
		p.Port1 = nil
	}
}

// AttachEventRecorder attaches an EventRecorder implementation.
func (p *Ports) AttachEventRecorder(r EventRecorder) {
	p.recorder = append(p.recorder, r)
}

// AttachPlugMonitor implements the plugging.Monitorable interface.
func (p *Ports) AttachPlugMonitor(m plugging.PlugMonitor) {
	p.monitor = m

	// make sure any already attached peripherals know about the new monitor
	if a, ok := p.Port0.(plugging.Monitorable); ok {
		a.AttachPlugMonitor(m)
	}
	if a, ok := p.Port1.(plugging.Monitorable); ok {
		a.AttachPlugMonitor(m)
	}

	// notify monitor of currently plugged peripherals
	if p.monitor != nil {
		if p.Port0 != nil {
			p.monitor.Plugged(plugging.Port0, p.Port0.ID())
		}
		if p.Port1 != nil {
			p.monitor.Plugged(plugging.Port1, p.Port1.ID())
		}
	}
}
