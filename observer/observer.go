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

// Package observer watches the running title on behalf of a gun. Two
// background goroutines are maintained: a coarse poller that waits for a
// title identifier to become available, and a fine poller that samples the
// title's split-view flag byte for titles that are known to have one.
//
// The observers communicate with the gun through atomic snapshots of the
// State type, read by the gun at most once per data transaction. Stop()
// signals both goroutines and joins them; it must be called before the
// owning gun is destroyed.
package observer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lightgun-emu/guncon2go/hardware/guncon/titledb"
	"github.com/lightgun-emu/guncon2go/logger"
)

// TitleProvider is implemented by the emulation that hosts the gun. It is
// polled from a background goroutine so implementations must be safe for
// concurrent use.
type TitleProvider interface {
	// CurrentTitle returns the serial of the running title. The empty
	// string means no title is running yet.
	CurrentTitle() string

	// IsActive returns false once the emulation has ended. Observation
	// stops when it does.
	IsActive() bool
}

// Memory provides read access to the emulated memory. Used to sample the
// split-view flag byte for titles with a known signature.
type Memory interface {
	Peek8(address uint32) (uint8, error)
}

// DisplayControl is told about split-view transitions so that the host can
// adjust the display. Implementations must be safe for concurrent use.
type DisplayControl interface {
	// SetWideAspect forces a wide aspect ratio, optionally with a reduced
	// vertical stretch so that two viewports read like two 4:3 screens.
	SetWideAspect(reduceStretch bool)

	// Restore reverts any display forcing done by SetWideAspect.
	Restore()
}

// NopDisplay is a DisplayControl that does nothing. Useful for hosts that
// do not control their display.
type NopDisplay struct{}

// SetWideAspect implements the DisplayControl interface.
func (NopDisplay) SetWideAspect(_ bool) {}

// Restore implements the DisplayControl interface.
func (NopDisplay) Restore() {}

// State is the snapshot published by the observers and consumed by the gun.
type State struct {
	// serial of the running title. empty until the title poller has seen
	// one.
	Title string

	// whether the running title is presenting two simultaneous viewports.
	// always false for titles with no split-view signature.
	SplitActive bool
}

// Observer owns the background polling goroutines for one gun.
type Observer struct {
	titles *titledb.DB
	prov   TitleProvider
	mem    Memory
	disp   DisplayControl

	// display forcing is only applied when the split-screen hack has been
	// requested in the gun's preferences.
	splitHack   bool
	fullStretch bool

	// polling cadence. the fields exist so that tests can shorten them;
	// they must not be changed after Start().
	TitleInterval time.Duration
	SplitInterval time.Duration

	state atomic.Value // State

	quit chan bool
	wg   sync.WaitGroup

	forced bool
}

// NewObserver is the preferred method of initialisation for the Observer
// type. The disp argument can be nil, in which case display transitions are
// discarded.
func NewObserver(titles *titledb.DB, prov TitleProvider, mem Memory, disp DisplayControl) *Observer {
	if disp == nil {
		disp = NopDisplay{}
	}
	obs := &Observer{
		titles:        titles,
		prov:          prov,
		mem:           mem,
		disp:          disp,
		TitleInterval: 100 * time.Millisecond,
		SplitInterval: 10 * time.Millisecond,
		quit:          make(chan bool),
	}
	obs.state.Store(State{})
	return obs
}

// SetSplitHack controls whether split-view transitions are allowed to force
// the display. Must be called before Start().
func (obs *Observer) SetSplitHack(enabled bool, fullStretch bool) {
	obs.splitHack = enabled
	obs.fullStretch = fullStretch
}

// State returns the most recent observation snapshot.
func (obs *Observer) State() State {
	return obs.state.Load().(State)
}

// Start the background observers. Start must be called at most once.
func (obs *Observer) Start() {
	obs.wg.Add(1)
	go func() {
		defer obs.wg.Done()
		obs.watchTitle()
	}()
}

// Stop signals the background observers and joins them. The display is
// restored if it was forced. It is safe to call Stop more than once but
// only if Start has been called.
func (obs *Observer) Stop() {
	select {
	case <-obs.quit:
	default:
		close(obs.quit)
	}
	obs.wg.Wait()
	obs.restoreDisplay()
}

// watchTitle polls the title provider until a title identifier is available
// and then hands over to the split-view poller if the title has a split
// signature.
func (obs *Observer) watchTitle() {
	tick := time.NewTicker(obs.TitleInterval)
	defer tick.Stop()

	for {
		select {
		case <-obs.quit:
			return
		case <-tick.C:
		}

		if !obs.prov.IsActive() {
			return
		}

		title := obs.prov.CurrentTitle()
		if title == "" {
			continue
		}

		obs.state.Store(State{Title: title})
		logger.Logf(logger.Allow, "observer", "title detected: %s", title)

		if addr, ok := obs.titles.LookupSplitSignature(title); ok {
			obs.watchSplit(title, addr)
		}
		return
	}
}

// watchSplit polls the split-view flag byte for the given title. Runs until
// quit or the emulation ends.
func (obs *Observer) watchSplit(title string, address uint32) {
	tick := time.NewTicker(obs.SplitInterval)
	defer tick.Stop()

	for {
		select {
		case <-obs.quit:
			return
		case <-tick.C:
		}

		if !obs.prov.IsActive() {
			return
		}

		b, err := obs.mem.Peek8(address)
		if err != nil {
			logger.Logf(logger.Allow, "observer", "split-view sampling stopped: %v", err)
			return
		}

		active := b == 1
		prev := obs.State()
		if active != prev.SplitActive {
			obs.state.Store(State{Title: title, SplitActive: active})
		}

		if active && obs.splitHack {
			obs.forceDisplay()
		} else if !active {
			obs.restoreDisplay()
		}
	}
}

func (obs *Observer) forceDisplay() {
	if obs.forced {
		return
	}
	obs.forced = true
	obs.disp.SetWideAspect(!obs.fullStretch)
}

func (obs *Observer) restoreDisplay() {
	if !obs.forced {
		return
	}
	obs.forced = false
	obs.disp.Restore()
}
