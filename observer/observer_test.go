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

package observer_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lightgun-emu/guncon2go/hardware/guncon/titledb"
	"github.com/lightgun-emu/guncon2go/observer"
	"github.com/lightgun-emu/guncon2go/test"
)

type mockProvider struct {
	title  atomic.Value // string
	active atomic.Value // bool
}

func newMockProvider() *mockProvider {
	p := &mockProvider{}
	p.title.Store("")
	p.active.Store(true)
	return p
}

func (p *mockProvider) CurrentTitle() string {
	return p.title.Load().(string)
}

func (p *mockProvider) IsActive() bool {
	return p.active.Load().(bool)
}

type mockMemory struct {
	crit sync.Mutex
	mem  map[uint32]uint8
}

func (m *mockMemory) Peek8(address uint32) (uint8, error) {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.mem[address], nil
}

func (m *mockMemory) poke(address uint32, v uint8) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.mem[address] = v
}

type mockDisplay struct {
	forced   atomic.Value // bool
	restored atomic.Value // bool
}

func newMockDisplay() *mockDisplay {
	d := &mockDisplay{}
	d.forced.Store(false)
	d.restored.Store(false)
	return d
}

func (d *mockDisplay) SetWideAspect(_ bool) {
	d.forced.Store(true)
}

func (d *mockDisplay) Restore() {
	d.restored.Store(true)
}

// wait for cond to become true, failing the test after a generous deadline.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTitleDetection(t *testing.T) {
	prov := newMockProvider()
	mem := &mockMemory{mem: make(map[uint32]uint8)}

	obs := observer.NewObserver(titledb.Standard(), prov, mem, nil)
	obs.TitleInterval = time.Millisecond
	obs.SplitInterval = time.Millisecond
	obs.Start()
	defer obs.Stop()

	// no title yet
	test.Equate(t, obs.State().Title, "")

	// a title with no split signature. observation ends after detection
	prov.title.Store("SLES-51289")
	waitFor(t, func() bool { return obs.State().Title == "SLES-51289" })
	test.ExpectedFailure(t, obs.State().SplitActive)
}

func TestSplitViewDetection(t *testing.T) {
	prov := newMockProvider()
	mem := &mockMemory{mem: make(map[uint32]uint8)}
	disp := newMockDisplay()

	obs := observer.NewObserver(titledb.Standard(), prov, mem, disp)
	obs.TitleInterval = time.Millisecond
	obs.SplitInterval = time.Millisecond
	obs.SetSplitHack(true, false)
	obs.Start()
	defer obs.Stop()

	prov.title.Store("SLUS-20219")
	waitFor(t, func() bool { return obs.State().Title == "SLUS-20219" })

	// flag byte goes high
	mem.poke(0x63EE64, 1)
	waitFor(t, func() bool { return obs.State().SplitActive })
	waitFor(t, func() bool { return disp.forced.Load().(bool) })

	// and low again
	mem.poke(0x63EE64, 0)
	waitFor(t, func() bool { return !obs.State().SplitActive })
	waitFor(t, func() bool { return disp.restored.Load().(bool) })
}

func TestStopJoins(t *testing.T) {
	prov := newMockProvider()
	mem := &mockMemory{mem: make(map[uint32]uint8)}

	obs := observer.NewObserver(titledb.Standard(), prov, mem, nil)
	obs.TitleInterval = time.Millisecond
	obs.SplitInterval = time.Millisecond
	obs.Start()

	prov.title.Store("SLUS-20645")
	waitFor(t, func() bool { return obs.State().Title == "SLUS-20645" })

	// Stop returns only once the goroutines have been joined. a second
	// Stop is a no-op
	obs.Stop()
	obs.Stop()
}

func TestEmulationEnd(t *testing.T) {
	prov := newMockProvider()
	mem := &mockMemory{mem: make(map[uint32]uint8)}

	obs := observer.NewObserver(titledb.Standard(), prov, mem, nil)
	obs.TitleInterval = time.Millisecond
	obs.Start()

	// observation ends of its own accord when the emulation does
	prov.active.Store(false)
	obs.Stop()
}
