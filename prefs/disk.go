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

// Package prefs is the preference system used by the project. Preference
// values are typed (Bool, String, Int, Float) and stored atomically, so they
// can be read from the transaction context while being updated from a
// configuration context.
//
// Preferences that should survive between executions are registered with a
// Disk instance. The file format is one "key :: value" entry per line, keys
// sorted, making the file mergeable and easy to edit by hand.
package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lightgun-emu/guncon2go/curated"
)

// DefaultPrefsFile is the default filename of the preferences file, relative
// to the resources path.
const DefaultPrefsFile = "guncon2go.prefs"

// the first line of a valid prefs file.
const header = "*guncon2go*"

// entry separator between key and value.
const separator = " :: "

// sentinel error patterns for the prefs package.
const (
	// NoPrefsFile is not a failure condition: defaults remain in place.
	NoPrefsFile = "prefs: no prefs file (%s)"

	// NotAPrefsFile is returned when the file exists but does not carry the
	// expected header line.
	NotAPrefsFile = "prefs: not a valid prefs file (%s)"
)

// Disk represents preference values that are loaded from and saved to disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the full path to the preferences file.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the list of values to be saved/loaded under the
// supplied key. Keys must be unique within one Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) {
		return curated.Errorf("prefs: key contains the entry separator (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Load preference values from disk. Entries in the file that have not been
// registered with Add() are left alone; registered entries that are absent
// from the file keep their current value.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	if !sc.Scan() || sc.Text() != header {
		return curated.Errorf(NotAPrefsFile, dsk.path)
	}

	for sc.Scan() {
		kv := strings.SplitN(sc.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		if p, ok := dsk.entries[kv[0]]; ok {
			if err := p.Set(kv[1]); err != nil {
				return curated.Errorf("prefs: load: %v", err)
			}
		}
	}

	return sc.Err()
}

// Save current preference values to disk. Entries in an existing file that
// have not been registered with Add() are preserved.
func (dsk *Disk) Save() error {
	// gather any unregistered entries from an existing file so they survive
	// the rewrite
	other := make(map[string]string)
	if f, err := os.Open(dsk.path); err == nil {
		sc := bufio.NewScanner(f)
		if sc.Scan() && sc.Text() == header {
			for sc.Scan() {
				kv := strings.SplitN(sc.Text(), separator, 2)
				if len(kv) != 2 {
					continue
				}
				if _, ok := dsk.entries[kv[0]]; !ok {
					other[kv[0]] = kv[1]
				}
			}
		}
		f.Close()
	}

	keys := make([]string, 0, len(dsk.entries)+len(other))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	for k := range other {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: save: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return curated.Errorf("prefs: save: %v", err)
	}

	for _, k := range keys {
		var v string
		if p, ok := dsk.entries[k]; ok {
			v = p.String()
		} else {
			v = other[k]
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", k, separator, v); err != nil {
			return curated.Errorf("prefs: save: %v", err)
		}
	}

	return nil
}
