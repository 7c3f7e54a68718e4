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

package modalflag

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Modes parses command line arguments in layers: every layer has its own
// flags and, optionally, a list of sub-modes. The Output field should be
// specified before calling Parse() or you will not see any help messages.
type Modes struct {
	// where to print help messages etc. defaults to a discarding writer
	Output io.Writer

	// the arguments still to be parsed. reduced by every call to Parse()
	args []string

	// flags and sub-modes for the current layer. reset by NewMode()
	flags    *flag.FlagSet
	subModes []string

	// the sub-modes selected by previous calls to Parse()
	selected []string

	// the flag package writes usage information here during Parse()
	usage bytes.Buffer
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if sub-modes were registered, Mode() tells you
	// which one was selected.
	ParseContinue ParseResult = iota

	// help was requested and has been printed to the Output field.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// NewArgs with a list of arguments (os.Args[1:] for example). Implies
// NewMode().
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.selected = md.selected[:0]
	md.NewMode()
}

// NewMode begins a new layer of parsing. Flags and sub-modes registered
// before the call are forgotten; the arguments left over from the previous
// Parse() are what the new layer will work with.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(&md.usage)
}

// AddSubModes registers the valid sub-modes for the current layer. The
// first sub-mode in the list is the default, selected when the arguments
// name no sub-mode at all. Comparisons are case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag to the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag to the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Mode returns the most recently selected sub-mode. The empty string means
// no sub-mode has been selected yet.
func (md *Modes) Mode() string {
	if len(md.selected) == 0 {
		return ""
	}
	return md.selected[len(md.selected)-1]
}

// RemainingArgs are the arguments left over by the most recent Parse():
// everything that is not a flag or a selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered remaining argument, or the empty string if
// there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// Parse the current layer of arguments. Flag values registered with the
// Add*() functions are set; if sub-modes were registered the first
// non-flag argument is matched against them, falling back to the default
// sub-mode.
//
// Help messages are handled by Parse() itself and written to the Output
// field. The ParseHelp return value says that has happened and the program
// should exit without further output.
func (md *Modes) Parse() (ParseResult, error) {
	md.usage.Reset()

	if err := md.flags.Parse(md.args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.writeHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		if len(md.args) > 0 {
			arg := strings.ToUpper(md.args[0])
			for _, m := range md.subModes {
				if m == arg {
					mode = arg
					md.args = md.args[1:]
					break // for loop
				}
			}
		}
		md.selected = append(md.selected, mode)
	}

	return ParseContinue, nil
}

// writeHelp composes the flag package's usage information, the registered
// sub-modes and the current mode into one help message on the Output field.
func (md *Modes) writeHelp() {
	output := md.Output
	if output == nil {
		return
	}

	// the flag package has already written its usage message to the usage
	// buffer. the first line is the bare "Usage:" banner, which we improve
	// on when a mode has been selected
	usage := md.usage.String()

	if usage == "Usage:\n" && len(md.subModes) == 0 {
		if mode := md.Mode(); mode != "" {
			fmt.Fprintf(output, "No help available for %s\n", mode)
		} else {
			fmt.Fprintf(output, "No help available\n")
		}
		return
	}

	if mode := md.Mode(); mode != "" {
		usage = strings.Replace(usage, "Usage:", fmt.Sprintf("Usage of %s mode:", mode), 1)
	}
	fmt.Fprint(output, usage)

	if len(md.subModes) > 0 {
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", md.subModes[0])
	}
}
