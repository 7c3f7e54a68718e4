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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with flag.FlagSet you call Parse() with the
// array of strings as the only argument, with modalflag you first NewArgs()
// with the array of arguments and then Parse() with no arguments. For example
// (note that no error handling of the Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// Flags are added with the Add*() family of functions, which mirror the
// flag package. Each returns a pointer to a variable of the specified type,
// set by Parse() according to what the user has requested:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". In this
// context, a mode is a special command line argument that when specified,
// puts the program into a different mode of operation, each with its own set
// of flags and expected arguments.
//
// Sub-modes are registered with the AddSubModes() function, the first mode
// in the list being the default. Comparisons are case insensitive.
//
//	md.AddSubModes("run", "version")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		device := md.AddString("device", "", "path to an evdev device")
//		p, err := md.Parse()
//		switch p {
//		case ParseError:
//			fmt.Println(err)
//			return
//		case ParseHelp:
//			return
//		}
//		run(*device)
//	case "VERSION":
//		fmt.Println(version.Version())
//	}
//
// Modes can be chained as deeply as required, each level of the chain
// beginning with a call to NewMode().
package modalflag
