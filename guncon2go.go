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

package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lightgun-emu/guncon2go/environment"
	"github.com/lightgun-emu/guncon2go/hardware/guncon"
	"github.com/lightgun-emu/guncon2go/hardware/guncon/titledb"
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/hardware/ports/plugging"
	"github.com/lightgun-emu/guncon2go/hardware/usb"
	"github.com/lightgun-emu/guncon2go/input/evdev"
	"github.com/lightgun-emu/guncon2go/input/sdlpointer"
	"github.com/lightgun-emu/guncon2go/logger"
	"github.com/lightgun-emu/guncon2go/modalflag"
	"github.com/lightgun-emu/guncon2go/observer"
	"github.com/lightgun-emu/guncon2go/statsview"
	"github.com/lightgun-emu/guncon2go/userinput"
	"github.com/lightgun-emu/guncon2go/version"

	"github.com/veandco/go-sdl2/sdl"
)

// the interrupt endpoint of the real gun is polled every 8ms (bInterval
// field of the endpoint descriptor)
const transactionInterval = 8 * time.Millisecond

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		if err := run(md); err != nil {
			fmt.Printf("* %v\n", err)
			os.Exit(10)
		}
	case "VERSION":
		vers, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vers, rev)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	title := md.AddString("title", "", "serial of the running title (eg. SLUS-20219)")
	device := md.AddString("device", "", "path to an evdev absolute pointing device")
	split := md.AddBool("split", false, "force a wide display during split-view sequences")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			return fmt.Errorf("run: statsview not available. compile with statsview build tag")
		}
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("run: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		640, 480, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("run: %v", err)
	}
	defer window.Destroy()

	pointer := sdlpointer.NewPointer(window)

	env, err := environment.NewEnvironment(nil)
	if err != nil {
		return fmt.Errorf("run: %v", err)
	}

	prt := ports.NewPorts(env)
	defer prt.UnplugAll()

	var gun *guncon.GunCon2
	err = prt.Plug(plugging.Port0, func(e *environment.Environment, id plugging.PortID) ports.Peripheral {
		p := guncon.NewGunCon2(e, id)
		gun = p.(*guncon.GunCon2)
		return p
	})
	if err != nil {
		return fmt.Errorf("run: %v", err)
	}

	gun.AttachSource(pointer)
	gun.AttachDisplay(pointer)

	gunPrefs := env.Prefs.Guns[plugging.Port0.Index()]

	// command line flags take precedence over the saved preferences
	devicePath := *device
	if devicePath == "" {
		devicePath = gunPrefs.DevicePath.Get().(string)
	}

	if devicePath != "" {
		dev, err := evdev.Open(devicePath, pointer, func(ev ports.Event, d ports.EventData) {
			_, err := prt.HandleEvent(plugging.Port0, ev, d)
			if err != nil {
				logger.Logf(logger.Allow, "run", "%v", err)
			}
		})
		if err != nil {
			return fmt.Errorf("run: %v", err)
		}
		gun.AttachDevice(dev)
	}

	if *title != "" {
		obs := observer.NewObserver(titledb.Standard(),
			staticTitle(*title), staticMemory{}, &windowDisplay{window: window})
		obs.SetSplitHack(*split || gunPrefs.SplitScreenHack.Get().(bool),
			gunPrefs.SplitScreenFullStretch.Get().(bool))
		obs.Start()
		gun.AttachObserver(obs)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	handle := userinput.Controllers{}

	tick := time.NewTicker(transactionInterval)
	defer tick.Stop()

	var last [usb.ReportSize]byte

	for {
		select {
		case <-intChan:
			fmt.Println("")
			return nil
		case <-tick.C:
		}

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			quit, err := handle.HandleUserInput(translateSDL(ev), prt)
			if err != nil {
				logger.Logf(logger.Allow, "run", "%v", err)
			}
			if quit {
				fmt.Println("")
				return nil
			}
		}

		report, status := gun.HandleData(usb.TokenIn, usb.ReportEndpoint)
		if status != usb.StatusOK {
			continue
		}

		if report != last {
			last = report
			buttons := binary.LittleEndian.Uint16(report[0:])
			x := int16(binary.LittleEndian.Uint16(report[2:]))
			y := int16(binary.LittleEndian.Uint16(report[4:]))
			fmt.Printf("\rbuttons=%04x x=%4d y=%4d ", buttons, x, y)
		}
	}
}

// translateSDL converts an SDL event into the single Event type used by the
// userinput package.
func translateSDL(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.MouseButtonEvent:
		var button userinput.MouseButton
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = userinput.MouseButtonLeft
		case sdl.BUTTON_RIGHT:
			button = userinput.MouseButtonRight
		case sdl.BUTTON_MIDDLE:
			button = userinput.MouseButtonMiddle
		default:
			return nil
		}
		return userinput.EventMouseButton{
			Button: button,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		return userinput.EventKeyboard{
			Key:  sdl.GetKeyName(ev.Keysym.Sym),
			Down: ev.Type == sdl.KEYDOWN,
		}
	}

	return nil
}

// staticTitle is a TitleProvider for when the serial of the running title is
// already known (the -title flag). An embedding emulator would provide a
// real implementation that reads the serial from the emulated disc.
type staticTitle string

func (t staticTitle) CurrentTitle() string {
	return string(t)
}

func (t staticTitle) IsActive() bool {
	return true
}

// staticMemory is a Memory implementation for when there is no emulated
// machine to peek. The split-view flag byte reads as zero, meaning
// split-view is never detected.
type staticMemory struct{}

func (m staticMemory) Peek8(_ uint32) (uint8, error) {
	return 0, nil
}

// windowDisplay implements the observer.DisplayControl interface by resizing
// the demonstration window.
type windowDisplay struct {
	window *sdl.Window
	w, h   int32
}

func (d *windowDisplay) SetWideAspect(reduceStretch bool) {
	d.w, d.h = d.window.GetSize()
	h := int32(480)
	if reduceStretch {
		h = h * 2 / 3
	}
	d.window.SetSize(854, h)
}

func (d *windowDisplay) Restore() {
	if d.w == 0 || d.h == 0 {
		return
	}
	d.window.SetSize(d.w, d.h)
}
