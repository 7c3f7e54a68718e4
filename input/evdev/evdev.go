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

//go:build linux

// Package evdev reads absolute-axis positions straight from a Linux input
// device (/dev/input/eventN). This is the raw device path for guns that
// present themselves to the host as absolute pointing devices.
//
// The device file is opened non-blocking and drained once per data
// transaction, last write wins for each axis. A device that cannot be
// opened degrades silently: the gun falls back to its pointer source.
package evdev

import (
	"encoding/binary"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/lightgun-emu/guncon2go/curated"
	"github.com/lightgun-emu/guncon2go/hardware/ports"
	"github.com/lightgun-emu/guncon2go/input"
)

// sentinel error patterns for the evdev package.
const (
	// DeviceUnavailable is returned by Open when the device file cannot be
	// opened or interrogated.
	DeviceUnavailable = "evdev: %v: %v"
)

// event type and code values from the input event interface.
const (
	evKey = 0x01
	evAbs = 0x03

	absX = 0x00
	absY = 0x01

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
)

// the ioctl request reading the axis range of one absolute axis. encodes a
// read of the 24-byte absInfo struct.
func eviocgabs(abs int) uint {
	return uint(0x80184540 + abs)
}

// absInfo mirrors the kernel's input_absinfo struct.
type absInfo struct {
	value      int32
	minimum    int32
	maximum    int32
	fuzz       int32
	flat       int32
	resolution int32
}

// the size in bytes of one kernel input_event record on a 64-bit platform.
const eventSize = 24

// EventHandler receives the button transitions read from the device.
type EventHandler func(ports.Event, ports.EventData)

// Device is a raw absolute-axis input device. It implements the
// input.Device interface.
type Device struct {
	fd      int
	display input.Display
	handler EventHandler

	minX, maxX int32
	minY, maxY int32

	crit sync.Mutex
	x, y float32

	// until the first right-button press the left button also drives the
	// recalibrate pseudo-button. this makes the calibration screens of the
	// supported titles workable without a dedicated binding
	calibrated bool
}

// Open the named input device. The handler argument can be nil, in which
// case button transitions are discarded.
func Open(path string, display input.Display, handler EventHandler) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, curated.Errorf(DeviceUnavailable, path, err)
	}

	dev := &Device{
		fd:      fd,
		display: display,
		handler: handler,
	}

	var abs absInfo
	if err := ioctlAbsInfo(fd, absX, &abs); err != nil {
		unix.Close(fd)
		return nil, curated.Errorf(DeviceUnavailable, path, err)
	}
	dev.minX = abs.minimum
	dev.maxX = abs.maximum

	if err := ioctlAbsInfo(fd, absY, &abs); err != nil {
		unix.Close(fd)
		return nil, curated.Errorf(DeviceUnavailable, path, err)
	}
	dev.minY = abs.minimum
	dev.maxY = abs.maximum

	if dev.maxX == dev.minX || dev.maxY == dev.minY {
		unix.Close(fd)
		return nil, curated.Errorf(DeviceUnavailable, path, "device reports no axis range")
	}

	return dev, nil
}

func ioctlAbsInfo(fd int, abs int, info *absInfo) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL,
		uintptr(fd), uintptr(eviocgabs(abs)), uintptr(unsafe.Pointer(info)))
	if errno != 0 {
		return errno
	}
	return nil
}

// Available implements the input.Device interface.
func (dev *Device) Available() bool {
	return dev != nil && dev.fd != -1
}

// Close implements the input.Device interface.
func (dev *Device) Close() error {
	if dev.fd == -1 {
		return nil
	}
	err := unix.Close(dev.fd)
	dev.fd = -1
	return err
}

// Drain implements the input.Device interface. All pending samples are
// consumed; the most recent value of each axis wins.
func (dev *Device) Drain() {
	if !dev.Available() {
		return
	}

	buf := make([]byte, 32*eventSize)
	for {
		n, err := unix.Read(dev.fd, buf)
		if err != nil || n < eventSize {
			return
		}
		for i := 0; i+eventSize <= n; i += eventSize {
			dev.handleEvent(buf[i : i+eventSize])
		}
	}
}

// handleEvent decodes one input_event record. The leading 16 bytes are the
// kernel timestamp, which the gun has no use for.
func (dev *Device) handleEvent(rec []byte) {
	typ := binary.LittleEndian.Uint16(rec[16:])
	code := binary.LittleEndian.Uint16(rec[18:])
	value := int32(binary.LittleEndian.Uint32(rec[20:]))

	switch typ {
	case evKey:
		// value 2 is key repeat and still counts as pressed
		pressed := value != 0
		switch code {
		case btnLeft:
			dev.emit(ports.Trigger, pressed)
			if !dev.calibrated {
				dev.emit(ports.Recalibrate, pressed)
			}
		case btnRight:
			dev.emit(ports.A, pressed)
			dev.calibrated = true
		case btnMiddle:
			dev.emit(ports.B, pressed)
		}

	case evAbs:
		w, h := dev.display.WindowSize()
		dev.crit.Lock()
		switch code {
		case absX:
			dev.x = float32(value-dev.minX) / float32(dev.maxX-dev.minX) * w
		case absY:
			dev.y = float32(value-dev.minY) / float32(dev.maxY-dev.minY) * h
		}
		dev.crit.Unlock()
	}
}

func (dev *Device) emit(ev ports.Event, data ports.EventData) {
	if dev.handler != nil {
		dev.handler(ev, data)
	}
}

// WindowPosition implements the input.Source interface.
func (dev *Device) WindowPosition() (float32, float32) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.x, dev.y
}
