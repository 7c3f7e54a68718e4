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

package guncon

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/lightgun-emu/guncon2go/curated"
)

// sentinel error patterns for state save/restore.
const (
	// SaveStateError is returned when the state cannot be written.
	SaveStateError = "guncon2 state: %v"

	// RestoreStateError is returned for malformed persisted state. A
	// restore never partially applies; on error the gun is unchanged.
	RestoreStateError = "guncon2 state: not a valid save state (%v)"
)

// marker and version at the head of the persisted state.
var stateMarker = []byte("guncon2")

const stateVersion = uint8(1)

// stateBody is the fixed-size, little-endian persisted form of the gun's
// calibration runtime and geometry.
type stateBody struct {
	ParamX           int16
	ParamY           int16
	ParamMode        uint16
	CalibrationTimer uint16
	CalibrationX     int16
	CalibrationY     int16
	AutoConfigDone   uint8

	ScaleX       float32
	ScaleY       float32
	CenterX      uint32
	CenterY      uint32
	ScreenWidth  uint32
	ScreenHeight uint32
}

// SaveState writes the gun state that must survive save/restore: the aim
// offsets and mode, a calibration hold in progress, and the auto-detected
// geometry.
func (gun *GunCon2) SaveState(w io.Writer) error {
	if _, err := w.Write(stateMarker); err != nil {
		return curated.Errorf(SaveStateError, err)
	}
	if err := binary.Write(w, binary.LittleEndian, stateVersion); err != nil {
		return curated.Errorf(SaveStateError, err)
	}

	body := stateBody{
		ParamX:           gun.paramX,
		ParamY:           gun.paramY,
		ParamMode:        gun.paramMode,
		CalibrationTimer: gun.calibrationTimer,
		CalibrationX:     gun.calibrationX,
		CalibrationY:     gun.calibrationY,
		ScaleX:           gun.geometry.scaleX,
		ScaleY:           gun.geometry.scaleY,
		CenterX:          gun.geometry.centerX,
		CenterY:          gun.geometry.centerY,
		ScreenWidth:      gun.geometry.screenWidth,
		ScreenHeight:     gun.geometry.screenHeight,
	}
	if gun.geometry.autoConfigDone {
		body.AutoConfigDone = 1
	}

	if err := binary.Write(w, binary.LittleEndian, body); err != nil {
		return curated.Errorf(SaveStateError, err)
	}

	return nil
}

// RestoreState reads state previously written by SaveState. A wrong marker
// or version fails the restore as a whole. The saved geometry is applied
// only when it was auto-detected and the current session has no custom
// configuration; a calibration hold in progress always resumes.
func (gun *GunCon2) RestoreState(r io.Reader) error {
	marker := make([]byte, len(stateMarker))
	if _, err := io.ReadFull(r, marker); err != nil {
		return curated.Errorf(RestoreStateError, err)
	}
	if !bytes.Equal(marker, stateMarker) {
		return curated.Errorf(RestoreStateError, "wrong marker")
	}

	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return curated.Errorf(RestoreStateError, err)
	}
	if version != stateVersion {
		return curated.Errorf(RestoreStateError, "unknown version")
	}

	var body stateBody
	if err := binary.Read(r, binary.LittleEndian, &body); err != nil {
		return curated.Errorf(RestoreStateError, err)
	}

	gun.paramX = body.ParamX
	gun.paramY = body.ParamY
	gun.paramMode = body.ParamMode
	gun.calibrationTimer = body.CalibrationTimer
	gun.calibrationX = body.CalibrationX
	gun.calibrationY = body.CalibrationY
	gun.geometry.autoConfigDone = body.AutoConfigDone != 0

	// only automatic geometry is applied from a save
	if !gun.geometry.custom && body.AutoConfigDone != 0 {
		gun.geometry.scaleX = body.ScaleX
		gun.geometry.scaleY = body.ScaleY
		gun.geometry.centerX = body.CenterX
		gun.geometry.centerY = body.CenterY
		gun.geometry.screenWidth = body.ScreenWidth
		gun.geometry.screenHeight = body.ScreenHeight
	}

	return nil
}
