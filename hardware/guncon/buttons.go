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

// bit positions of the buttons in the internal active-high mask. the wire
// report carries the low 16 bits complemented, so the pseudo-buttons at bit
// 16 and above never appear on the wire.
const (
	bitC         = 1
	bitB         = 2
	bitA         = 3
	bitDPadUp    = 4
	bitDPadRight = 5
	bitDPadDown  = 6
	bitDPadLeft  = 7
	bitTrigger   = 13
	bitSelect    = 14
	bitStart     = 15

	// interpreted by the gun, not reported
	bitShootOffscreen = 16
	bitRecalibrate    = 17
)

const (
	maskC              = uint32(1) << bitC
	maskB              = uint32(1) << bitB
	maskA              = uint32(1) << bitA
	maskDPadUp         = uint32(1) << bitDPadUp
	maskDPadRight      = uint32(1) << bitDPadRight
	maskDPadDown       = uint32(1) << bitDPadDown
	maskDPadLeft       = uint32(1) << bitDPadLeft
	maskTrigger        = uint32(1) << bitTrigger
	maskSelect         = uint32(1) << bitSelect
	maskStart          = uint32(1) << bitStart
	maskShootOffscreen = uint32(1) << bitShootOffscreen
	maskRecalibrate    = uint32(1) << bitRecalibrate
)

// flagProgressive is the param_mode bit indicating a progressive display
// mode. it is OR'd into the wire button mask and it halves the aim offset
// correction.
const flagProgressive = uint16(0x0100)
