// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import (
	"fmt"
	"time"
)

const (
	// DefaultAddress is the fixed I²C address of the BMP085/BMP180.
	DefaultAddress uint16 = 0x77

	// DefaultSeaLevelPressure is the standard atmosphere, in Pa.
	DefaultSeaLevelPressure int32 = 101_325

	// ChipID is the value of the identification register.
	ChipID byte = 0x55
)

// Register map.
const (
	regID       byte = 0xD0
	regCalStart byte = 0xAA // AC1 MSB, through 0xBF (MD LSB).
	regCtrlMeas byte = 0xF4
	regOutMSB   byte = 0xF6 // LSB at 0xF7, XLSB at 0xF8.
	regSoftRst  byte = 0xE0
)

const (
	cmdTemperature byte = 0x2E
	cmdPressure    byte = 0x34
	cmdSoftReset   byte = 0xB6

	calibrationSize = 22

	temperatureWait = 5 * time.Millisecond
)

// Oversampling is the number of internal samples the device averages for one
// pressure conversion. Higher settings lower the noise but take longer.
//
// It has no effect on temperature conversions.
type Oversampling uint8

const (
	// LowPower takes 1 sample, up to 4.5ms.
	LowPower Oversampling = iota
	// Standard takes 2 samples, up to 7.5ms.
	Standard
	// HighRes takes 4 samples, up to 13.5ms.
	HighRes
	// UltraHighRes takes 8 samples, up to 25.5ms.
	UltraHighRes
)

var oversamplingWait = [...]time.Duration{
	4500 * time.Microsecond,
	7500 * time.Microsecond,
	13000 * time.Microsecond,
	25500 * time.Microsecond,
}

// Valid reports whether o is one of the four supported settings.
func (o Oversampling) Valid() bool {
	return o <= UltraHighRes
}

// ConversionTime returns the minimum wait between starting a pressure
// conversion and reading its result.
func (o Oversampling) ConversionTime() time.Duration {
	if !o.Valid() {
		return oversamplingWait[UltraHighRes]
	}
	return oversamplingWait[o]
}

func (o Oversampling) String() string {
	switch o {
	case LowPower:
		return "LowPower"
	case Standard:
		return "Standard"
	case HighRes:
		return "HighRes"
	case UltraHighRes:
		return "UltraHighRes"
	default:
		return fmt.Sprintf("Oversampling(%d)", uint8(o))
	}
}

// command is the control byte that starts a pressure conversion.
func (o Oversampling) command() byte {
	return cmdPressure + byte(o)<<6
}

// shift is the right shift applied to the 24 bit output registers.
func (o Oversampling) shift() uint {
	return 8 - uint(o)
}
