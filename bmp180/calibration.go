// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import "encoding/binary"

// Calibration holds the eleven factory coefficients stored in the device
// EEPROM at 0xAA~0xBF. Each is a big endian 16 bit word.
type Calibration struct {
	AC1, AC2, AC3 int16
	AC4, AC5, AC6 uint16
	B1, B2        int16
	MB, MC, MD    int16
}

// decodeCalibration parses the 22 byte register image starting at AC1 MSB.
func decodeCalibration(b []byte) Calibration {
	_ = b[calibrationSize-1]
	w := func(i int) uint16 { return binary.BigEndian.Uint16(b[2*i:]) }
	return Calibration{
		AC1: int16(w(0)),
		AC2: int16(w(1)),
		AC3: int16(w(2)),
		AC4: w(3),
		AC5: w(4),
		AC6: w(5),
		B1:  int16(w(6)),
		B2:  int16(w(7)),
		MB:  int16(w(8)),
		MC:  int16(w(9)),
		MD:  int16(w(10)),
	}
}

// readCalibration reads all 11 register pairs in address order. Nothing is
// returned unless every transaction succeeded.
func (d *Dev) readCalibration() (Calibration, error) {
	var raw [calibrationSize]byte
	for i := 0; i < calibrationSize; i += 2 {
		if err := d.readReg(regCalStart+byte(i), raw[i:i+2]); err != nil {
			return Calibration{}, &BusError{Op: "read calibration", Err: err}
		}
	}
	return decodeCalibration(raw[:]), nil
}
