// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import (
	"fmt"
	"math"
)

// The functions below follow the integer algorithm on page 15 of the
// datasheet. Every intermediate keeps the width used there: int32 for most
// terms, uint32 for b4 and b7, int64 only for the b7*2 branch. Do not
// "simplify" the shifts into divisions, they round differently for negative
// values.

// CompensateTemperature converts the raw temperature code ut to °C. It also
// returns b5, which CompensatePressure needs.
//
// With a zeroed calibration the divisor x1+MD can be 0; x2 is then taken as
// 0 and the result is meaningless.
func CompensateTemperature(c *Calibration, ut int32) (float32, int32) {
	x1 := ((ut - int32(c.AC6)) * int32(c.AC5)) >> 15
	var x2 int32
	if div := x1 + int32(c.MD); div != 0 {
		x2 = (int32(c.MC) << 11) / div
	}
	b5 := x1 + x2
	return float32((b5+8)>>4) / 10, b5
}

// CompensatePressure converts the raw pressure code up to Pa, given the b5
// term from CompensateTemperature and the oversampling setting used for the
// conversion.
//
// It returns an error wrapping ErrInvalidCalibration when the coefficients
// drive the arithmetic out of range.
func CompensatePressure(c *Calibration, oss Oversampling, b5, up int32) (int32, error) {
	b6 := b5 - 4000
	x1 := (int32(c.B2) * ((b6 * b6) >> 12)) >> 11
	x2 := (int32(c.AC2) * b6) >> 11
	x3 := x1 + x2
	b3 := (((int32(c.AC1)*4 + x3) << oss) + 2) / 4

	x1 = (int32(c.AC3) * b6) >> 13
	x2 = (int32(c.B1) * ((b6 * b6) >> 12)) >> 16
	x3 = (x1 + x2 + 2) >> 2
	b4 := (uint32(c.AC4) * (uint32(x3) + 0x8000)) >> 15
	if b4 == 0 {
		return 0, fmt.Errorf("%w: zero b4 divisor", ErrInvalidCalibration)
	}

	if uint32(up) < uint32(b3) {
		return 0, fmt.Errorf("%w: b3 underflow", ErrInvalidCalibration)
	}
	b7 := (uint32(up) - uint32(b3)) * (50000 >> oss)

	var p int32
	if b7 < 0x80000000 {
		p = int32(int64(b7) * 2 / int64(b4))
	} else {
		p = int32((b7 / b4) * 2)
	}

	sq := int64(p>>8) * int64(p>>8)
	if sq > math.MaxInt32 {
		return 0, fmt.Errorf("%w: squared term overflow", ErrInvalidCalibration)
	}
	x1 = int32(sq)
	x1 = (x1 * 3038) >> 16
	x2 = (-7357 * p) >> 16
	return p + ((x1 + x2 + 3791) >> 4), nil
}

// Altitude returns the altitude in meters for pressure, both pressures in Pa,
// using the international barometric formula.
//
// A non-positive pressure gives a non-finite or meaningless result, it is not
// reported as an error.
func Altitude(pressure, seaLevel int32) float32 {
	ratio := float32(pressure) / float32(seaLevel)
	return 44330 * (1 - float32(math.Pow(float64(ratio), 1/5.255)))
}
