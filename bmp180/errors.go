// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import "errors"

var (
	// ErrInvalidDeviceID is returned when the identification register does
	// not hold ChipID. The device is absent or is not a BMP085/BMP180.
	ErrInvalidDeviceID = errors.New("bmp180: invalid device id")

	// ErrInvalidCalibration is returned when the pressure compensation hits
	// an overflow or a zero divisor, meaning the calibration coefficients are
	// implausible.
	ErrInvalidCalibration = errors.New("bmp180: invalid calibration data")
)

// BusError is a failure reported by the underlying i2c.Bus. Err is the bus
// error as returned, it is never retried or reinterpreted.
type BusError struct {
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return "bmp180: " + e.Op + ": " + e.Err.Error()
}

func (e *BusError) Unwrap() error {
	return e.Err
}
