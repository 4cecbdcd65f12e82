// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bmp180 controls a Bosch BMP085 or BMP180 barometric pressure and
// temperature sensor over I²C.
//
// Range: 300 - 1100 hPa, -40°C - 85°C
//
// Resolution: 0.01 hPa (1 Pa), 0.1°C
//
// The device returns uncompensated ADC codes. The driver reads the eleven
// factory calibration words once in Init and applies the integer algorithm
// from the datasheet on each read. Pressure compensation depends on a term
// computed from the temperature, so every pressure read starts with a
// temperature conversion.
//
// A Dev is not safe to share between processes driving the same bus, and the
// conversion waits must not be shortened: the device returns garbage without
// signaling it.
//
// # Datasheet
//
// The URLs tend to rot, visit https://www.bosch-sensortec.com if they become
// invalid.
//
// https://ae-bst.resource.bosch.com/media/_tech/media/datasheets/BST-BMP180-DS000-12.pdf
//
// A copy with readable text on page 15 can be found here:
//
// https://cdn-shop.adafruit.com/datasheets/BST-BMP180-DS000-09.pdf
package bmp180
