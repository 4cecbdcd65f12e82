// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package barometer is a container for the BMP085/BMP180 driver and the
// outputs built around it.
//
// The driver itself lives in package bmp180 and works on any periph
// i2c.Bus. d2r2bus runs it over a d2r2/go-i2c handle instead. exporter,
// panel and gauge publish readings as Prometheus metrics, images and a
// terminal bar; cmd/bmp180 ties them together.
package barometer
