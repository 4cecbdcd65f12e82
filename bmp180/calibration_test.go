// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

// Register image 0xAA~0xBF for datasheetCal.
var datasheetImage = []byte{
	0x01, 0x98, // AC1
	0xff, 0xb8, // AC2
	0xc7, 0xd1, // AC3
	0x7f, 0xe5, // AC4
	0x7f, 0xf5, // AC5
	0x5a, 0x71, // AC6
	0x18, 0x2e, // B1
	0x00, 0x04, // B2
	0x80, 0x00, // MB
	0xdd, 0xf9, // MC
	0x0b, 0x34, // MD
}

// calibrationOps returns the transactions Init issues for image.
func calibrationOps(image []byte, byteWise bool) []i2ctest.IO {
	var ops []i2ctest.IO
	if byteWise {
		for i, b := range image {
			ops = append(ops, i2ctest.IO{Addr: DefaultAddress, W: []byte{regCalStart + byte(i)}, R: []byte{b}})
		}
		return ops
	}
	for i := 0; i < len(image); i += 2 {
		ops = append(ops, i2ctest.IO{Addr: DefaultAddress, W: []byte{regCalStart + byte(i)}, R: image[i : i+2]})
	}
	return ops
}

func TestDecodeCalibration(t *testing.T) {
	c := decodeCalibration(datasheetImage)
	if diff := cmp.Diff(datasheetCal, c); diff != "" {
		t.Errorf("decodeCalibration() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCalibrationSignedness(t *testing.T) {
	image := make([]byte, calibrationSize)
	for i := range image {
		image[i] = 0xff
	}
	c := decodeCalibration(image)
	want := Calibration{
		AC1: -1, AC2: -1, AC3: -1,
		AC4: 0xffff, AC5: 0xffff, AC6: 0xffff,
		B1: -1, B2: -1,
		MB: -1, MC: -1, MD: -1,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("decodeCalibration() mismatch (-want +got):\n%s", diff)
	}
}

// Fetching a pair as one 2 byte read or as two 1 byte reads must decode the
// same coefficients.
func TestReadCalibrationTransactionShape(t *testing.T) {
	for _, byteWise := range []bool{false, true} {
		pb := &i2ctest.Playback{Ops: calibrationOps(datasheetImage, byteWise), DontPanic: true}
		dev, err := New(pb, DelayerFunc(func(time.Duration) {}), &Opts{ByteWise: byteWise})
		if err != nil {
			t.Fatal(err)
		}
		if err := dev.Init(); err != nil {
			t.Errorf("byteWise=%t: %v", byteWise, err)
			continue
		}
		if diff := cmp.Diff(datasheetCal, dev.Calibration()); diff != "" {
			t.Errorf("byteWise=%t: mismatch (-want +got):\n%s", byteWise, diff)
		}
		if err := pb.Close(); err != nil {
			t.Error(err)
		}
	}
}
