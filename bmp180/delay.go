// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import "time"

// Delayer blocks the caller for at least d.
type Delayer interface {
	Delay(d time.Duration)
}

// DelayerFunc adapts a function to Delayer.
type DelayerFunc func(d time.Duration)

// Delay implements Delayer.
func (f DelayerFunc) Delay(d time.Duration) {
	f(d)
}

// Sleep is the default Delayer, backed by time.Sleep.
var Sleep Delayer = DelayerFunc(time.Sleep)
