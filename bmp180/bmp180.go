// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Opts holds the configuration of a Dev.
type Opts struct {
	// Addr is the I²C address. 0 means DefaultAddress.
	Addr uint16
	// Oversampling applies to pressure conversions.
	Oversampling Oversampling
	// SeaLevelPressure in Pa is the reference for ReadAltitude. 0 means
	// DefaultSeaLevelPressure.
	SeaLevelPressure int32
	// ByteWise reads every register with its own single byte transaction
	// instead of one transaction per register pair or triple. Some bus
	// bridges don't auto-increment the register pointer.
	ByteWise bool
}

// DefaultOpts is the configuration used when nil is passed to New.
var DefaultOpts = Opts{
	Addr:             DefaultAddress,
	Oversampling:     LowPower,
	SeaLevelPressure: DefaultSeaLevelPressure,
}

// Dev is a handle to a BMP085 or BMP180.
//
// The calibration starts zeroed. Reads done before Init succeeds compute
// against it and return meaningless values, they are not rejected.
type Dev struct {
	d        *i2c.Dev
	delay    Delayer
	byteWise bool

	mu       sync.Mutex
	cal      Calibration
	oss      Oversampling
	seaLevel int32
}

// New returns a Dev on bus b. It does not talk to the device; call
// TestConnection and Init before reading.
//
// A nil delay uses Sleep. A nil opts uses DefaultOpts.
func New(b i2c.Bus, delay Delayer, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if !opts.Oversampling.Valid() {
		return nil, fmt.Errorf("bmp180: invalid oversampling %d", opts.Oversampling)
	}
	if opts.SeaLevelPressure < 0 {
		return nil, fmt.Errorf("bmp180: invalid sea level pressure %d", opts.SeaLevelPressure)
	}
	if delay == nil {
		delay = Sleep
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddress
	}
	seaLevel := opts.SeaLevelPressure
	if seaLevel == 0 {
		seaLevel = DefaultSeaLevelPressure
	}
	return &Dev{
		d:        &i2c.Dev{Bus: b, Addr: addr},
		delay:    delay,
		byteWise: opts.ByteWise,
		oss:      opts.Oversampling,
		seaLevel: seaLevel,
	}, nil
}

// NewI2C returns a Dev that was verified and calibrated.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	d, err := New(b, Sleep, opts)
	if err != nil {
		return nil, err
	}
	if err := d.TestConnection(); err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("bmp180{%s}", d.d)
}

// TestConnection reads the identification register and verifies it.
func (d *Dev) TestConnection() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var id [1]byte
	if err := d.d.Tx([]byte{regID}, id[:]); err != nil {
		return &BusError{Op: "read id", Err: err}
	}
	if id[0] != ChipID {
		return fmt.Errorf("%w: got %#02x", ErrInvalidDeviceID, id[0])
	}
	return nil
}

// Init reads the calibration coefficients. On failure the previous
// calibration is kept.
func (d *Dev) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, err := d.readCalibration()
	if err != nil {
		return err
	}
	d.cal = c
	return nil
}

// Calibration returns a copy of the coefficients in use.
func (d *Dev) Calibration() Calibration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cal
}

// ReadTemperature returns the temperature in °C.
func (d *Dev) ReadTemperature() (float32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ut, err := d.rawTemperature()
	if err != nil {
		return 0, err
	}
	t, _ := CompensateTemperature(&d.cal, ut)
	return t, nil
}

// ReadPressure returns the pressure in Pa. It needs a temperature conversion
// first, so it takes 5ms plus the oversampling conversion time.
func (d *Dev) ReadPressure() (int32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, p, err := d.sense()
	return p, err
}

// ReadAltitude returns the altitude in meters relative to the configured sea
// level pressure.
func (d *Dev) ReadAltitude() (float32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, p, err := d.sense()
	if err != nil {
		return 0, err
	}
	return Altitude(p, d.seaLevel), nil
}

// SoftReset triggers the same sequence as a power on reset. The calibration
// EEPROM is not affected so Init doesn't need to run again.
func (d *Dev) SoftReset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeReg(regSoftRst, cmdSoftReset); err != nil {
		return &BusError{Op: "soft reset", Err: err}
	}
	return nil
}

// Oversampling returns the current pressure oversampling setting.
func (d *Dev) Oversampling() Oversampling {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.oss
}

// SetOversampling changes the setting used by subsequent pressure reads.
func (d *Dev) SetOversampling(o Oversampling) error {
	if !o.Valid() {
		return fmt.Errorf("bmp180: invalid oversampling %d", o)
	}
	d.mu.Lock()
	d.oss = o
	d.mu.Unlock()
	return nil
}

// SeaLevelPressure returns the altitude reference in Pa.
func (d *Dev) SeaLevelPressure() int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seaLevel
}

// SetSeaLevelPressure changes the altitude reference. Local weather can move
// it by a few kPa; use the QNH of a nearby airport for a better estimate.
func (d *Dev) SetSeaLevelPressure(pa int32) error {
	if pa <= 0 {
		return fmt.Errorf("bmp180: invalid sea level pressure %d", pa)
	}
	d.mu.Lock()
	d.seaLevel = pa
	d.mu.Unlock()
	return nil
}

// Sense implements physic.SenseEnv. Humidity is not measured.
func (d *Dev) Sense(e *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, p, err := d.sense()
	if err != nil {
		return err
	}
	e.Temperature = physic.ZeroCelsius + physic.Temperature(math.Round(float64(t)*10))*100*physic.MilliKelvin
	e.Pressure = physic.Pressure(p) * physic.Pascal
	return nil
}

// SenseContinuous implements physic.SenseEnv. The device has no free running
// mode, poll Sense instead.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	return nil, errors.New("bmp180: SenseContinuous is not supported")
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = 100 * physic.MilliKelvin
	e.Pressure = physic.Pascal
}

// Halt implements conn.Resource. Nothing runs in the background.
func (d *Dev) Halt() error {
	return nil
}

// sense runs one temperature then one pressure conversion.
//
// It must be called with d.mu lock held.
func (d *Dev) sense() (float32, int32, error) {
	ut, err := d.rawTemperature()
	if err != nil {
		return 0, 0, err
	}
	t, b5 := CompensateTemperature(&d.cal, ut)
	up, err := d.rawPressure(d.oss)
	if err != nil {
		return 0, 0, err
	}
	p, err := CompensatePressure(&d.cal, d.oss, b5, up)
	if err != nil {
		return 0, 0, err
	}
	return t, p, nil
}

// rawTemperature starts a temperature conversion and returns the 16 bit
// result.
func (d *Dev) rawTemperature() (int32, error) {
	if err := d.writeReg(regCtrlMeas, cmdTemperature); err != nil {
		return 0, &BusError{Op: "start temperature conversion", Err: err}
	}
	d.delay.Delay(temperatureWait)
	var b [2]byte
	if err := d.readReg(regOutMSB, b[:]); err != nil {
		return 0, &BusError{Op: "read temperature", Err: err}
	}
	return int32(b[0])<<8 | int32(b[1]), nil
}

// rawPressure starts a pressure conversion and returns the result, up to 19
// bits depending on oss.
func (d *Dev) rawPressure(oss Oversampling) (int32, error) {
	if err := d.writeReg(regCtrlMeas, oss.command()); err != nil {
		return 0, &BusError{Op: "start pressure conversion", Err: err}
	}
	d.delay.Delay(oss.ConversionTime())
	// MSB, LSB, XLSB right aligned in a big endian word.
	var b [4]byte
	if err := d.readReg(regOutMSB, b[1:]); err != nil {
		return 0, &BusError{Op: "read pressure", Err: err}
	}
	return int32(binary.BigEndian.Uint32(b[:])) >> oss.shift(), nil
}

func (d *Dev) readReg(reg byte, b []byte) error {
	if !d.byteWise {
		return d.d.Tx([]byte{reg}, b)
	}
	for i := range b {
		if err := d.d.Tx([]byte{reg + byte(i)}, b[i:i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) writeReg(reg, v byte) error {
	return d.d.Tx([]byte{reg, v}, nil)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
