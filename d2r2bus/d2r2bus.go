// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package d2r2bus exposes a github.com/d2r2/go-i2c handle as a periph
// i2c.Bus, so periph device drivers can run on hosts where that library is
// already in use.
//
// A d2r2 handle is bound to a single device address; Tx to any other address
// fails. A write then read is issued as two separate transfers.
package d2r2bus

import (
	"errors"
	"fmt"
	"sync"

	d2i2c "github.com/d2r2/go-i2c"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Conn is the part of *i2c.I2C from github.com/d2r2/go-i2c used by Bus.
type Conn interface {
	GetAddr() uint8
	WriteBytes(buf []byte) (int, error)
	ReadBytes(buf []byte) (int, error)
	Close() error
}

// Bus implements i2c.BusCloser on top of a Conn.
type Bus struct {
	mu   sync.Mutex
	c    Conn
	name string
}

// Open opens /dev/i2c-<bus> for the device at addr.
func Open(addr uint8, bus int) (*Bus, error) {
	c, err := d2i2c.NewI2C(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("d2r2bus: %w", err)
	}
	return &Bus{c: c, name: fmt.Sprintf("d2r2-i2c-%d", bus)}, nil
}

// New wraps an already opened Conn.
func New(c Conn, name string) *Bus {
	return &Bus{c: c, name: name}
}

func (b *Bus) String() string {
	return b.name
}

// Tx implements i2c.Bus.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if bound := uint16(b.c.GetAddr()); addr != bound {
		return fmt.Errorf("d2r2bus: handle is bound to %#x, not %#x", bound, addr)
	}
	if len(w) != 0 {
		n, err := b.c.WriteBytes(w)
		if err != nil {
			return fmt.Errorf("d2r2bus: write: %w", err)
		}
		if n != len(w) {
			return fmt.Errorf("d2r2bus: short write %d/%d", n, len(w))
		}
	}
	if len(r) != 0 {
		n, err := b.c.ReadBytes(r)
		if err != nil {
			return fmt.Errorf("d2r2bus: read: %w", err)
		}
		if n != len(r) {
			return fmt.Errorf("d2r2bus: short read %d/%d", n, len(r))
		}
	}
	return nil
}

// SetSpeed implements i2c.Bus. The kernel driver owns the clock.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return errors.New("d2r2bus: SetSpeed is not supported")
}

// Close implements i2c.BusCloser.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c.Close()
}

var _ i2c.BusCloser = &Bus{}
