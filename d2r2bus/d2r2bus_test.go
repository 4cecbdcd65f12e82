// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package d2r2bus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/GermanBionicSystems/barometer/bmp180"
	"github.com/google/go-cmp/cmp"
)

// fakeConn records writes and serves reads from a queue.
type fakeConn struct {
	addr   uint8
	writes [][]byte
	reads  [][]byte
	short  bool
	err    error
	closed bool
}

func (f *fakeConn) GetAddr() uint8 { return f.addr }

func (f *fakeConn) WriteBytes(buf []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.writes = append(f.writes, append([]byte(nil), buf...))
	return len(buf), nil
}

func (f *fakeConn) ReadBytes(buf []byte) (int, error) {
	if len(f.reads) == 0 {
		return 0, errors.New("nothing to read")
	}
	n := copy(buf, f.reads[0])
	f.reads = f.reads[1:]
	if f.short {
		n--
	}
	return n, nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestTx(t *testing.T) {
	c := &fakeConn{addr: 0x77, reads: [][]byte{{0x55}}}
	b := New(c, "fake")
	r := make([]byte, 1)
	if err := b.Tx(0x77, []byte{0xd0}, r); err != nil {
		t.Fatal(err)
	}
	if r[0] != 0x55 {
		t.Errorf("read %#x expected 0x55", r[0])
	}
	if err := b.Tx(0x77, []byte{0xf4, 0x2e}, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]byte{{0xd0}, {0xf4, 0x2e}}, c.writes); diff != "" {
		t.Errorf("writes mismatch (-want +got):\n%s", diff)
	}
	if err := b.Close(); err != nil || !c.closed {
		t.Errorf("Close()=%v closed=%t", err, c.closed)
	}
}

func TestTxErrors(t *testing.T) {
	b := New(&fakeConn{addr: 0x77}, "fake")
	if err := b.Tx(0x76, []byte{0xd0}, nil); err == nil {
		t.Error("expected error for a different address")
	}

	errIO := errors.New("remote I/O error")
	b = New(&fakeConn{addr: 0x77, err: errIO}, "fake")
	if err := b.Tx(0x77, []byte{0xd0}, nil); !errors.Is(err, errIO) {
		t.Errorf("Tx()=%v expected wrapped %v", err, errIO)
	}

	b = New(&fakeConn{addr: 0x77, reads: [][]byte{{0x6c, 0xfa}}, short: true}, "fake")
	if err := b.Tx(0x77, []byte{0xf6}, make([]byte, 2)); err == nil {
		t.Error("expected error for a short read")
	}

	if err := b.SetSpeed(0); err == nil {
		t.Error("expected SetSpeed to be unsupported")
	}
	if b.String() != "fake" {
		t.Errorf("String()=%q", b.String())
	}
}

func TestBMP180(t *testing.T) {
	c := &fakeConn{addr: uint8(bmp180.DefaultAddress), reads: [][]byte{{bmp180.ChipID}}}
	dev, err := bmp180.New(New(c, "fake"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.TestConnection(); err != nil {
		t.Fatal(err)
	}
	if len(c.writes) != 1 || !bytes.Equal(c.writes[0], []byte{0xd0}) {
		t.Errorf("writes=%#v", c.writes)
	}
}
