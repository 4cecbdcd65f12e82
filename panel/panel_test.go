// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/display"
)

var reading = Reading{Temperature: 15, Pressure: 69964, Altitude: 3012.4}

// fakeDrawer keeps the last image it was given.
type fakeDrawer struct {
	bounds image.Rectangle
	img    image.Image
	err    error
}

func (f *fakeDrawer) String() string          { return "fake" }
func (f *fakeDrawer) Halt() error             { return nil }
func (f *fakeDrawer) ColorModel() color.Model { return color.GrayModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return f.bounds }
func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	f.img = src
	return f.err
}

var _ display.Drawer = &fakeDrawer{}

func lit(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0x8000 {
				n++
			}
		}
	}
	return n
}

func TestLines(t *testing.T) {
	want := []string{"15.0°C", "699.64 hPa", "3012 m"}
	if diff := cmp.Diff(want, reading.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	img, err := Render(128, 64, reading, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("bounds=%v", b)
	}
	if n := lit(img); n == 0 {
		t.Error("nothing was drawn")
	}
	if _, err := Render(0, 64, reading, nil); err == nil {
		t.Error("expected error for an empty image")
	}
}

func TestDraw(t *testing.T) {
	d := &fakeDrawer{bounds: image.Rect(0, 0, 250, 122)}
	if err := Draw(d, reading, &Opts{FontSize: 24, Margin: 4}); err != nil {
		t.Fatal(err)
	}
	if d.img == nil || d.img.Bounds() != d.bounds {
		t.Errorf("unexpected image %v", d.img)
	}

	d.err = errors.New("spi: busy")
	if err := Draw(d, reading, nil); !errors.Is(err, d.err) {
		t.Errorf("Draw()=%v expected wrapped %v", err, d.err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reading.png")
	if err := SavePNG(path, 128, 64, reading, nil); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("stat=%v err=%v", fi, err)
	}
}
