// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package panel renders a barometer reading as an image, for small displays
// such as an SSD1306 OLED or an e-paper hat.
//
// Text is drawn white on black with the Go Regular font; monochrome drivers
// threshold it themselves.
package panel

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/display"
)

// Reading is one set of compensated values.
type Reading struct {
	Temperature float32 // °C
	Pressure    int32   // Pa
	Altitude    float32 // m
}

// Lines returns the text lines drawn for r.
func (r Reading) Lines() []string {
	return []string{
		fmt.Sprintf("%.1f°C", r.Temperature),
		fmt.Sprintf("%.2f hPa", float64(r.Pressure)/100),
		fmt.Sprintf("%.0f m", r.Altitude),
	}
}

// Opts controls rendering.
type Opts struct {
	// FontSize in points. 0 fits the three lines to the height.
	FontSize float64
	// Margin in pixels on the left and top.
	Margin float64
}

var (
	parseOnce sync.Once
	goFont    *truetype.Font
	parseErr  error
)

func fontFace(size float64) (font.Face, error) {
	parseOnce.Do(func() {
		goFont, parseErr = truetype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, fmt.Errorf("panel: %w", parseErr)
	}
	return truetype.NewFace(goFont, &truetype.Options{Size: size}), nil
}

// Render draws r on a w×h image.
func Render(w, h int, r Reading, opts *Opts) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("panel: invalid size %dx%d", w, h)
	}
	if opts == nil {
		opts = &Opts{}
	}
	lines := r.Lines()
	size := opts.FontSize
	if size <= 0 {
		size = (float64(h) - 2*opts.Margin) / float64(len(lines)) * 0.75
	}
	face, err := fontFace(size)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(face)
	lineHeight := dc.FontHeight() * 1.25
	for i, l := range lines {
		dc.DrawStringAnchored(l, opts.Margin, opts.Margin+lineHeight*float64(i), 0, 1)
	}
	return dc.Image(), nil
}

// Draw renders r to fit d and displays it.
func Draw(d display.Drawer, r Reading, opts *Opts) error {
	b := d.Bounds()
	img, err := Render(b.Dx(), b.Dy(), r, opts)
	if err != nil {
		return err
	}
	if err := d.Draw(b, img, image.Point{}); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	return nil
}

// SavePNG renders r to a w×h PNG file.
func SavePNG(path string, w, h int, r Reading, opts *Opts) error {
	img, err := Render(w, h, r, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	return nil
}
