// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gauge draws a one line bar gauge on a terminal using ANSI 256
// color codes.
//
// The bar is redrawn in place on every Show, which makes it handy to watch a
// barometer drift while sitting next to it.
package gauge

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for a Gauge.
type Opts struct {
	// Width is the number of cells of the bar.
	Width int
	// Min and Max are the values mapped to an empty and a full bar.
	Min, Max float64
	// Label is printed after the bar, with the value formatted by %g.
	Label string
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Gauge is a horizontal bar on the console.
type Gauge struct {
	w       io.Writer
	width   int
	min     float64
	max     float64
	label   string
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Gauge.
func New(opts *Opts) (*Gauge, error) {
	if opts.Width <= 0 {
		return nil, errors.New("gauge: width must be positive")
	}
	if !(opts.Max > opts.Min) {
		return nil, fmt.Errorf("gauge: empty range [%g, %g]", opts.Min, opts.Max)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Gauge{
		w:       w,
		width:   opts.Width,
		min:     opts.Min,
		max:     opts.Max,
		label:   opts.Label,
		palette: *p,
	}, nil
}

func (g *Gauge) String() string {
	return fmt.Sprintf("Gauge{%g..%g}", g.min, g.max)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors and moves to the next line.
func (g *Gauge) Halt() error {
	_, err := g.w.Write([]byte("\n\033[0m"))
	return err
}

// Filled returns the number of cells lit for v, clamped to the bar.
func (g *Gauge) Filled(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	n := int(math.Round((v - g.min) / (g.max - g.min) * float64(g.width)))
	if n < 0 {
		return 0
	}
	if n > g.width {
		return g.width
	}
	return n
}

// Show redraws the bar for v.
func (g *Gauge) Show(v float64) error {
	n := g.Filled(v)
	g.buf.Reset()
	_, _ = g.buf.WriteString("\r\033[0m")
	for i := 0; i < g.width; i++ {
		c := color.NRGBA{A: 255}
		if i < n {
			c = cellColor(i, g.width)
		}
		_, _ = io.WriteString(&g.buf, g.palette.Block(c))
	}
	_, _ = g.buf.WriteString("\033[0m ")
	if g.label != "" {
		_, _ = fmt.Fprintf(&g.buf, "%g %s", v, g.label)
	} else {
		_, _ = fmt.Fprintf(&g.buf, "%g", v)
	}
	_, err := g.buf.WriteTo(g.w)
	return err
}

// cellColor goes from blue on the left to red on the right.
func cellColor(i, width int) color.NRGBA {
	f := 0.
	if width > 1 {
		f = float64(i) / float64(width-1)
	}
	return color.NRGBA{R: uint8(255 * f), G: 64, B: uint8(255 * (1 - f)), A: 255}
}
