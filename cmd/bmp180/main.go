// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// bmp180 reads a BMP085 or BMP180 barometer and prints temperature, pressure
// and altitude.
//
// Optionally the reading is also shown as a terminal gauge, drawn on an
// SSD1306 OLED sharing the bus, saved as a PNG or exported as Prometheus
// metrics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/barometer/bmp180"
	"github.com/GermanBionicSystems/barometer/d2r2bus"
	"github.com/GermanBionicSystems/barometer/exporter"
	"github.com/GermanBionicSystems/barometer/gauge"
	"github.com/GermanBionicSystems/barometer/panel"
	"github.com/d2r2/go-logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

var lg = logger.NewPackageLogger("bmp180", logger.InfoLevel)

func openBus(transport, name string, addr uint16, d2r2Bus int) (i2c.BusCloser, error) {
	switch transport {
	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, err
		}
		return i2creg.Open(name)
	case "d2r2":
		if addr > 0x7f {
			return nil, fmt.Errorf("invalid 7 bit address %#x", addr)
		}
		return d2r2bus.Open(uint8(addr), d2r2Bus)
	default:
		return nil, fmt.Errorf("unknown transport %q", transport)
	}
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use, periph transport only")
	addr := flag.Uint("addr", uint(bmp180.DefaultAddress), "I²C address of the device")
	oss := flag.Uint("oss", uint(bmp180.LowPower), "pressure oversampling, 0 to 3")
	seaLevel := flag.Int("sealevel", int(bmp180.DefaultSeaLevelPressure), "sea level pressure in Pa used for the altitude")
	transport := flag.String("transport", "periph", "bus implementation: periph or d2r2")
	d2r2Bus := flag.Int("d2r2-bus", 1, "/dev/i2c-N to open with the d2r2 transport")
	n := flag.Int("n", 1, "number of reads, 0 to read until interrupted")
	interval := flag.Duration("interval", time.Second, "delay between reads")
	byteWise := flag.Bool("bytewise", false, "read registers one byte at a time")
	showGauge := flag.Bool("gauge", false, "show the pressure as a terminal gauge")
	oled := flag.Bool("oled", false, "draw the reading on an SSD1306 at 0x3C on the same bus, periph transport only")
	pngPath := flag.String("png", "", "save the last reading as a 128x64 PNG")
	httpAddr := flag.String("http", "", "serve Prometheus metrics at this address, e.g. :9180")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *verbose {
		logger.ChangePackageLogLevel("bmp180", logger.DebugLevel)
	}
	logger.ChangePackageLogLevel("i2c", logger.InfoLevel)

	if *oled && *transport != "periph" {
		return errors.New("-oled requires -transport periph")
	}

	b, err := openBus(*transport, *busName, uint16(*addr), *d2r2Bus)
	if err != nil {
		return err
	}
	defer b.Close()
	lg.Debugf("opened %s", b)

	opts := bmp180.Opts{
		Addr:             uint16(*addr),
		Oversampling:     bmp180.Oversampling(*oss),
		SeaLevelPressure: int32(*seaLevel),
		ByteWise:         *byteWise,
	}
	dev, err := bmp180.New(b, bmp180.Sleep, &opts)
	if err != nil {
		return err
	}
	if err := dev.TestConnection(); err != nil {
		return err
	}
	if err := dev.Init(); err != nil {
		return err
	}
	lg.Debugf("%s calibration %+v", dev, dev.Calibration())

	var g *gauge.Gauge
	if *showGauge {
		if g, err = gauge.New(&gauge.Opts{Width: 40, Min: 950, Max: 1050, Label: "hPa"}); err != nil {
			return err
		}
		defer g.Halt()
	}

	var display *ssd1306.Dev
	if *oled {
		if display, err = ssd1306.NewI2C(b, &ssd1306.DefaultOpts); err != nil {
			return err
		}
		defer display.Halt()
	}

	if *httpAddr != "" {
		c := exporter.New(dev, prometheus.Labels{"bus": b.String(), "addr": fmt.Sprintf("%#x", opts.Addr)})
		reg := prometheus.NewRegistry()
		if err := reg.Register(c); err != nil {
			return err
		}
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*httpAddr, nil); err != nil {
				lg.Errorf("http: %v", err)
			}
		}()
		lg.Infof("serving metrics on %s/metrics", *httpAddr)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var last panel.Reading
	for i := 0; *n == 0 || i < *n; i++ {
		if i != 0 {
			select {
			case <-interrupt:
				return nil
			case <-time.After(*interval):
			}
		}
		r, err := read(dev)
		if err != nil {
			return err
		}
		last = r
		lg.Debugf("read %d: %+v", i, r)
		if g != nil {
			if err := g.Show(float64(r.Pressure) / 100); err != nil {
				return err
			}
		} else {
			fmt.Printf("%8.1f°C %10.2f hPa %8.1f m\n", r.Temperature, float64(r.Pressure)/100, r.Altitude)
		}
		if display != nil {
			if err := panel.Draw(display, r, nil); err != nil {
				return err
			}
		}
	}
	if *pngPath != "" {
		if err := panel.SavePNG(*pngPath, 128, 64, last, nil); err != nil {
			return err
		}
		lg.Infof("saved %s", *pngPath)
	}
	return nil
}

// read does a temperature exchange followed by a pressure exchange.
func read(dev *bmp180.Dev) (panel.Reading, error) {
	t, err := dev.ReadTemperature()
	if err != nil {
		return panel.Reading{}, err
	}
	p, err := dev.ReadPressure()
	if err != nil {
		return panel.Reading{}, err
	}
	return panel.Reading{
		Temperature: t,
		Pressure:    p,
		Altitude:    bmp180.Altitude(p, dev.SeaLevelPressure()),
	}, nil
}

func main() {
	defer logger.FinalizeLogger()
	if err := mainImpl(); err != nil {
		lg.Errorf("%v", err)
		logger.FinalizeLogger()
		os.Exit(1)
	}
}
