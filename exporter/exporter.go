// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package exporter publishes BMP180 readings as Prometheus metrics.
//
// Each scrape runs one synchronous temperature and pressure exchange with the
// device; nothing is cached or polled in the background.
package exporter

import (
	"sync"

	"github.com/GermanBionicSystems/barometer/bmp180"
	"github.com/prometheus/client_golang/prometheus"
	"periph.io/x/conn/v3/physic"
)

// Sensor is the part of *bmp180.Dev used by Collector.
type Sensor interface {
	Sense(e *physic.Env) error
	SeaLevelPressure() int32
}

// Collector implements prometheus.Collector.
type Collector struct {
	mu sync.Mutex
	s  Sensor

	up          *prometheus.Desc
	temperature *prometheus.Desc
	pressure    *prometheus.Desc
	altitude    *prometheus.Desc
	seaLevel    *prometheus.Desc
	errors      prometheus.Counter
}

// New returns a Collector reading s. constLabels are attached to every
// metric, typically the bus name and address.
func New(s Sensor, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("bmp180", "", name), help, nil, constLabels)
	}
	return &Collector{
		s:           s,
		up:          desc("up", "Whether the last read from the sensor succeeded."),
		temperature: desc("temperature_celsius", "Compensated temperature."),
		pressure:    desc("pressure_pascals", "Compensated absolute pressure."),
		altitude:    desc("altitude_meters", "Altitude derived from the pressure and the sea level reference."),
		seaLevel:    desc("sea_level_pressure_pascals", "Sea level reference used for the altitude."),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bmp180",
			Name:        "read_errors_total",
			Help:        "Number of failed reads.",
			ConstLabels: constLabels,
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.temperature
	ch <- c.pressure
	ch <- c.altitude
	ch <- c.seaLevel
	c.errors.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var e physic.Env
	seaLevel := c.s.SeaLevelPressure()
	if err := c.s.Sense(&e); err != nil {
		c.errors.Inc()
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0)
		ch <- c.errors
		return
	}
	pa := int32(e.Pressure / physic.Pascal)
	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(c.temperature, prometheus.GaugeValue, float64(e.Temperature-physic.ZeroCelsius)/float64(physic.Kelvin))
	ch <- prometheus.MustNewConstMetric(c.pressure, prometheus.GaugeValue, float64(pa))
	ch <- prometheus.MustNewConstMetric(c.altitude, prometheus.GaugeValue, float64(bmp180.Altitude(pa, seaLevel)))
	ch <- prometheus.MustNewConstMetric(c.seaLevel, prometheus.GaugeValue, float64(seaLevel))
	ch <- c.errors
}

var _ prometheus.Collector = &Collector{}
