// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package blinkt

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Blinkt! wires its APA102 LEDs to plain GPIO lines rather than the SPI
// pins, so the driver bit-bangs the protocol: a 32-bit zero start
// frame, one 4-byte frame per LED (3-bit header, 5-bit global
// brightness, then blue, green, red), and 36 trailing zero bits to
// latch all eight LEDs.
const (
	dataPin  = "GPIO23"
	clockPin = "GPIO24"
)

type pixel struct {
	r, g, b    uint8
	brightness float64
}

// GPIOStrip drives the physical strip. Not safe for concurrent use;
// the poll loop is the only writer.
type GPIOStrip struct {
	dat    gpio.PinIO
	clk    gpio.PinIO
	pixels [NumPixels]pixel
}

var _ Strip = &GPIOStrip{}

// Open initializes the host GPIO subsystem and claims the two Blinkt!
// lines. An error means no usable hardware; callers should fall back
// to the no-op strip.
func Open() (*GPIOStrip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}
	dat := gpioreg.ByName(dataPin)
	clk := gpioreg.ByName(clockPin)
	if dat == nil || clk == nil {
		return nil, fmt.Errorf("gpio pins %s/%s not present", dataPin, clockPin)
	}
	if err := dat.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("claiming %s: %w", dataPin, err)
	}
	if err := clk.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("claiming %s: %w", clockPin, err)
	}
	return &GPIOStrip{dat: dat, clk: clk}, nil
}

func (s *GPIOStrip) Len() int {
	return NumPixels
}

func (s *GPIOStrip) SetPixel(pos int, r, g, b uint8, brightness float64) {
	s.pixels[pos%NumPixels] = pixel{r: r, g: g, b: b, brightness: brightness}
}

func (s *GPIOStrip) SetAll(r, g, b uint8, brightness float64) {
	for i := range s.pixels {
		s.pixels[i] = pixel{r: r, g: g, b: b, brightness: brightness}
	}
}

func (s *GPIOStrip) Clear() {
	for i := range s.pixels {
		s.pixels[i] = pixel{}
	}
}

func (s *GPIOStrip) Show() error {
	// Start frame.
	for i := 0; i < 4; i++ {
		if err := s.writeByte(0); err != nil {
			return err
		}
	}
	for _, p := range s.pixels {
		if err := s.writeByte(0xe0 | brightnessBits(p.brightness)); err != nil {
			return err
		}
		for _, c := range []uint8{p.b, p.g, p.r} {
			if err := s.writeByte(c); err != nil {
				return err
			}
		}
	}
	// Latch: 36 zero bits.
	for i := 0; i < 4; i++ {
		if err := s.writeByte(0); err != nil {
			return err
		}
	}
	return s.writeBits(0, 4)
}

func (s *GPIOStrip) writeByte(b uint8) error {
	return s.writeBits(b, 8)
}

func (s *GPIOStrip) writeBits(b uint8, n int) error {
	for i := 0; i < n; i++ {
		level := gpio.Low
		if b&0x80 != 0 {
			level = gpio.High
		}
		if err := s.dat.Out(level); err != nil {
			return err
		}
		if err := s.clk.Out(gpio.High); err != nil {
			return err
		}
		if err := s.clk.Out(gpio.Low); err != nil {
			return err
		}
		b <<= 1
	}
	return nil
}

// brightnessBits scales a 0.0-1.0 factor onto the 5-bit global
// brightness field of an APA102 LED frame.
func brightnessBits(brightness float64) uint8 {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	return uint8(31*brightness) & 0x1f
}
