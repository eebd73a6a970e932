// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

// Package blinkt drives a Pimoroni Blinkt! strip of eight APA102-style
// LEDs. The Strip interface is the only thing the rest of the program
// sees; whether a real strip is attached is decided once at startup.
package blinkt

// NumPixels is the number of LEDs on a Blinkt! strip.
const NumPixels = 8

// Strip is a finite row of independently colorable pixels. Positions
// run from 0 to Len()-1. Mutations only touch an in-memory buffer;
// Show pushes the buffer to the hardware. Implementations must be
// safe to call when no hardware is attached (no-ops, never errors
// from absence).
type Strip interface {
	Len() int
	SetPixel(pos int, r, g, b uint8, brightness float64)
	SetAll(r, g, b uint8, brightness float64)
	Clear()
	Show() error
}
