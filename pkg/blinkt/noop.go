// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package blinkt

import "k8s.io/klog/v2"

// NoopStrip stands in when no Blinkt! hardware is detected. Every
// operation succeeds and does nothing, so the poll loop runs unchanged
// on machines without the strip.
type NoopStrip struct{}

var _ Strip = NoopStrip{}

func (NoopStrip) Len() int                                   { return NumPixels }
func (NoopStrip) SetPixel(int, uint8, uint8, uint8, float64) {}
func (NoopStrip) SetAll(uint8, uint8, uint8, float64)        {}
func (NoopStrip) Clear()                                     {}
func (NoopStrip) Show() error                                { return nil }

// Detect opens the real strip if the hardware is present, otherwise
// logs a one-time notice and returns the no-op strip.
func Detect() Strip {
	strip, err := Open()
	if err != nil {
		klog.Infof("Blinkt! is not plugged in, indicator output disabled: %v", err)
		return NoopStrip{}
	}
	return strip
}
