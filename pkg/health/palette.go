// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package health

import "fmt"

// Color is one palette entry: an RGB triple plus a brightness factor in
// the range 0.0 to 1.0.
type Color struct {
	R, G, B    uint8
	Brightness float64
}

// Palette maps every health state to the color it is displayed with.
// A palette is built once at startup and never mutated; callers pass it
// explicitly rather than reaching for ambient state.
type Palette map[State]Color

// Validate checks the closure invariant: every member of the state set
// must have a palette entry. A missing entry is a configuration error
// and should stop the process before the poll loop starts.
func (p Palette) Validate() error {
	for _, state := range States() {
		if _, ok := p[state]; !ok {
			return fmt.Errorf("palette has no entry for state %q", state)
		}
	}
	return nil
}

// DefaultPalette returns the standard color mapping: blue while starting
// up or updating, dim green for healthy states, orange for degraded ones,
// red for states that need attention.
func DefaultPalette() Palette {
	return Palette{
		InitializingStatus: {R: 0, G: 0, B: 255, Brightness: 0.6},
		UpdatingStatus:     {R: 0, G: 0, B: 255, Brightness: 0.6},
		CompletedStatus:    {R: 0, G: 255, B: 0, Brightness: 0.2},
		RunningStatus:      {R: 0, G: 255, B: 0, Brightness: 0.2},
		ReadyStatus:        {R: 0, G: 255, B: 0, Brightness: 0.2},
		DisconnectedStatus: {R: 255, G: 0, B: 0, Brightness: 0.8},
		PausedStatus:       {R: 255, G: 136, B: 0, Brightness: 0.4},
		WarningStatus:      {R: 255, G: 136, B: 0, Brightness: 0.4},
		DownStatus:         {R: 255, G: 0, B: 0, Brightness: 0.8},
		ExitedStatus:       {R: 255, G: 0, B: 0, Brightness: 0.8},
		StoppedStatus:      {R: 255, G: 0, B: 0, Brightness: 0.8},
	}
}
