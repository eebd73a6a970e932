// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"

	"github.com/swarmlight/swarmlight/pkg/blinkt"
	"github.com/swarmlight/swarmlight/pkg/health"
	"github.com/swarmlight/swarmlight/pkg/monitor"
)

// Renderer maps an ordered monitor result onto the positions of an
// indicator strip. Record i lands on position i mod strip length, so a
// result longer than the strip wraps and later records overwrite
// earlier positions. Rendering the same result twice leaves the strip
// in the same state.
type Renderer struct {
	strip   blinkt.Strip
	palette health.Palette
}

// New validates the palette closure up front: a health state without a
// palette entry is a configuration error and must fail before the poll
// loop starts, not fall back at render time.
func New(strip blinkt.Strip, palette health.Palette) (*Renderer, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{strip: strip, palette: palette}, nil
}

// Render clears the strip and lights one position per record. An empty
// result leaves the strip dark rather than holding the previous frame.
func (r *Renderer) Render(result monitor.Result) error {
	r.strip.Clear()
	for i, record := range result {
		color, ok := r.palette[record.State]
		if !ok {
			return fmt.Errorf("no palette entry for state %q", record.State)
		}
		r.strip.SetPixel(i%r.strip.Len(), color.R, color.G, color.B, color.Brightness)
	}
	return r.strip.Show()
}

// ShowAll lights every position with the palette color of one state.
// Used for the initializing phase before the first poll.
func (r *Renderer) ShowAll(state health.State) error {
	color, ok := r.palette[state]
	if !ok {
		return fmt.Errorf("no palette entry for state %q", state)
	}
	r.strip.SetAll(color.R, color.G, color.B, color.Brightness)
	return r.strip.Show()
}

// Off darkens the whole strip. Used on shutdown.
func (r *Renderer) Off() error {
	r.strip.Clear()
	return r.strip.Show()
}
