// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package fake

import (
	"sync"

	"github.com/swarmlight/swarmlight/pkg/blinkt"
)

// Pixel is the recorded color of one fake strip position.
type Pixel struct {
	R, G, B    uint8
	Brightness float64
}

// Strip records pixel writes in memory so tests can assert on the final
// frame. Safe for concurrent use, since loop tests inspect the strip
// while the runner goroutine is writing to it.
type Strip struct {
	mu     sync.Mutex
	pixels []Pixel
	shows  int
}

var _ blinkt.Strip = &Strip{}

// NewStrip returns a fake strip with the given number of positions, all
// off.
func NewStrip(length int) *Strip {
	return &Strip{pixels: make([]Pixel, length)}
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

func (s *Strip) SetPixel(pos int, r, g, b uint8, brightness float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pixels[pos%len(s.pixels)] = Pixel{R: r, G: g, B: b, Brightness: brightness}
}

func (s *Strip) SetAll(r, g, b uint8, brightness float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pixels {
		s.pixels[i] = Pixel{R: r, G: g, B: b, Brightness: brightness}
	}
}

func (s *Strip) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pixels {
		s.pixels[i] = Pixel{}
	}
}

func (s *Strip) Show() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows++
	return nil
}

// PixelAt returns the recorded color at one position.
func (s *Strip) PixelAt(pos int) Pixel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pixels[pos]
}

// Snapshot returns a copy of the whole frame.
func (s *Strip) Snapshot() []Pixel {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := make([]Pixel, len(s.pixels))
	copy(frame, s.pixels)
	return frame
}

// ShowCount reports how many times the buffer was pushed.
func (s *Strip) ShowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows
}

// Off reports whether every position is dark.
func (s *Strip) Off() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pixels {
		if p != (Pixel{}) {
			return false
		}
	}
	return true
}
