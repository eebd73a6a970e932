// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swarmlight/swarmlight/pkg/blinkt"
	"github.com/swarmlight/swarmlight/pkg/blinkt/fake"
	"github.com/swarmlight/swarmlight/pkg/health"
	"github.com/swarmlight/swarmlight/pkg/monitor"
)

func pixelFor(t *testing.T, state health.State) fake.Pixel {
	t.Helper()
	color, ok := health.DefaultPalette()[state]
	assert.True(t, ok)
	return fake.Pixel{R: color.R, G: color.G, B: color.B, Brightness: color.Brightness}
}

func newTestRenderer(t *testing.T, strip blinkt.Strip) *Renderer {
	t.Helper()
	r, err := New(strip, health.DefaultPalette())
	assert.NoError(t, err)
	return r
}

func TestRenderLightsOnePixelPerRecord(t *testing.T) {
	strip := fake.NewStrip(blinkt.NumPixels)
	r := newTestRenderer(t, strip)

	err := r.Render(monitor.Result{
		{Label: "web", State: health.RunningStatus},
		{Label: "job", State: health.ExitedStatus},
		{Label: "worker", State: health.PausedStatus},
	})
	assert.NoError(t, err)

	assert.Equal(t, pixelFor(t, health.RunningStatus), strip.PixelAt(0))
	assert.Equal(t, pixelFor(t, health.ExitedStatus), strip.PixelAt(1))
	assert.Equal(t, pixelFor(t, health.PausedStatus), strip.PixelAt(2))
	for pos := 3; pos < strip.Len(); pos++ {
		assert.Equal(t, fake.Pixel{}, strip.PixelAt(pos), "position %d should be off", pos)
	}
	assert.Equal(t, 1, strip.ShowCount())
}

func TestRenderWrapsAroundWithLastWriterWins(t *testing.T) {
	strip := fake.NewStrip(blinkt.NumPixels)
	r := newTestRenderer(t, strip)

	// Ten records on eight pixels: records 8 and 9 wrap onto positions
	// 0 and 1 and overwrite records 0 and 1.
	result := make(monitor.Result, 10)
	for i := range result {
		state := health.RunningStatus
		if i >= 8 {
			state = health.DownStatus
		}
		result[i] = health.Record{Label: "svc", State: state}
	}

	assert.NoError(t, r.Render(result))

	assert.Equal(t, pixelFor(t, health.DownStatus), strip.PixelAt(0))
	assert.Equal(t, pixelFor(t, health.DownStatus), strip.PixelAt(1))
	for pos := 2; pos < strip.Len(); pos++ {
		assert.Equal(t, pixelFor(t, health.RunningStatus), strip.PixelAt(pos))
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	strip := fake.NewStrip(blinkt.NumPixels)
	r := newTestRenderer(t, strip)

	result := monitor.Result{
		{Label: "web", State: health.RunningStatus},
		{Label: "db", State: health.WarningStatus},
	}
	assert.NoError(t, r.Render(result))
	first := strip.Snapshot()

	assert.NoError(t, r.Render(result))
	assert.Equal(t, first, strip.Snapshot())
}

func TestRenderEmptyResultClearsStrip(t *testing.T) {
	strip := fake.NewStrip(blinkt.NumPixels)
	r := newTestRenderer(t, strip)

	assert.NoError(t, r.Render(monitor.Result{
		{Label: "web", State: health.RunningStatus},
	}))
	assert.False(t, strip.Off())

	// An engine outage yields an empty result; the previous frame must
	// not survive it.
	assert.NoError(t, r.Render(monitor.Result{}))
	assert.True(t, strip.Off())
}

func TestShowAll(t *testing.T) {
	strip := fake.NewStrip(blinkt.NumPixels)
	r := newTestRenderer(t, strip)

	assert.NoError(t, r.ShowAll(health.InitializingStatus))
	for pos := 0; pos < strip.Len(); pos++ {
		assert.Equal(t, pixelFor(t, health.InitializingStatus), strip.PixelAt(pos))
	}
}

func TestOff(t *testing.T) {
	strip := fake.NewStrip(blinkt.NumPixels)
	r := newTestRenderer(t, strip)

	assert.NoError(t, r.ShowAll(health.InitializingStatus))
	assert.NoError(t, r.Off())
	assert.True(t, strip.Off())
}

func TestNewRejectsIncompletePalette(t *testing.T) {
	palette := health.DefaultPalette()
	delete(palette, health.WarningStatus)

	_, err := New(fake.NewStrip(blinkt.NumPixels), palette)
	assert.Error(t, err)
}
