// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPaletteCoversEveryState(t *testing.T) {
	palette := DefaultPalette()
	assert.NoError(t, palette.Validate())
	for _, state := range States() {
		_, found := palette[state]
		assert.True(t, found, "state %q has no palette entry", state)
	}
}

func TestValidateRejectsMissingEntry(t *testing.T) {
	palette := DefaultPalette()
	delete(palette, PausedStatus)
	err := palette.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "paused")
	}
}

func TestDefaultPaletteColors(t *testing.T) {
	palette := DefaultPalette()

	assert.Equal(t, Color{R: 0, G: 255, B: 0, Brightness: 0.2}, palette[RunningStatus])
	assert.Equal(t, Color{R: 255, G: 0, B: 0, Brightness: 0.8}, palette[ExitedStatus])
	assert.Equal(t, Color{R: 255, G: 136, B: 0, Brightness: 0.4}, palette[PausedStatus])
	assert.Equal(t, Color{R: 0, G: 0, B: 255, Brightness: 0.6}, palette[InitializingStatus])
}

func TestParseState(t *testing.T) {
	testCases := map[string]struct {
		value         string
		expectedState State
		expectMatch   bool
	}{
		"engine lifecycle string maps to the state of the same name": {
			value:         "running",
			expectedState: RunningStatus,
			expectMatch:   true,
		},
		"node membership string maps directly": {
			value:         "disconnected",
			expectedState: DisconnectedStatus,
			expectMatch:   true,
		},
		"unknown string has no mapping": {
			value:       "restarting",
			expectMatch: false,
		},
		"empty string has no mapping": {
			value:       "",
			expectMatch: false,
		},
		"case matters": {
			value:       "Running",
			expectMatch: false,
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			state, ok := ParseState(tc.value)
			assert.Equal(t, tc.expectMatch, ok)
			if tc.expectMatch {
				assert.Equal(t, tc.expectedState, state)
			}
		})
	}
}
