// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectsUnknownMonitorClass(t *testing.T) {
	cmd := newCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--monitor", "volumes"})

	err := cmd.Execute()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "unknown resource class")
	}
}

func TestRejectsNonPositiveDelay(t *testing.T) {
	cmd := newCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--delay", "0"})

	err := cmd.Execute()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "delay must be a positive number")
	}
}

func TestFlagDefaults(t *testing.T) {
	cmd := newCommand()

	monitorFlag := cmd.Flags().Lookup("monitor")
	if assert.NotNil(t, monitorFlag) {
		assert.Equal(t, "containers", monitorFlag.DefValue)
		assert.Equal(t, "m", monitorFlag.Shorthand)
	}

	delayFlag := cmd.Flags().Lookup("delay")
	if assert.NotNil(t, delayFlag) {
		assert.Equal(t, "10", delayFlag.DefValue)
		assert.Equal(t, "d", delayFlag.Shorthand)
	}
}
