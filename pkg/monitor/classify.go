// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"fmt"

	"github.com/swarmlight/swarmlight/pkg/health"
	"github.com/swarmlight/swarmlight/pkg/provider"
)

// The classifiers are pure functions from one listed resource to a
// health record. They never default an unrecognized status string: the
// palette is closed, so silently mapping a new engine state to some
// fallback color would hide it from the operator.

// UnknownStateError is returned when an engine status string has no
// matching member in the health state set.
type UnknownStateError struct {
	Class Class
	Label string
	Value string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("%s %q reports state %q which has no health mapping",
		e.Class, e.Label, e.Value)
}

func classifyContainer(c provider.Container) (health.Record, error) {
	state, ok := health.ParseState(c.State)
	if !ok {
		return health.Record{}, &UnknownStateError{Class: Containers, Label: c.Name, Value: c.State}
	}
	return health.Record{Label: c.Name, State: state}, nil
}

func classifyNode(n provider.Node) (health.Record, error) {
	state, ok := health.ParseState(n.State)
	if !ok {
		return health.Record{}, &UnknownStateError{Class: Nodes, Label: n.ID, Value: n.State}
	}
	return health.Record{Label: n.ID, State: state}, nil
}

// classifyService compares the number of tasks that are exactly in the
// "running" state against the declared replica count. Only exact
// equality is healthy; both under- and over-provisioned services warn.
func classifyService(s provider.Service) (health.Record, error) {
	running := 0
	for _, taskState := range s.TaskStates {
		if taskState == string(health.RunningStatus) {
			running++
		}
	}
	state := health.WarningStatus
	if uint64(running) == s.Replicas {
		state = health.RunningStatus
	}
	return health.Record{Label: s.Name, State: state}, nil
}
