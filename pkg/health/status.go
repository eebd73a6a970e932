// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package health

// State is the health classification assigned to a single monitored
// resource. The set of states is closed: every state a classifier can
// produce has an entry in the palette, and an engine status string that
// doesn't map to a member of this set is a classification error rather
// than a silent default.
type State string

const (
	InitializingStatus State = "initializing"
	UpdatingStatus     State = "updating"
	CompletedStatus    State = "completed"
	RunningStatus      State = "running"
	ReadyStatus        State = "ready"
	DisconnectedStatus State = "disconnected"
	PausedStatus       State = "paused"
	WarningStatus      State = "warning"
	DownStatus         State = "down"
	ExitedStatus       State = "exited"
	StoppedStatus      State = "stopped"
)

var allStates = []State{
	InitializingStatus,
	UpdatingStatus,
	CompletedStatus,
	RunningStatus,
	ReadyStatus,
	DisconnectedStatus,
	PausedStatus,
	WarningStatus,
	DownStatus,
	ExitedStatus,
	StoppedStatus,
}

// States returns every member of the closed state set, in a stable order.
func States() []State {
	states := make([]State, len(allStates))
	copy(states, allStates)
	return states
}

// ParseState maps an engine-reported status string onto a member of the
// state set. The second return value is false if the string has no
// matching member.
func ParseState(s string) (State, bool) {
	for _, state := range allStates {
		if string(state) == s {
			return state, true
		}
	}
	return "", false
}

func (s State) String() string {
	return string(s)
}

// Record captures the classified health for one resource: the label
// identifying the resource and the state assigned by its classifier.
// Records are transient, produced and consumed within one poll cycle.
type Record struct {
	Label string
	State State
}
