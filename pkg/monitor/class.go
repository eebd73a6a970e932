// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"fmt"
	"strings"
)

// Class identifies the kind of engine resource being monitored. It is
// chosen once at startup and selects both the listing call and the
// classifier used during each poll cycle.
type Class string

const (
	Containers Class = "containers"
	Nodes      Class = "nodes"
	Services   Class = "services"
)

// Classes returns the valid resource classes, in a stable order.
func Classes() []Class {
	return []Class{Containers, Nodes, Services}
}

// ParseClass validates a user-supplied class name. Used by the CLI to
// reject a bad --monitor value before the poll loop starts.
func ParseClass(s string) (Class, error) {
	for _, class := range Classes() {
		if string(class) == s {
			return class, nil
		}
	}
	names := make([]string, 0, len(Classes()))
	for _, class := range Classes() {
		names = append(names, string(class))
	}
	return "", fmt.Errorf("unknown resource class %q, must be one of %s",
		s, strings.Join(names, ", "))
}
