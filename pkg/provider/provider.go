// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package provider

import "context"

// Container is the projection of an engine container read by the
// classifiers: the container name and the lifecycle status string the
// engine reports for it.
type Container struct {
	Name  string
	State string
}

// Node is the projection of a swarm node: its identifier and the
// cluster-membership state string.
type Node struct {
	ID    string
	State string
}

// Service is the projection of a replicated swarm service: the declared
// replica count and the state string of every task belonging to the
// service, in engine order.
type Service struct {
	Name       string
	Replicas   uint64
	TaskStates []string
}

// Provider is an interface which wraps the listing calls for each
// monitorable resource class. Implementations own connection and
// authentication concerns; callers only see the per-class projections
// above. The returned order is the engine's order and is preserved all
// the way to the indicator strip.
type Provider interface {
	Containers(ctx context.Context) ([]Container, error)
	Nodes(ctx context.Context) ([]Node, error)
	Services(ctx context.Context) ([]Service, error)
}
