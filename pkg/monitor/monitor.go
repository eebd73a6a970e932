// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/swarmlight/swarmlight/pkg/health"
	"github.com/swarmlight/swarmlight/pkg/provider"
)

// Result is the output of one poll cycle: one record per listed
// resource, in the order the engine returned them. Each cycle's result
// replaces the previous one; nothing accumulates across cycles.
type Result []health.Record

type pollFunc func(ctx context.Context) (Result, error)

// Monitor retrieves the current resource list for a class and
// classifies every item into a health record. Dispatch is a table from
// class to a (list, classify) pair, built once at construction; there
// are only three fixed classes, so no open registration is needed.
type Monitor struct {
	pollers map[Class]pollFunc
	latest  Result
}

// New builds a Monitor over the given provider.
func New(p provider.Provider) *Monitor {
	return &Monitor{
		pollers: map[Class]pollFunc{
			Containers: classPoller(Containers, p.Containers, classifyContainer),
			Nodes:      classPoller(Nodes, p.Nodes, classifyNode),
			Services:   classPoller(Services, p.Services, classifyService),
		},
	}
}

// Poll runs one retrieve-and-classify pass for the class.
//
// A provider failure is recoverable: the cycle yields an empty result
// so the strip goes dark instead of freezing on a stale frame, and the
// next cycle retries. The same policy applies to every class. A
// classification failure aborts the whole cycle and is returned to the
// caller; the next cycle retries fresh.
func (m *Monitor) Poll(ctx context.Context, class Class) (Result, error) {
	poll, ok := m.pollers[class]
	if !ok {
		return nil, fmt.Errorf("no poller registered for resource class %q", class)
	}
	result, err := poll(ctx)
	if err != nil {
		return nil, err
	}
	m.latest = result
	return result, nil
}

// Latest returns the result of the most recent successful poll. For
// inspection and logging only; the renderer consumes Poll's return
// value directly.
func (m *Monitor) Latest() Result {
	return m.latest
}

// classPoller binds a listing call and its classifier into a single
// poll function for one resource class.
func classPoller[T any](class Class, list func(context.Context) ([]T, error),
	classify func(T) (health.Record, error)) pollFunc {
	return func(ctx context.Context) (Result, error) {
		items, err := list(ctx)
		if err != nil {
			klog.Warningf("listing %s failed, showing empty strip until next cycle: %v", class, err)
			return Result{}, nil
		}
		result := make(Result, 0, len(items))
		for _, item := range items {
			record, err := classify(item)
			if err != nil {
				return nil, err
			}
			result = append(result, record)
		}
		return result, nil
	}
}
