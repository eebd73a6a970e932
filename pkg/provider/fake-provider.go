// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package provider

import "context"

// FakeProvider serves canned resource lists for tests. Any of the Err
// fields, when set, is returned by the matching listing call instead of
// the canned list.
type FakeProvider struct {
	ContainerList []Container
	NodeList      []Node
	ServiceList   []Service

	ContainersErr error
	NodesErr      error
	ServicesErr   error
}

var _ Provider = &FakeProvider{}

func (f *FakeProvider) Containers(_ context.Context) ([]Container, error) {
	if f.ContainersErr != nil {
		return nil, f.ContainersErr
	}
	return f.ContainerList, nil
}

func (f *FakeProvider) Nodes(_ context.Context) ([]Node, error) {
	if f.NodesErr != nil {
		return nil, f.NodesErr
	}
	return f.NodeList, nil
}

func (f *FakeProvider) Services(_ context.Context) ([]Service, error) {
	if f.ServicesErr != nil {
		return nil, f.ServicesErr
	}
	return f.ServiceList, nil
}
