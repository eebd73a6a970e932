// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/swarm"
	"github.com/docker/docker/client"
	"k8s.io/klog/v2"
)

// DockerProvider implements Provider against the Docker Engine API.
// Connection settings come from the standard DOCKER_HOST family of
// environment variables, with API version negotiation so the same
// binary works against older engines.
type DockerProvider struct {
	client client.APIClient
}

var _ Provider = &DockerProvider{}

// NewDockerProvider connects to the engine described by the
// environment. The connection is lazy; a bad DOCKER_HOST only surfaces
// on the first listing call.
func NewDockerProvider() (*DockerProvider, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &DockerProvider{client: cli}, nil
}

// NewDockerProviderWithClient wraps an existing engine client. Used by
// tests and by callers that need custom connection options.
func NewDockerProviderWithClient(cli client.APIClient) *DockerProvider {
	return &DockerProvider{client: cli}
}

func (p *DockerProvider) Containers(ctx context.Context) ([]Container, error) {
	list, err := p.client.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, err
	}
	containers := make([]Container, 0, len(list))
	for _, c := range list {
		containers = append(containers, Container{
			Name:  containerName(c),
			State: c.State,
		})
	}
	return containers, nil
}

func (p *DockerProvider) Nodes(ctx context.Context) ([]Node, error) {
	list, err := p.client.NodeList(ctx, types.NodeListOptions{})
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(list))
	for _, n := range list {
		nodes = append(nodes, Node{
			ID:    n.ID,
			State: string(n.Status.State),
		})
	}
	return nodes, nil
}

func (p *DockerProvider) Services(ctx context.Context) ([]Service, error) {
	list, err := p.client.ServiceList(ctx, types.ServiceListOptions{})
	if err != nil {
		return nil, err
	}
	services := make([]Service, 0, len(list))
	for _, svc := range list {
		tasks, err := p.client.TaskList(ctx, types.TaskListOptions{
			Filters: filters.NewArgs(filters.Arg("service", svc.ID)),
		})
		if err != nil {
			return nil, err
		}
		states := make([]string, 0, len(tasks))
		for _, task := range tasks {
			states = append(states, string(task.Status.State))
		}
		services = append(services, Service{
			Name:       svc.Spec.Name,
			Replicas:   declaredReplicas(svc),
			TaskStates: states,
		})
	}
	return services, nil
}

// containerName strips the leading slash the engine puts on the primary
// name. Containers always have at least one name, but don't rely on it.
func containerName(c types.Container) string {
	if len(c.Names) == 0 {
		klog.V(4).Infof("container %s has no name, using id", c.ID)
		return c.ID
	}
	return strings.TrimPrefix(c.Names[0], "/")
}

func declaredReplicas(svc swarm.Service) uint64 {
	if svc.Spec.Mode.Replicated == nil || svc.Spec.Mode.Replicated.Replicas == nil {
		return 0
	}
	return *svc.Spec.Mode.Replicated.Replicas
}
