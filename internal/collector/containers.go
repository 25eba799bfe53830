package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

// DockerClient is the subset of the Docker API the probe needs, kept
// narrow so tests can fake it.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	Close() error
}

// Docker lists running containers from the local daemon. The probe is
// strictly optional: hosts without a reachable daemon report the reason
// instead of failing the snapshot.
type Docker struct {
	cli DockerClient
}

func NewDocker() *Docker { return &Docker{} }

// NewDockerWithClient wires a pre-built client, used by tests.
func NewDockerWithClient(cli DockerClient) *Docker { return &Docker{cli: cli} }

func (d *Docker) Containers(ctx context.Context) ([]snapshot.ContainerInfo, error) {
	if d.cli == nil {
		cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		if err != nil {
			return nil, fmt.Errorf("docker init: %w", err)
		}
		d.cli = cli
	}

	list, err := d.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		if client.IsErrConnectionFailed(err) {
			return nil, fmt.Errorf("docker daemon unreachable")
		}
		return nil, fmt.Errorf("docker list: %w", err)
	}

	infos := make([]snapshot.ContainerInfo, 0, len(list))
	for _, c := range list {
		name := c.ID
		if len(name) > 12 {
			name = name[:12]
		}
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		infos = append(infos, snapshot.ContainerInfo{
			Name:  name,
			Image: c.Image,
			State: c.State,
		})
	}

	return infos, nil
}
