package builder

import (
	"errors"
	"strconv"
)

// ErrNilBuilder is returned by Build on a nil builder.
var ErrNilBuilder = errors.New("builder: nil builder")

// MissingFieldError is returned by Build when a required field is empty.
type MissingFieldError struct{ Field string }

// Error implements the error interface.
func (e MissingFieldError) Error() string {
	// Example: builder: required field "name" is empty
	return "builder: required field " + strconv.Quote(e.Field) + " is empty"
}

// KubernetesCluster is the product.
type KubernetesCluster struct {
	Name        string
	Version     string
	AutoUpgrade bool
	// NodePool is nil when no pool was requested.
	NodePool *string
}

// ClusterBuilder assembles a KubernetesCluster step by step.
type ClusterBuilder struct {
	name        string
	version     string
	autoUpgrade bool
	nodePool    *string
}

// NewClusterBuilder starts a builder with the required fields.
func NewClusterBuilder(name, version string) *ClusterBuilder {
	return &ClusterBuilder{name: name, version: version}
}

// AutoUpgrade sets the auto-upgrade flag (default false).
func (b *ClusterBuilder) AutoUpgrade(v bool) *ClusterBuilder {
	b.autoUpgrade = v
	return b
}

// NodePool attaches a node pool.
func (b *ClusterBuilder) NodePool(pool string) *ClusterBuilder {
	b.nodePool = &pool
	return b
}

// Build validates required fields and returns a new cluster.
//
// Each call returns a fresh value, so one builder can stamp out several clusters.
func (b *ClusterBuilder) Build() (*KubernetesCluster, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if b.name == "" {
		return nil, MissingFieldError{Field: "name"}
	}
	if b.version == "" {
		return nil, MissingFieldError{Field: "version"}
	}

	c := &KubernetesCluster{Name: b.name, Version: b.version, AutoUpgrade: b.autoUpgrade}
	if b.nodePool != nil {
		pool := *b.nodePool
		c.NodePool = &pool
	}
	return c, nil
}

// MustBuild is Build that panics on invalid input.
func (b *ClusterBuilder) MustBuild() *KubernetesCluster {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
