// Package channel provides typed, opaque handles to artifact collections.
// A Channel connects a producing component to any number of consumers.
// Component definitions pass channels through without dereferencing their
// contents; artifacts only appear in a channel once the execution engine
// runs the producing component.
package channel

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cadenza-ml/cadenza/pkg/artifact"
	"github.com/cadenza-ml/cadenza/pkg/errors"
)

// Channel is a typed reference to a collection of artifacts of one Type
type Channel struct {
	id           uuid.UUID
	artifactType artifact.Type
	producer     string
	artifacts    []*artifact.Artifact
}

// New creates an empty channel for artifacts of the given type
func New(t artifact.Type) *Channel {
	return &Channel{
		id:           uuid.New(),
		artifactType: t,
	}
}

// ID returns the channel's unique identifier
func (c *Channel) ID() uuid.UUID {
	return c.id
}

// ArtifactType returns the artifact type carried by this channel
func (c *Channel) ArtifactType() artifact.Type {
	return c.artifactType
}

// SetProducer records the ID of the component producing into this channel.
// The orchestration layer calls this during component registration; a
// channel has at most one producer.
func (c *Channel) SetProducer(componentID string) error {
	if c.producer != "" && c.producer != componentID {
		return errors.New(errors.ErrorTypeConflict,
			fmt.Sprintf("channel %s already produced by %s", c.id, c.producer))
	}
	c.producer = componentID
	return nil
}

// Producer returns the ID of the producing component, or empty if the
// channel is an external pipeline input
func (c *Channel) Producer() string {
	return c.producer
}

// Add appends an artifact to the channel. The artifact type must match
// the channel type.
func (c *Channel) Add(a *artifact.Artifact) error {
	if a == nil {
		return errors.New(errors.ErrorTypeValidation, "artifact cannot be nil")
	}
	if a.Type != c.artifactType {
		return errors.New(errors.ErrorTypeValidation,
			fmt.Sprintf("artifact type %s does not match channel type %s", a.Type, c.artifactType))
	}
	c.artifacts = append(c.artifacts, a)
	return nil
}

// Artifacts returns the artifacts currently held by the channel
func (c *Channel) Artifacts() []*artifact.Artifact {
	return c.artifacts
}
