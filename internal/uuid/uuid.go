// Package uuid wraps ID generation behind an interface so tests can pin IDs.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator interface {
	New() string
}

// V4Generator implements Generator using random (version 4) UUIDs.
type V4Generator struct{}

// New returns a fresh UUID string.
func (g *V4Generator) New() string {
	return uuid.New().String()
}

// NewV4Generator creates a V4Generator.
func NewV4Generator() *V4Generator {
	return &V4Generator{}
}

// FixedGenerator returns the same ID on every call. Test helper.
type FixedGenerator struct {
	ID string
}

// New returns the fixed ID.
func (g *FixedGenerator) New() string {
	return g.ID
}
