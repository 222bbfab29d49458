package analysis

import "github.com/google/uuid"

// IDGenerator supplies identifiers for generated report objects. Tests can
// substitute a deterministic sequence.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// NewUUIDGenerator returns the production generator backed by random UUIDs.
func NewUUIDGenerator() IDGenerator { return uuidGenerator{} }
