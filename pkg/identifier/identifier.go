// Package identifier produces unique string ids for profile sub-entities
// (skills, projects, education and experience entries).
package identifier

import "github.com/google/uuid"

// Generator yields an id that, with overwhelming probability, never repeats
// within a process lifetime. Implementations must be safe for concurrent use.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns the production Generator backed by random UUIDs.
func NewUUIDGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
