package uuidgen

import "github.com/google/uuid"

// Generator produces document IDs.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewUUID returns a new random UUID string.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}
