package random

import (
	"context"

	"github.com/google/uuid"
)

const idLength = 8

// Generator issues short random IDs derived from UUIDs.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) NewID(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String()[:idLength], nil
}
