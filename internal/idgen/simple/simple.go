package simple

import (
	"context"
	"fmt"
)

// Generator issues sequential IDs with a fixed prefix. Deterministic, so tests
// can pin the IDs they expect.
type Generator struct {
	prefix  string
	counter int
}

func New(prefix string) *Generator {
	//nolint:exhaustruct
	return &Generator{prefix: prefix}
}

func (g *Generator) NewID(_ context.Context) (string, error) {
	g.counter++

	return fmt.Sprintf("%s-%d", g.prefix, g.counter), nil
}
