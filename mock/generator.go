package mock

import (
	"context"

	"github.com/fwojciec/rentscout"
)

var _ rentscout.Generator = (*Generator)(nil)

// Generator is a mock implementation of rentscout.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req rentscout.GenerateRequest) (string, error)
	NameFn     func() string
}

func (g *Generator) Generate(ctx context.Context, req rentscout.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}

func (g *Generator) Name() string {
	if g.NameFn == nil {
		return "mock"
	}
	return g.NameFn()
}
