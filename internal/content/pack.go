package content

import (
	"context"

	"github.com/abhisek/flashlingo/internal/store"
)

// PackFetcher reads content from a SQLite content pack.
type PackFetcher struct {
	sets store.SetRepo
	name string
}

// NewPackFetcher returns a fetcher over an open pack.
func NewPackFetcher(sets store.SetRepo, name string) *PackFetcher {
	return &PackFetcher{sets: sets, name: name}
}

// Fetch returns the stored file at path.
func (p *PackFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	return p.sets.Get(ctx, path)
}

func (p *PackFetcher) String() string { return "pack:" + p.name }
