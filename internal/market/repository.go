package market

import (
	"context"
	"errors"
	"sync"
)

// ErrAlreadyLoaded is returned by Repository.Load after the first call.
var ErrAlreadyLoaded = errors.New("asset list already requested")

// Fetcher is the remote source of the asset list.
type Fetcher interface {
	FetchAssets(ctx context.Context) ([]Asset, error)
}

// Repository performs the one retrieval a view is allowed per lifetime.
type Repository struct {
	fetcher Fetcher

	mu        sync.Mutex
	requested bool
}

func NewRepository(f Fetcher) *Repository {
	return &Repository{fetcher: f}
}

// Load fetches the asset list once. On failure the returned Collection is
// empty and the error says why; callers decide whether to surface it.
func (r *Repository) Load(ctx context.Context) (Collection, error) {
	r.mu.Lock()
	if r.requested {
		r.mu.Unlock()
		return Collection{}, ErrAlreadyLoaded
	}
	r.requested = true
	r.mu.Unlock()

	assets, err := r.fetcher.FetchAssets(ctx)
	if err != nil {
		return Collection{}, err
	}
	return NewCollection(assets), nil
}
