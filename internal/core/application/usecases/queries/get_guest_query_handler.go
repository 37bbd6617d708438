package queries

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/ports"
)

// GetGuestQueryHandler reads one guest through the guests:id:<id> cache key.
type GetGuestQueryHandler struct {
	repo  ports.GuestRepository
	cache *caching.Coordinator
}

func NewGetGuestQueryHandler(repo ports.GuestRepository, cache *caching.Coordinator) GetGuestQueryHandler {
	return GetGuestQueryHandler{repo: repo, cache: cache}
}

// Handle returns errs.ObjectNotFoundError for an unknown id. Misses are not cached.
func (h GetGuestQueryHandler) Handle(ctx context.Context, query GetGuestQuery) (GuestResponse, error) {
	if err := query.Validate(); err != nil {
		return GuestResponse{}, err
	}

	key := caching.IDKey(caching.Guests, query.GuestID())
	return caching.ReadThrough(ctx, h.cache, key, func(ctx context.Context) (GuestResponse, error) {
		g, err := h.repo.Get(ctx, query.GuestID())
		if err != nil {
			return GuestResponse{}, err
		}
		return NewGuestResponse(g), nil
	})
}
