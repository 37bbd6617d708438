package queries

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/ports"
)

type GetParcelQueryHandler struct {
	repo  ports.ParcelRepository
	cache *caching.Coordinator
}

func NewGetParcelQueryHandler(repo ports.ParcelRepository, cache *caching.Coordinator) GetParcelQueryHandler {
	return GetParcelQueryHandler{repo: repo, cache: cache}
}

func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	key := caching.IDKey(caching.Parcels, query.ParcelID())
	return caching.ReadThrough(ctx, h.cache, key, func(ctx context.Context) (ParcelResponse, error) {
		p, err := h.repo.Get(ctx, query.ParcelID())
		if err != nil {
			return ParcelResponse{}, err
		}
		return NewParcelResponse(p), nil
	})
}
