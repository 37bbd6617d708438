package queries

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/ports"
)

type ListParcelsQueryHandler struct {
	repo  ports.ParcelRepository
	cache *caching.Coordinator
}

func NewListParcelsQueryHandler(repo ports.ParcelRepository, cache *caching.Coordinator) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{repo: repo, cache: cache}
}

func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) (PageResponse[ParcelResponse], error) {
	if err := query.Validate(); err != nil {
		return PageResponse[ParcelResponse]{}, err
	}

	page := query.Page()
	key := caching.PageKey(caching.Parcels, page)
	return caching.ReadThrough(ctx, h.cache, key, func(ctx context.Context) (PageResponse[ParcelResponse], error) {
		items, total, err := h.repo.List(ctx, page)
		if err != nil {
			return PageResponse[ParcelResponse]{}, err
		}
		return newPageResponse(mapAll(items, NewParcelResponse), page, total), nil
	})
}
