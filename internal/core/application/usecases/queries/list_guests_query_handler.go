package queries

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/ports"
)

// ListGuestsQueryHandler serves FindAll pages through guests:page:<n>:<size>.
type ListGuestsQueryHandler struct {
	repo  ports.GuestRepository
	cache *caching.Coordinator
}

func NewListGuestsQueryHandler(repo ports.GuestRepository, cache *caching.Coordinator) ListGuestsQueryHandler {
	return ListGuestsQueryHandler{repo: repo, cache: cache}
}

func (h ListGuestsQueryHandler) Handle(ctx context.Context, query ListGuestsQuery) (PageResponse[GuestResponse], error) {
	if err := query.Validate(); err != nil {
		return PageResponse[GuestResponse]{}, err
	}

	page := query.Page()
	key := caching.PageKey(caching.Guests, page)
	return caching.ReadThrough(ctx, h.cache, key, func(ctx context.Context) (PageResponse[GuestResponse], error) {
		items, total, err := h.repo.List(ctx, page)
		if err != nil {
			return PageResponse[GuestResponse]{}, err
		}
		return newPageResponse(mapAll(items, NewGuestResponse), page, total), nil
	})
}
