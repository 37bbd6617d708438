package queries

import (
	"context"

	"parceltracker/internal/core/ports"
)

// SearchGuestsQueryHandler runs guest searches against the store. Results are never cached.
type SearchGuestsQueryHandler struct {
	repo ports.GuestRepository
}

func NewSearchGuestsQueryHandler(repo ports.GuestRepository) SearchGuestsQueryHandler {
	return SearchGuestsQueryHandler{repo: repo}
}

func (h SearchGuestsQueryHandler) Handle(ctx context.Context, query SearchGuestsQuery) ([]GuestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repo.Find(ctx, query.Filter().Specification())
	if err != nil {
		return nil, err
	}

	return mapAll(items, NewGuestResponse), nil
}
