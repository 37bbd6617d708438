package queries

import (
	"context"

	"parceltracker/internal/core/ports"
)

type SearchParcelsQueryHandler struct {
	repo ports.ParcelRepository
}

func NewSearchParcelsQueryHandler(repo ports.ParcelRepository) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{repo: repo}
}

func (h SearchParcelsQueryHandler) Handle(ctx context.Context, query SearchParcelsQuery) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repo.Find(ctx, query.Filter().Specification())
	if err != nil {
		return nil, err
	}

	return mapAll(items, NewParcelResponse), nil
}
