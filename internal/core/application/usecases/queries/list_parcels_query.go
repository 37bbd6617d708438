package queries

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery asks for one page of parcels ordered by received time.
type ListParcelsQuery struct {
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

func NewListParcelsQuery(page, size int) (ListParcelsQuery, error) {
	request, err := kernel.NewPageRequest(page, size)
	if err != nil {
		return ListParcelsQuery{}, err
	}
	return ListParcelsQuery{page: request, guard: guard.NewConstructorGuard()}, nil
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

func (q ListParcelsQuery) Page() kernel.PageRequest {
	return q.page
}
