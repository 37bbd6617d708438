package queries

import (
	"errors"

	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/guard"
)

var ErrSearchParcelsQueryIsNotConstructed = errors.New(
	"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
)

// SearchParcelsQuery filters parcels by owner and status.
type SearchParcelsQuery struct {
	filter parcel.Filter

	guard guard.ConstructorGuard
}

func NewSearchParcelsQuery(filter parcel.Filter) SearchParcelsQuery {
	return SearchParcelsQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

func (q SearchParcelsQuery) Filter() parcel.Filter {
	return q.filter
}
