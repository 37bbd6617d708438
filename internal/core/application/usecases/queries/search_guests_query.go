package queries

import (
	"errors"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/pkg/guard"
)

var ErrSearchGuestsQueryIsNotConstructed = errors.New(
	"SearchGuestsQuery must be created via NewSearchGuestsQuery constructor",
)

// SearchGuestsQuery filters guests by name fragment and status.
type SearchGuestsQuery struct {
	filter guest.Filter

	guard guard.ConstructorGuard
}

// NewSearchGuestsQuery accepts any filter; an empty one matches every guest.
func NewSearchGuestsQuery(filter guest.Filter) SearchGuestsQuery {
	return SearchGuestsQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q SearchGuestsQuery) Validate() error {
	return q.guard.Validate(ErrSearchGuestsQueryIsNotConstructed)
}

func (q SearchGuestsQuery) Filter() guest.Filter {
	return q.filter
}
