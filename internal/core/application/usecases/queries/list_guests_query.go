package queries

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrListGuestsQueryIsNotConstructed = errors.New(
	"ListGuestsQuery must be created via NewListGuestsQuery constructor",
)

// ListGuestsQuery asks for one page of guests ordered by check-in time.
type ListGuestsQuery struct {
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewListGuestsQuery validates page >= 0 and 1 <= size <= 100.
func NewListGuestsQuery(page, size int) (ListGuestsQuery, error) {
	request, err := kernel.NewPageRequest(page, size)
	if err != nil {
		return ListGuestsQuery{}, err
	}
	return ListGuestsQuery{page: request, guard: guard.NewConstructorGuard()}, nil
}

func (q ListGuestsQuery) Validate() error {
	return q.guard.Validate(ErrListGuestsQueryIsNotConstructed)
}

func (q ListGuestsQuery) Page() kernel.PageRequest {
	return q.page
}
