package queries

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"
)

var ErrGetGuestQueryIsNotConstructed = errors.New(
	"GetGuestQuery must be created via NewGetGuestQuery constructor",
)

type GetGuestQuery struct {
	guestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetGuestQuery(guestID kernel.UUID) (GetGuestQuery, error) {
	if guestID.Validate() != nil {
		return GetGuestQuery{}, errs.NewValueIsRequiredError("id")
	}
	return GetGuestQuery{guestID: guestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetGuestQuery) Validate() error {
	return q.guard.Validate(ErrGetGuestQueryIsNotConstructed)
}

func (q GetGuestQuery) GuestID() kernel.UUID {
	return q.guestID
}
