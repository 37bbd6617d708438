package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrDeleteGuestCommandIsNotConstructed = errors.New(
	"DeleteGuestCommand must be created via NewDeleteGuestCommand constructor",
)

// DeleteGuestCommand removes a guest that owns no parcels.
type DeleteGuestCommand struct {
	guestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteGuestCommand(guestID kernel.UUID) (DeleteGuestCommand, error) {
	if err := requireID("id", guestID); err != nil {
		return DeleteGuestCommand{}, err
	}
	return DeleteGuestCommand{guestID: guestID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteGuestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteGuestCommandIsNotConstructed)
}

func (c DeleteGuestCommand) GuestID() kernel.UUID {
	return c.guestID
}
