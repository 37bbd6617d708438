package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrCheckOutGuestCommandIsNotConstructed = errors.New(
	"CheckOutGuestCommand must be created via NewCheckOutGuestCommand constructor",
)

// CheckOutGuestCommand ends a stay.
//
// Example:
//
//	cmd, _ := NewCheckOutGuestCommand(guestID)
//	g, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrUnclaimedParcels):
//	    // hand the parcels over first
//	case errors.Is(err, guest.ErrAlreadyCheckedOut):
//	    // nothing to do
//	}
type CheckOutGuestCommand struct {
	guestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckOutGuestCommand(guestID kernel.UUID) (CheckOutGuestCommand, error) {
	if err := requireID("id", guestID); err != nil {
		return CheckOutGuestCommand{}, err
	}
	return CheckOutGuestCommand{guestID: guestID, guard: guard.NewConstructorGuard()}, nil
}

func (c CheckOutGuestCommand) Validate() error {
	return c.guard.Validate(ErrCheckOutGuestCommandIsNotConstructed)
}

func (c CheckOutGuestCommand) GuestID() kernel.UUID {
	return c.guestID
}
