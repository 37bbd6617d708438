package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrPickUpParcelCommandIsNotConstructed = errors.New(
	"PickUpParcelCommand must be created via NewPickUpParcelCommand constructor",
)

// PickUpParcelCommand hands a pending parcel over to its guest.
type PickUpParcelCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPickUpParcelCommand(parcelID kernel.UUID) (PickUpParcelCommand, error) {
	if err := requireID("id", parcelID); err != nil {
		return PickUpParcelCommand{}, err
	}
	return PickUpParcelCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c PickUpParcelCommand) Validate() error {
	return c.guard.Validate(ErrPickUpParcelCommandIsNotConstructed)
}

func (c PickUpParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
