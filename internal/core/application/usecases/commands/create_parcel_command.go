package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand records a parcel received at the desk for a guest.
type CreateParcelCommand struct {
	guestID     kernel.UUID
	description string

	guard guard.ConstructorGuard
}

func NewCreateParcelCommand(guestID kernel.UUID, description string) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setGuestID(guestID),
		cmd.setDescription(description),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) GuestID() kernel.UUID {
	return c.guestID
}

func (c CreateParcelCommand) Description() string {
	return c.description
}

func (c *CreateParcelCommand) setGuestID(id kernel.UUID) error {
	if err := requireID("guestId", id); err != nil {
		return err
	}
	c.guestID = id
	return nil
}

func (c *CreateParcelCommand) setDescription(description string) error {
	trimmed, err := requireText("description", description)
	if err != nil {
		return err
	}
	c.description = trimmed
	return nil
}
