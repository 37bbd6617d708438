package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand edits a parcel description. Owner, status and received
// time cannot be changed this way.
type UpdateParcelCommand struct {
	parcelID    kernel.UUID
	description string

	guard guard.ConstructorGuard
}

func NewUpdateParcelCommand(parcelID kernel.UUID, description string) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDescription(description),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return cmd, nil
}

func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c UpdateParcelCommand) Description() string {
	return c.description
}

func (c *UpdateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *UpdateParcelCommand) setDescription(description string) error {
	trimmed, err := requireText("description", description)
	if err != nil {
		return err
	}
	c.description = trimmed
	return nil
}
