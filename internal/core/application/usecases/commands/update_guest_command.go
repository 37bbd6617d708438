package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrUpdateGuestCommandIsNotConstructed = errors.New(
	"UpdateGuestCommand must be created via NewUpdateGuestCommand constructor",
)

// UpdateGuestCommand renames a guest. The name is the only editable field.
type UpdateGuestCommand struct {
	guestID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

func NewUpdateGuestCommand(guestID kernel.UUID, name string) (UpdateGuestCommand, error) {
	cmd := UpdateGuestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setGuestID(guestID),
		cmd.setName(name),
	); err != nil {
		return UpdateGuestCommand{}, err
	}

	return cmd, nil
}

func (c UpdateGuestCommand) Validate() error {
	return c.guard.Validate(ErrUpdateGuestCommandIsNotConstructed)
}

func (c UpdateGuestCommand) GuestID() kernel.UUID {
	return c.guestID
}

func (c UpdateGuestCommand) Name() string {
	return c.name
}

func (c *UpdateGuestCommand) setGuestID(id kernel.UUID) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	c.guestID = id
	return nil
}

func (c *UpdateGuestCommand) setName(name string) error {
	trimmed, err := requireText("name", name)
	if err != nil {
		return err
	}
	c.name = trimmed
	return nil
}
