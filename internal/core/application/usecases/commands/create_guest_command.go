package commands

import (
	"errors"

	"parceltracker/internal/pkg/guard"
)

var ErrCreateGuestCommandIsNotConstructed = errors.New(
	"CreateGuestCommand must be created via NewCreateGuestCommand constructor",
)

// CreateGuestCommand checks a new guest in. Status and check-in time are not
// part of the command; the handler sets them.
//
// Example:
//
//	cmd, err := NewCreateGuestCommand("John Doe")
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateGuestCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewCreateGuestCommand rejects a blank name.
func NewCreateGuestCommand(name string) (CreateGuestCommand, error) {
	cmd := CreateGuestCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setName(name); err != nil {
		return CreateGuestCommand{}, err
	}

	return cmd, nil
}

func (c CreateGuestCommand) Validate() error {
	return c.guard.Validate(ErrCreateGuestCommandIsNotConstructed)
}

func (c CreateGuestCommand) Name() string {
	return c.name
}

func (c *CreateGuestCommand) setName(name string) error {
	trimmed, err := requireText("name", name)
	if err != nil {
		return err
	}
	c.name = trimmed
	return nil
}
