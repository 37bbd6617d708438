package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories obtained from it run
// inside the transaction once Begin has returned; before that they read
// committed state directly.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback is a no-op when no transaction is active, so it can be deferred
	// unconditionally after Begin.
	Rollback(ctx context.Context) error

	GuestRepository() GuestRepository
	ParcelRepository() ParcelRepository
}
