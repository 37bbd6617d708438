// Package commands contains the operations that change guests and parcels.
// Every handler follows the same shape: validate the command, run
// load → check → mutate → persist in one unit of work, commit, then
// invalidate the affected cache keys before returning.
package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/ports"

	"go.uber.org/zap"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	GuestRepoFactory interface {
		GuestRepository() ports.GuestRepository
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// GuestUoW is used by commands that only touch guests.
	GuestUoW interface {
		TxManager
		GuestRepoFactory
	}

	GuestUoWFactory interface {
		Create() GuestUoW
	}

	// ParcelUoW is used by commands that only touch parcels.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW spans both aggregates, for the custody rules.
	UoW interface {
		TxManager
		GuestRepoFactory
		ParcelRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// Invalidator drops cache entries after a commit. Implemented by caching.Coordinator.
	Invalidator interface {
		Created(ctx context.Context, region caching.Region) error
		Changed(ctx context.Context, region caching.Region, id kernel.UUID) error
	}
)

// logStaleCache records a change that is committed although its cache
// invalidation failed. The handler still returns the error, so a caller that
// retries a create stores a second record.
func logStaleCache(logger *zap.Logger, action, field string, id kernel.UUID, err error) {
	logger.Error("change committed but cache invalidation failed",
		zap.String("action", action),
		zap.String(field, id.String()),
		zap.Error(err),
	)
}
