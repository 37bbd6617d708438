// Package ports defines the contracts between the application core and its
// adapters: repositories, units of work and the cache.
package ports

import (
	"context"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
)

// GuestRepository persists guest aggregates.
//
// Get and GetForUpdate return errs.ObjectNotFoundError when the id is unknown.
// Update returns errs.ObjectNotFoundError when the row disappeared.
type GuestRepository interface {
	// NextID reserves an identifier for a new guest. Identifiers are assigned
	// by the store, never by clients.
	NextID(ctx context.Context) (kernel.UUID, error)

	Add(ctx context.Context, aggregate *guest.Guest) error
	Update(ctx context.Context, aggregate *guest.Guest) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error)

	// GetForUpdate loads a guest and locks it until the surrounding unit of
	// work ends. Outside a unit of work it behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*guest.Guest, error)

	// List returns one page ordered by (checkInTime, id) and the total count.
	List(ctx context.Context, page kernel.PageRequest) ([]*guest.Guest, int64, error)

	// Find returns every guest satisfying spec, in the List order.
	Find(ctx context.Context, spec kernel.Specification[*guest.Guest]) ([]*guest.Guest, error)
}
