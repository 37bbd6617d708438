package ports

import (
	"context"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
)

// ParcelRepository persists parcel aggregates. Errors follow GuestRepository.
type ParcelRepository interface {
	NextID(ctx context.Context) (kernel.UUID, error)
	Add(ctx context.Context, aggregate *parcel.Parcel) error
	Update(ctx context.Context, aggregate *parcel.Parcel) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// List returns one page ordered by (receivedTime, id) and the total count.
	List(ctx context.Context, page kernel.PageRequest) ([]*parcel.Parcel, int64, error)
	Find(ctx context.Context, spec kernel.Specification[*parcel.Parcel]) ([]*parcel.Parcel, error)

	// Exists reports whether at least one parcel satisfies spec.
	Exists(ctx context.Context, spec kernel.Specification[*parcel.Parcel]) (bool, error)
}
