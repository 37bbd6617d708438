package memory

import (
	"context"
	"slices"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"
)

var _ ports.ParcelRepository = (*ParcelRepository)(nil)

type ParcelRepository struct {
	access access
}

func (r *ParcelRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}
	return kernel.NewUUID(), nil
}

// Add requires the owning guest to exist in the same tables.
func (r *ParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(ctx, func(t *tables) error {
		if _, ok := t.guests[aggregate.GuestID()]; !ok {
			return errs.NewObjectNotFoundError("guest", aggregate.GuestID())
		}
		if _, ok := t.parcels[aggregate.ID()]; ok {
			return errs.NewConflictError("parcel " + aggregate.ID().String() + " already exists")
		}
		t.parcels[aggregate.ID()] = parcelToRecord(aggregate)
		return nil
	})
}

func (r *ParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(ctx, func(t *tables) error {
		if _, ok := t.parcels[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("parcel", aggregate.ID())
		}
		t.parcels[aggregate.ID()] = parcelToRecord(aggregate)
		return nil
	})
}

func (r *ParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.access.write(ctx, func(t *tables) error {
		if _, ok := t.parcels[id]; !ok {
			return errs.NewObjectNotFoundError("parcel", id)
		}
		delete(t.parcels, id)
		return nil
	})
}

func (r *ParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	var result *parcel.Parcel
	err := r.access.read(ctx, func(t *tables) error {
		rec, ok := t.parcels[id]
		if !ok {
			return errs.NewObjectNotFoundError("parcel", id)
		}

		p, err := rec.toDomain()
		if err != nil {
			return err
		}
		result = p
		return nil
	})
	return result, err
}

func (r *ParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.Get(ctx, id)
}

func (r *ParcelRepository) List(ctx context.Context, page kernel.PageRequest) ([]*parcel.Parcel, int64, error) {
	var (
		result []*parcel.Parcel
		total  int64
	)
	err := r.access.read(ctx, func(t *tables) error {
		records := sortedParcels(t)
		total = int64(len(records))

		from, to := page.Window(len(records))
		items, err := parcelsToDomain(records[from:to])
		if err != nil {
			return err
		}
		result = items
		return nil
	})
	return result, total, err
}

func (r *ParcelRepository) Find(
	ctx context.Context,
	spec kernel.Specification[*parcel.Parcel],
) ([]*parcel.Parcel, error) {
	var result []*parcel.Parcel
	err := r.access.read(ctx, func(t *tables) error {
		items, err := parcelsToDomain(sortedParcels(t))
		if err != nil {
			return err
		}

		result = make([]*parcel.Parcel, 0, len(items))
		for _, p := range items {
			if spec.IsSatisfiedBy(p) {
				result = append(result, p)
			}
		}
		return nil
	})
	return result, err
}

func (r *ParcelRepository) Exists(ctx context.Context, spec kernel.Specification[*parcel.Parcel]) (bool, error) {
	var found bool
	err := r.access.read(ctx, func(t *tables) error {
		for _, rec := range t.parcels {
			p, err := rec.toDomain()
			if err != nil {
				return err
			}
			if spec.IsSatisfiedBy(p) {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

func sortedParcels(t *tables) []parcelRecord {
	records := make([]parcelRecord, 0, len(t.parcels))
	for _, rec := range t.parcels {
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b parcelRecord) int {
		if c := a.receivedTime.Compare(b.receivedTime); c != 0 {
			return c
		}
		return compareIDs(a.id, b.id)
	})
	return records
}

func parcelsToDomain(records []parcelRecord) ([]*parcel.Parcel, error) {
	out := make([]*parcel.Parcel, 0, len(records))
	for _, rec := range records {
		p, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parcelToRecord(p *parcel.Parcel) parcelRecord {
	return parcelRecord{
		id:           p.ID(),
		guestID:      p.GuestID(),
		description:  p.Description(),
		receivedTime: p.ReceivedTime(),
		status:       p.Status(),
	}
}

func (rec parcelRecord) toDomain() (*parcel.Parcel, error) {
	return parcel.RestoreParcel(rec.id, rec.guestID, rec.description, rec.receivedTime, rec.status)
}
