package memory

import (
	"context"
	"slices"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"
)

var _ ports.GuestRepository = (*GuestRepository)(nil)

type GuestRepository struct {
	access access
}

func (r *GuestRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}
	return kernel.NewUUID(), nil
}

func (r *GuestRepository) Add(ctx context.Context, aggregate *guest.Guest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(ctx, func(t *tables) error {
		if _, ok := t.guests[aggregate.ID()]; ok {
			return errs.NewConflictError("guest " + aggregate.ID().String() + " already exists")
		}
		t.guests[aggregate.ID()] = guestToRecord(aggregate)
		return nil
	})
}

func (r *GuestRepository) Update(ctx context.Context, aggregate *guest.Guest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(ctx, func(t *tables) error {
		if _, ok := t.guests[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("guest", aggregate.ID())
		}
		t.guests[aggregate.ID()] = guestToRecord(aggregate)
		return nil
	})
}

// Delete refuses to remove a guest that still owns parcels.
func (r *GuestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.access.write(ctx, func(t *tables) error {
		if _, ok := t.guests[id]; !ok {
			return errs.NewObjectNotFoundError("guest", id)
		}
		for _, p := range t.parcels {
			if p.guestID == id {
				return errs.NewConflictError("guest has parcels")
			}
		}
		delete(t.guests, id)
		return nil
	})
}

func (r *GuestRepository) Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	var result *guest.Guest
	err := r.access.read(ctx, func(t *tables) error {
		rec, ok := t.guests[id]
		if !ok {
			return errs.NewObjectNotFoundError("guest", id)
		}

		g, err := rec.toDomain()
		if err != nil {
			return err
		}
		result = g
		return nil
	})
	return result, err
}

// GetForUpdate is Get: inside a unit of work the writer slot is already held.
func (r *GuestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	return r.Get(ctx, id)
}

func (r *GuestRepository) List(ctx context.Context, page kernel.PageRequest) ([]*guest.Guest, int64, error) {
	var (
		result []*guest.Guest
		total  int64
	)
	err := r.access.read(ctx, func(t *tables) error {
		records := sortedGuests(t)
		total = int64(len(records))

		from, to := page.Window(len(records))
		items, err := guestsToDomain(records[from:to])
		if err != nil {
			return err
		}
		result = items
		return nil
	})
	return result, total, err
}

func (r *GuestRepository) Find(
	ctx context.Context,
	spec kernel.Specification[*guest.Guest],
) ([]*guest.Guest, error) {
	var result []*guest.Guest
	err := r.access.read(ctx, func(t *tables) error {
		items, err := guestsToDomain(sortedGuests(t))
		if err != nil {
			return err
		}

		result = make([]*guest.Guest, 0, len(items))
		for _, g := range items {
			if spec.IsSatisfiedBy(g) {
				result = append(result, g)
			}
		}
		return nil
	})
	return result, err
}

func sortedGuests(t *tables) []guestRecord {
	records := make([]guestRecord, 0, len(t.guests))
	for _, rec := range t.guests {
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b guestRecord) int {
		if c := a.checkInTime.Compare(b.checkInTime); c != 0 {
			return c
		}
		return compareIDs(a.id, b.id)
	})
	return records
}

func guestsToDomain(records []guestRecord) ([]*guest.Guest, error) {
	out := make([]*guest.Guest, 0, len(records))
	for _, rec := range records {
		g, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func guestToRecord(g *guest.Guest) guestRecord {
	return guestRecord{
		id:           g.ID(),
		name:         g.Name(),
		status:       g.Status(),
		checkInTime:  g.CheckInTime(),
		checkOutTime: g.CheckOutTime(),
	}
}

func (rec guestRecord) toDomain() (*guest.Guest, error) {
	return guest.RestoreGuest(rec.id, rec.name, rec.status, rec.checkInTime, rec.checkOutTime)
}

// compareIDs orders ids byte-wise, the way postgres orders uuid columns.
func compareIDs(a, b kernel.UUID) int {
	x, y := a.Bytes(), b.Bytes()
	return slices.Compare(x[:], y[:])
}
