package parcel

import "parceltracker/internal/core/domain/model/kernel"

// Logical field names understood by storage adapters.
const (
	FieldGuestID = "guestId"
	FieldStatus  = "status"
)

// Filter is a parcel search request. Nil fields are ignored.
type Filter struct {
	GuestID *kernel.UUID
	Status  *Status
}

func (f Filter) Specification() kernel.Specification[*Parcel] {
	spec := kernel.MatchAll[*Parcel]()

	if f.GuestID != nil {
		spec = spec.And(OwnedBy(*f.GuestID))
	}
	if f.Status != nil {
		spec = spec.And(StatusIs(*f.Status))
	}

	return spec
}

func OwnedBy(guestID kernel.UUID) kernel.Specification[*Parcel] {
	return kernel.NewSpecification(
		kernel.Criterion{Field: FieldGuestID, Operator: kernel.Equal, Value: guestID},
		func(p *Parcel) bool { return p.GuestID().IsEqual(guestID) },
	)
}

func StatusIs(status Status) kernel.Specification[*Parcel] {
	return kernel.NewSpecification(
		kernel.Criterion{Field: FieldStatus, Operator: kernel.Equal, Value: status.String()},
		func(p *Parcel) bool { return p.Status() == status },
	)
}

func StatusIsNot(status Status) kernel.Specification[*Parcel] {
	return kernel.NewSpecification(
		kernel.Criterion{Field: FieldStatus, Operator: kernel.NotEqual, Value: status.String()},
		func(p *Parcel) bool { return p.Status() != status },
	)
}

// Unclaimed matches parcels of guestID in any status other than PICKED_UP.
func Unclaimed(guestID kernel.UUID) kernel.Specification[*Parcel] {
	return OwnedBy(guestID).And(StatusIsNot(PickedUp))
}
