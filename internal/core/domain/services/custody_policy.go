package services

import (
	"time"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"
)

var (
	// ErrUnclaimedParcels blocks check-out while a parcel is still held.
	ErrUnclaimedParcels = errs.NewConflictError("guest has unclaimed parcels")

	// ErrGuestCheckedOut blocks receiving parcels for a departed guest.
	ErrGuestCheckedOut = errs.NewConflictError("guest is checked out")

	// ErrGuestHasParcels blocks deleting a guest that still owns parcel records.
	ErrGuestHasParcels = errs.NewConflictError("guest has parcels")
)

// CustodyPolicy holds the rules that span a guest and its parcels.
//
// Business rules:
//   - A guest checks out only when none of its parcels is still pending
//   - Parcels are received only for checked-in guests
//   - A guest that owns parcels, in any status, cannot be deleted
//
// Callers load the facts (the guest, whether unclaimed parcels exist) inside
// the same unit of work that persists the result, with the guest row locked.
type CustodyPolicy struct{}

func NewCustodyPolicy() CustodyPolicy {
	return CustodyPolicy{}
}

// CheckOut checks g out at the given instant. A guest that is already checked
// out gets guest.ErrAlreadyCheckedOut even if parcels are pending.
func (CustodyPolicy) CheckOut(g *guest.Guest, hasUnclaimedParcels bool, at time.Time) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Status() == guest.CheckedOut {
		return guest.ErrAlreadyCheckedOut
	}
	if hasUnclaimedParcels {
		return ErrUnclaimedParcels
	}
	return g.CheckOut(at)
}

// Receive creates a pending parcel for g.
func (CustodyPolicy) Receive(id kernel.UUID, g *guest.Guest, description string, at time.Time) (*parcel.Parcel, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.IsCheckedIn() {
		return nil, ErrGuestCheckedOut
	}
	return parcel.NewParcel(id, g.ID(), description, at)
}

// Release allows removing g from the register.
func (CustodyPolicy) Release(g *guest.Guest, hasParcels bool) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if hasParcels {
		return ErrGuestHasParcels
	}
	return nil
}
