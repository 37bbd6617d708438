package parcel

import (
	"errors"
	"strings"
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not built by NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrAlreadyPickedUp is returned by a second pickup.
	ErrAlreadyPickedUp = errs.NewConflictError("parcel is already picked up")
)

// Parcel is the aggregate root for an item held for a guest.
type Parcel struct {
	id           kernel.UUID
	guestID      kernel.UUID
	description  string
	receivedTime time.Time
	status       Status

	isConstructed bool
}

// NewParcel records a parcel received for guestID. Whether the guest may
// receive parcels is checked by services.CustodyPolicy before this is called.
func NewParcel(id, guestID kernel.UUID, description string, receivedTime time.Time) (*Parcel, error) {
	p := &Parcel{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setGuestID(guestID),
		p.setDescription(description),
		p.setReceivedTime(receivedTime),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rebuilds a parcel from persisted state.
func RestoreParcel(
	id, guestID kernel.UUID,
	description string,
	receivedTime time.Time,
	status Status,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setGuestID(guestID),
		p.setDescription(description),
		p.setReceivedTime(receivedTime),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = status

	return p, nil
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) GuestID() kernel.UUID {
	return p.guestID
}

func (p *Parcel) Description() string {
	return p.description
}

func (p *Parcel) ReceivedTime() time.Time {
	return p.receivedTime
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) IsPending() bool {
	return p.status == Pending
}

// Describe replaces the description.
func (p *Parcel) Describe(description string) error {
	return p.setDescription(description)
}

// PickUp hands the parcel over to its guest.
func (p *Parcel) PickUp() error {
	newStatus, err := p.status.PickUp()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setGuestID(guestID kernel.UUID) error {
	if err := guestID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("guestId")
	}
	p.guestID = guestID
	return nil
}

func (p *Parcel) setDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = trimmed
	return nil
}

func (p *Parcel) setReceivedTime(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("receivedTime")
	}
	p.receivedTime = kernel.Instant(at)
	return nil
}
