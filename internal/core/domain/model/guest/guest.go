package guest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
)

var (
	// ErrGuestIsNotConstructed is returned when a Guest was not built by NewGuest or RestoreGuest.
	ErrGuestIsNotConstructed = errors.New("Guest must be created via NewGuest constructor")

	// ErrAlreadyCheckedOut is returned by a second check-out.
	ErrAlreadyCheckedOut = errs.NewConflictError("guest is already checked out")
)

// Guest is the aggregate root for a hotel stay.
//
// Invariants:
//   - id is valid and never changes
//   - name is not blank
//   - checkOutTime is nil while CheckedIn and set while CheckedOut
//   - checkOutTime is strictly after checkInTime
type Guest struct {
	id           kernel.UUID
	name         string
	status       Status
	checkInTime  time.Time
	checkOutTime *time.Time

	isConstructed bool
}

// NewGuest checks a guest in at the given instant.
//
// Example:
//
//	g, err := guest.NewGuest(id, "John Doe", clock.Now())
func NewGuest(id kernel.UUID, name string, checkInTime time.Time) (*Guest, error) {
	g := &Guest{
		status:        CheckedIn,
		isConstructed: true,
	}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
		g.setCheckInTime(checkInTime),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// RestoreGuest rebuilds a guest from persisted state and re-checks every invariant.
func RestoreGuest(
	id kernel.UUID,
	name string,
	status Status,
	checkInTime time.Time,
	checkOutTime *time.Time,
) (*Guest, error) {
	g := &Guest{isConstructed: true}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
		g.setCheckInTime(checkInTime),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	g.status = status

	if checkOutTime != nil {
		at := kernel.Instant(*checkOutTime)
		g.checkOutTime = &at
	}

	if err := g.checkTimes(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Guest) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGuestIsNotConstructed
	}
	return nil
}

func (g *Guest) ID() kernel.UUID {
	return g.id
}

func (g *Guest) Name() string {
	return g.name
}

func (g *Guest) Status() Status {
	return g.status
}

func (g *Guest) CheckInTime() time.Time {
	return g.checkInTime
}

// CheckOutTime returns nil while the guest is checked in.
func (g *Guest) CheckOutTime() *time.Time {
	if g.checkOutTime == nil {
		return nil
	}
	at := *g.checkOutTime
	return &at
}

func (g *Guest) IsCheckedIn() bool {
	return g.status == CheckedIn
}

// Rename replaces the display name.
func (g *Guest) Rename(name string) error {
	return g.setName(name)
}

// CheckOut moves the guest to CheckedOut at the given instant. If at is not
// strictly after the check-in time, the check-out time becomes check-in plus
// one microsecond.
func (g *Guest) CheckOut(at time.Time) error {
	newStatus, err := g.status.CheckOut()
	if err != nil {
		return err
	}

	checkOut := kernel.Instant(at)
	if !checkOut.After(g.checkInTime) {
		checkOut = g.checkInTime.Add(time.Microsecond)
	}

	g.status = newStatus
	g.checkOutTime = &checkOut
	return nil
}

func (g *Guest) checkTimes() error {
	switch g.status {
	case CheckedIn:
		if g.checkOutTime != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"checkOutTime", errors.New("a checked-in guest has no check-out time"))
		}
	case CheckedOut:
		if g.checkOutTime == nil {
			return errs.NewValueIsRequiredError("checkOutTime")
		}
		if !g.checkOutTime.After(g.checkInTime) {
			return errs.NewValueIsInvalidErrorWithCause(
				"checkOutTime", fmt.Errorf("%s is not after check-in %s",
					g.checkOutTime.Format(time.RFC3339Nano), g.checkInTime.Format(time.RFC3339Nano)))
		}
	case Unknown:
		return g.status.Validate()
	}
	return nil
}

func (g *Guest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *Guest) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	g.name = trimmed
	return nil
}

func (g *Guest) setCheckInTime(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("checkInTime")
	}
	g.checkInTime = kernel.Instant(at)
	return nil
}
