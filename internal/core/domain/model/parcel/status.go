package parcel

import (
	"fmt"
	"strings"

	"parceltracker/internal/pkg/errs"
)

// Status is the custody state of a parcel.
//
//	Pending ──> PickedUp
type Status int

const (
	Unknown Status = iota
	Pending
	PickedUp
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown has no wire form
	return map[Status]string{
		Pending:  "PENDING",
		PickedUp: "PICKED_UP",
	}
}

// ParseStatus accepts the wire names case-insensitively.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a parcel status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid parcel status", s))
	}
	return nil
}

// PickUp returns the status after pickup, or ErrAlreadyPickedUp.
func (s Status) PickUp() (Status, error) {
	switch s {
	case Pending:
		return PickedUp, nil
	case PickedUp:
		return Unknown, ErrAlreadyPickedUp
	default:
		return Unknown, s.Validate()
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
