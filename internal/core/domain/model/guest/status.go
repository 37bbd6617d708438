package guest

import (
	"fmt"
	"strings"

	"parceltracker/internal/pkg/errs"
)

// Status is the stay state of a guest.
//
//	CheckedIn ──> CheckedOut
//
// CheckedOut is terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	CheckedIn
	CheckedOut
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown has no wire form
	return map[Status]string{
		CheckedIn:  "CHECKED_IN",
		CheckedOut: "CHECKED_OUT",
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a guest status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid guest status", s))
	}
	return nil
}

// CheckOut returns the status after check-out, or ErrAlreadyCheckedOut.
func (s Status) CheckOut() (Status, error) {
	switch s {
	case CheckedIn:
		return CheckedOut, nil
	case CheckedOut:
		return Unknown, ErrAlreadyCheckedOut
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
