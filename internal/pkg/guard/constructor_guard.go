// Package guard holds helpers that let domain types detect zero-value construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its constructor.
//
// Aggregates embed it and check it from their Validate method, so that a
// zero-value Guest or Parcel is rejected before it reaches a repository:
//
//	var ErrGuestNotConstructed = errors.New("guest must be created via NewGuest")
//
//	func (g *Guest) Validate() error {
//	    return g.guard.Validate(ErrGuestNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
