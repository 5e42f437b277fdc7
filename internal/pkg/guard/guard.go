// Package guard provides ConstructorGuard, a marker that lets value objects,
// aggregates, commands and queries detect that they were built through their
// constructor rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field and set only by constructors.
//
// Example:
//
//	var ErrMobileIsNotConstructed = errors.New("Mobile must be created via NewMobile")
//
//	type Mobile struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMobile(s string) (Mobile, error) {
//	    // validate s ...
//	    return Mobile{value: s, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Mobile) Validate() error {
//	    return m.guard.Validate(ErrMobileIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
