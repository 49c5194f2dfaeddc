// Package guard provides the ConstructorGuard pattern used to ensure that
// domain objects and commands are only created through their designated
// constructor functions, never as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply a more specific validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; a zero-value struct then fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was properly constructed and
// validationError (or ErrDefaultConstructorGuard when nil) otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
