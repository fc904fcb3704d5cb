// Package guard implements the constructor guard pattern used by domain
// value objects and commands to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes the
// zero value of that struct fail validation, which protects domain invariants
// established during construction.
//
// Example usage:
//
//	type Tariff struct {
//	    homeCity string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewTariff(homeCity string) Tariff {
//	    return Tariff{homeCity: homeCity, guard: guard.NewConstructorGuard()}
//	}
//
//	func (t Tariff) Validate() error {
//	    return t.guard.Validate(ErrTariffIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the enclosing object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
