package order

import (
	"fmt"

	"attieke/internal/pkg/errs"
)

// AttiekeType identifies the attiéké variety ordered.
// It is a closed enum; unknown symbols fail parsing.
type AttiekeType string

const (
	// TypeSimple is plain attiéké.
	TypeSimple AttiekeType = "simple"

	// TypeAbodjaman is the premium abodjaman variety.
	TypeAbodjaman AttiekeType = "abodjaman"

	// TypeGarba is attiéké served garba style.
	TypeGarba AttiekeType = "garba"
)

// AllAttiekeTypes lists every valid variety, in menu order.
// Used by the admin statistics breakdown.
func AllAttiekeTypes() []AttiekeType {
	return []AttiekeType{TypeSimple, TypeAbodjaman, TypeGarba}
}

// ParseAttiekeType converts a wire symbol into an AttiekeType.
// Returns a validation error for any symbol outside the menu.
func ParseAttiekeType(s string) (AttiekeType, error) {
	t := AttiekeType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the type is one of the menu varieties.
func (t AttiekeType) Validate() error {
	switch t {
	case TypeSimple, TypeAbodjaman, TypeGarba:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("attieke type",
			fmt.Errorf("%q is not a valid attiéké type", string(t)))
	}
}

// String returns the wire symbol of the type.
func (t AttiekeType) String() string {
	return string(t)
}
