package shipment

import (
	"fmt"

	"couriernet/internal/pkg/errs"
)

// Size is the closed set of shipment size classes. Each class maps to
// a capacity weight; the summed weight of active orders on a relation
// and day is what the availability search checks against vehicle
// capacity.
type Size int

const (
	// SizeUnknown catches uninitialized Size values.
	SizeUnknown Size = iota

	// SizeS is a small shipment, weight 1.
	SizeS

	// SizeM is a medium shipment, weight 2.
	SizeM

	// SizeL is a large shipment, weight 3.
	SizeL
)

// ParseSize maps the "S"/"M"/"L" wire form to a Size.
func ParseSize(s string) (Size, error) {
	switch s {
	case "S":
		return SizeS, nil
	case "M":
		return SizeM, nil
	case "L":
		return SizeL, nil
	default:
		return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("unknown size class %q", s))
	}
}

// Validate rejects SizeUnknown and out-of-range values.
func (s Size) Validate() error {
	switch s {
	case SizeS, SizeM, SizeL:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
}

// Weight returns the capacity weight of the size class (S=1, M=2, L=3)
// and 0 for invalid sizes.
func (s Size) Weight() int {
	switch s {
	case SizeS:
		return 1
	case SizeM:
		return 2
	case SizeL:
		return 3
	default:
		return 0
	}
}

// String returns the "S"/"M"/"L" wire form, "?" for invalid sizes.
func (s Size) String() string {
	switch s {
	case SizeS:
		return "S"
	case SizeM:
		return "M"
	case SizeL:
		return "L"
	default:
		return "?"
	}
}
