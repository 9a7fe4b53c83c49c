package shipment

import (
	"errors"
	"fmt"
)

// ErrInvalidStateTransition is returned when an operation is attempted
// from a status that does not permit it. Callers classify it with
// errors.Is; the wrapped message names the offending transition.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// Status represents the lifecycle state of an order. It implements a
// state machine with a one-way progression and a single exception
// branch; see the package documentation for the full diagram.
//
// The string representations are the wire values of the original
// courier network and are kept verbatim, including diacritics.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNadana is the initial status: the shipment is registered and
	// paid for, waiting for a driver.
	StatusNadana

	// StatusPrzypisanoKierowce indicates a driver has been assigned and
	// fresh pickup/delivery codes were issued.
	StatusPrzypisanoKierowce

	// StatusPrzyjetaOdKlienta indicates the driver collected the parcel
	// from the customer against the pickup code.
	StatusPrzyjetaOdKlienta

	// StatusDostarczona is the terminal success state; reaching it
	// triggers the one-time carrier wallet credit.
	StatusDostarczona

	// StatusInterwencja is the terminal exception state entered when the
	// customer files a shipment problem.
	StatusInterwencja
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "Unknown",
		StatusNadana:             "Nadana",
		StatusPrzypisanoKierowce: "Przypisano kierowcę",
		StatusPrzyjetaOdKlienta:  "Przyjęta od klienta",
		StatusDostarczona:        "Dostarczona",
		StatusInterwencja:        "Interwencja",
	}
}

// ParseStatus maps a wire string back to its Status. Unrecognized
// strings yield an error rather than StatusUnknown so invalid states
// never enter the model silently.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("unknown order status %q", s)
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusInterwencja {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStateTransition, s)
	}
	return nil
}

// String returns the wire representation, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the status consumes vehicle capacity. The
// active set is {Nadana, Przypisano kierowcę, Przyjęta od klienta};
// terminal and intervention orders never count against capacity.
func (s Status) IsActive() bool {
	switch s {
	case StatusNadana, StatusPrzypisanoKierowce, StatusPrzyjetaOdKlienta:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the normal progression.
func (s Status) IsTerminal() bool {
	return s == StatusDostarczona || s == StatusInterwencja
}

// AssignDriver transitions to Przypisano kierowcę. Assignment carries
// no status precondition beyond validity: a dispatcher may assign (or
// reassign) a driver at any point of the order's life.
func (s Status) AssignDriver() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	return StatusPrzypisanoKierowce, nil
}

// AcceptPickup transitions to Przyjęta od klienta. Permitted only from
// exactly Przypisano kierowcę.
func (s Status) AcceptPickup() (Status, error) {
	if s != StatusPrzypisanoKierowce {
		return StatusUnknown, fmt.Errorf("%w: cannot accept pickup from %q", ErrInvalidStateTransition, s)
	}
	return StatusPrzyjetaOdKlienta, nil
}

// ConfirmDelivery transitions to Dostarczona. Permitted only from
// exactly Przyjęta od klienta.
func (s Status) ConfirmDelivery() (Status, error) {
	if s != StatusPrzyjetaOdKlienta {
		return StatusUnknown, fmt.Errorf("%w: cannot confirm delivery from %q", ErrInvalidStateTransition, s)
	}
	return StatusDostarczona, nil
}

// Intervene transitions to Interwencja from any non-terminal status.
func (s Status) Intervene() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: cannot intervene on %q", ErrInvalidStateTransition, s)
	}
	return StatusInterwencja, nil
}

// Override leaves Interwencja for a manually chosen status. This is
// the only sanctioned path out of the intervention state.
func (s Status) Override(to Status) (Status, error) {
	if s != StatusInterwencja {
		return StatusUnknown, fmt.Errorf("%w: cannot override from %q", ErrInvalidStateTransition, s)
	}
	if err := to.Validate(); err != nil {
		return StatusUnknown, err
	}
	return to, nil
}
