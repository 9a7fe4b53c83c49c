package driver

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// IDCodeLength is the length of the numeric code a driver logs in with.
const IDCodeLength = 9

// PinCodeLength is the length of the driver's PIN.
const PinCodeLength = 4

// RandomIDCode generates a 9-digit driver login code. The first digit
// is never zero, so codes occupy the full 100000000-999999999 range.
// Uniqueness is the caller's concern.
func RandomIDCode() string {
	code := make([]byte, IDCodeLength)
	code[0] = byte('1' + rand.IntN(9))
	for i := 1; i < IDCodeLength; i++ {
		code[i] = byte('0' + rand.IntN(10))
	}
	return string(code)
}

// RandomPinCode generates a 4-digit driver PIN.
func RandomPinCode() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}

// Driver is a courier employed by a carrier. Drivers authenticate with
// the numeric ID code and PIN instead of a regular account.
type Driver struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	firstName string
	lastName  string
	idCode    string
	pinCode   string

	isConstructed bool
}

// NewDriver creates a driver for the carrier identified by ownerID.
func NewDriver(
	id kernel.UUID,
	ownerID kernel.UUID,
	firstName string,
	lastName string,
	idCode string,
	pinCode string,
) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setOwnerID(ownerID),
		d.setName(firstName, lastName),
		d.setIDCode(idCode),
		d.setPinCode(pinCode),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	ownerID kernel.UUID,
	firstName string,
	lastName string,
	idCode string,
	pinCode string,
) (*Driver, error) {
	return NewDriver(id, ownerID, firstName, lastName, idCode, pinCode)
}

// Validate ensures the driver came from a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// OwnerID returns the carrier the driver works for.
func (d *Driver) OwnerID() kernel.UUID { return d.ownerID }

// FirstName returns the driver's first name.
func (d *Driver) FirstName() string { return d.firstName }

// LastName returns the driver's last name.
func (d *Driver) LastName() string { return d.lastName }

// IDCode returns the 9-digit login code.
func (d *Driver) IDCode() string { return d.idCode }

// PinCode returns the 4-digit PIN.
func (d *Driver) PinCode() string { return d.pinCode }

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	d.ownerID = ownerID
	return nil
}

func (d *Driver) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	d.firstName = firstName
	d.lastName = lastName
	return nil
}

func (d *Driver) setIDCode(idCode string) error {
	if !isDigits(idCode) || len(idCode) != IDCodeLength {
		return errs.NewValueIsInvalidError("idCode")
	}
	d.idCode = idCode
	return nil
}

func (d *Driver) setPinCode(pinCode string) error {
	if !isDigits(pinCode) || len(pinCode) != PinCodeLength {
		return errs.NewValueIsInvalidError("pinCode")
	}
	d.pinCode = pinCode
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
