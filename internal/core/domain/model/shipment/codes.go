package shipment

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// ErrInvalidCode is returned when a supplied pickup or delivery code
// does not match the code stored on the order.
var ErrInvalidCode = errors.New("invalid verification code")

const (
	// OrderCodeLength is the length of the globally unique order code
	// printed on the shipment label.
	OrderCodeLength = 14

	// VerificationCodeLength is the length of the pickup and delivery
	// codes exchanged between customer and driver.
	VerificationCodeLength = 4

	// SentinelVerificationCode is the placeholder both verification
	// codes hold between order creation and driver assignment. It can
	// never be produced by RandomVerificationCode, so a freshly created
	// order can never be picked up.
	SentinelVerificationCode = "0000"
)

// RandomOrderCode generates a candidate 14-digit order code. Uniqueness
// is not guaranteed here; the creating use case checks the candidate
// against the store and retries on collision.
func RandomOrderCode() string {
	var b strings.Builder
	b.Grow(OrderCodeLength)
	for range OrderCodeLength {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

// RandomVerificationCode generates a 4-digit verification code in the
// range 1000-9999.
func RandomVerificationCode() string {
	code := rand.IntN(9000) + 1000
	return string([]byte{
		byte('0' + code/1000),
		byte('0' + code/100%10),
		byte('0' + code/10%10),
		byte('0' + code%10),
	})
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
