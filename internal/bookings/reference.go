package bookings

import (
	"crypto/rand"
	"math/big"
	"time"

	"wayfare/internal/travel"
)

// Booking references look like FL202601151430A7QX: a two-letter type prefix,
// a minute-resolution timestamp, and a four-character random suffix. The
// generator alone does not guarantee uniqueness; the unique constraint on
// bookings.booking_reference does, and callers retry with a fresh suffix on
// collision.

const referenceSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const referenceSuffixLength = 4

// GenerateReference builds a booking reference for the given travel type at
// the given time.
func GenerateReference(travelType travel.TravelType, now time.Time) (string, error) {
	timestamp := now.Format("200601021504")

	suffix := make([]byte, referenceSuffixLength)
	for i := range suffix {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceSuffixAlphabet))))
		if err != nil {
			return "", err
		}
		suffix[i] = referenceSuffixAlphabet[num.Int64()]
	}

	return travelType.Prefix() + timestamp + string(suffix), nil
}
