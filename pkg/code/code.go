package code

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Human-readable codes are a 3-letter prefix plus the zero-padded numeric id.
const (
	EnquiryPrefix = "ENQ"
	QueryPrefix   = "QRY"

	digits = 10
)

// Format derives the final code from the assigned numeric id.
func Format(prefix string, id uint64) string {
	return fmt.Sprintf("%s%0*d", prefix, digits, id)
}

// Placeholder returns a temporary code for use before the row has an id, so
// not-null and uniqueness constraints hold between insert and finalize. The
// "T" marker keeps it outside the all-digit space Format maps ids into.
func Placeholder(prefix string) string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return prefix + "T000000000"
	}
	return prefix + "T" + hex.EncodeToString(buf)[:digits-1]
}
