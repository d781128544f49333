package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingReference builds a human-readable booking reference from a
// timestamp plus a random suffix, e.g. "BK-20250614153042-7F3A2C".
func GenerateBookingReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("BK-%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}
