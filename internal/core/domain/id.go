package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a prefixed identifier such as "TKT-9f86d081". The short
// suffix keeps tickets readable on screen while staying unique enough for a
// single session.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}
