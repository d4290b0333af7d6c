package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns prefix, a dash and eight upper-case hex characters.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")[:8])
}
