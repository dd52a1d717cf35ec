package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCode returns an unguessable token at most n hex characters long.
func GenerateCode(n int) string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > 0 && n < len(code) {
		return code[:n]
	}
	return code
}
