package util

import (
	"strings"

	"github.com/twmb/murmur3"
)

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// NormalizeName trims and lower-cases category names
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
