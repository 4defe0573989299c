// Package util holds small helpers shared by the use cases.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// NormalizeTags lowercases, trims and de-duplicates tags and returns them sorted.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// IntersectTags returns the normalized tags present in both a and b, sorted.
func IntersectTags(a, b []string) []string {
	left := NormalizeTags(a)
	right := NormalizeTags(b)

	out := make([]string, 0, min(len(left), len(right)))
	for i, j := 0, 0; i < len(left) && j < len(right); {
		switch {
		case left[i] == right[j]:
			out = append(out, left[i])
			i++
			j++
		case left[i] < right[j]:
			i++
		default:
			j++
		}
	}

	return out
}

// HashKey returns the hex SHA-256 of the parts joined by '|'.
func HashKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))

	return hex.EncodeToString(sum[:])
}
