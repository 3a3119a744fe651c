// Package normalize canonicalizes user-supplied tag strings.
//
// Tags arrive as free-form "#"-delimited text ("#cats #dogs", "cats#dogs",
// "# cats ##dogs") and are reduced to a sorted, deduplicated slice of
// word-safe tokens. Anything containing characters outside [A-Za-z0-9_]
// is silently discarded.
package normalize

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"
)

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Tags splits raw on '#', trims whitespace, drops empty and non-word
// tokens, deduplicates, and returns the result sorted ascending.
// An empty or all-invalid input yields an empty (non-nil) slice.
func Tags(raw string) []string {
	parts := strings.Split(raw, "#")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" || !tagPattern.MatchString(tag) {
			continue
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}

	slices.Sort(out)
	return out
}

// EncodeTags serializes a normalized tag slice for storage.
// A nil slice encodes as an empty JSON array.
func EncodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeTags deserializes a stored tag string. Empty or malformed input
// decodes to an empty slice rather than failing the read.
func DecodeTags(s string) []string {
	if s == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}
