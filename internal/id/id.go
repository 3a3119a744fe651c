// Package id generates unique identifiers for domain entities.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// alphabet is restricted to word characters so generated IDs survive
// round-trips through pointer-file content scans.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_"

// size is the length of the random portion of an ID.
const size = 16

// Generate creates a new unique ID with the given prefix, e.g. "pic_V1StGXR8Z5jdHi6B".
func Generate(prefix string) (string, error) {
	nid, err := gonanoid.Generate(alphabet, size)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	if prefix == "" {
		return nid, nil
	}
	return prefix + "_" + nid, nil
}

// MustGenerate is like Generate but panics on failure. Random source
// failures are not recoverable at call sites anyway.
func MustGenerate(prefix string) string {
	nid, err := Generate(prefix)
	if err != nil {
		panic(err)
	}
	return nid
}
