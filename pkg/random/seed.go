// Package random provides seed generation for the piece generators.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SeedOr returns seed when it is set and a fresh random seed otherwise.
func SeedOr(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}

	return NewSeed()
}
