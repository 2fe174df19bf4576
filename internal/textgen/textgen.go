// Package textgen generates the sample buffers the clone benchmarks
// operate on.
package textgen

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DefaultSize is one million characters, roughly 1 MB.
	DefaultSize = 1_000_000

	// DefaultCharset is the uppercase range random buffers draw from.
	DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultFill is the repeated character used by the simpler variants.
	DefaultFill byte = 'A'
)

// Random returns exactly size bytes drawn uniformly at random from
// charset. Invalid configuration is rejected here, before any timing
// begins.
func Random(size int, charset string) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("textgen: size must be positive, got %d", size)
	}
	if len(charset) == 0 {
		return nil, fmt.Errorf("textgen: charset must not be empty")
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = charset[rand.IntN(len(charset))]
	}
	return buf, nil
}

// Repeat returns size copies of ch.
func Repeat(size int, ch byte) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("textgen: size must be positive, got %d", size)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = ch
	}
	return buf, nil
}
