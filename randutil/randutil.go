// Package randutil produces crypto-strength random values. Everything here
// draws from crypto/rand; none of it is reproducible or seedable, which is
// the point for IDs and tokens handed to users.
package randutil

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
)

// Intn returns a uniform random int in [0, upper). upper must be positive.
func Intn(upper int) (int, error) {
	if upper <= 0 {
		return 0, fmt.Errorf("upper bound must be positive, got %d", upper)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(upper)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(n.Int64()), nil
}

// Choice returns a uniformly chosen element of items.
func Choice[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.New("cannot choose from an empty slice")
	}
	i, err := Intn(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// String returns the URL-safe base64 encoding of nBytes random bytes. The
// result is safe to embed in URLs and file names; its length is the base64
// expansion of nBytes, not nBytes itself.
func String(nBytes int) (string, error) {
	if nBytes < 0 {
		return "", fmt.Errorf("byte count must be non-negative, got %d", nBytes)
	}
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}
