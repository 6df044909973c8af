// Package hashutil derives short, URL-safe identifiers from strings. The
// digests are used as stable keys, not for integrity or authentication, so
// SHA-1 is acceptable and changing it would invalidate stored keys.
package hashutil

import (
	"crypto/sha1"
	"encoding/base64"
)

// ShortHash returns the URL-safe base64 encoding of the SHA-1 digest of s,
// truncated to maxLength. A negative maxLength, or one longer than the full
// encoding, returns the full encoding.
func ShortHash(s string, maxLength int) string {
	sum := sha1.Sum([]byte(s))
	encoded := base64.URLEncoding.EncodeToString(sum[:])
	if maxLength < 0 || maxLength > len(encoded) {
		return encoded
	}
	return encoded[:maxLength]
}

// Base64FromInt returns the standard base64 encoding of the single byte
// v mod 256.
func Base64FromInt(v int) string {
	return base64.StdEncoding.EncodeToString([]byte{byte(v)})
}
