// Package urlutil rewrites URLs handed back to browsers.
package urlutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
)

// SetQueryParam returns rawURL with the named query parameter set to value,
// replacing any existing values for that name. Scheme, host, path, and
// fragment are preserved; other query parameters are re-encoded in sorted
// order.
func SetQueryParam(rawURL, name, value string) (string, error) {
	if name == "" {
		return "", errors.New("query parameter name must not be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set(name, value)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PNGDataURL returns a data: URL carrying the PNG bytes, percent-encoded so
// it can be dropped into an HTML attribute verbatim.
func PNGDataURL(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return "data:image/png;base64," + url.QueryEscape(encoded)
}
