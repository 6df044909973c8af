// Package jsonutil encodes JSON destined for HTML documents. The encoder
// escapes '&', '<', and '>' as \u0026, \u003c, and \u003e so a payload can
// be inlined into a <script> block without closing the tag early.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MarshalForHTML returns the JSON encoding of v with HTML-significant
// characters escaped.
func MarshalForHTML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewHTMLEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	// Encode appends a newline; strip it for Marshal-like output.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// NewHTMLEncoder returns a json.Encoder writing to w with HTML escaping on.
func NewHTMLEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	return enc
}
