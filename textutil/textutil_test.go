package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToASCII(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"café", "cafe"},
		{"naïve", "naive"},
		{"Ångström", "Angstrom"},
		{"日本語abc", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ToASCII(tc.in), "ToASCII(%q)", tc.in)
	}
}

func TestCommaSeparatedList(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", CommaSeparatedList(nil))
	require.Equal(t, "a", CommaSeparatedList([]string{"a"}))
	require.Equal(t, "a and b", CommaSeparatedList([]string{"a", "b"}))
	require.Equal(t, "a, b and c", CommaSeparatedList([]string{"a", "b", "c"}))
	require.Equal(t, "a, b, c and d", CommaSeparatedList([]string{"a", "b", "c", "d"}))
}

func TestCamelCaseToHyphenated(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"abcDefGhi", "abc-def-ghi"},
		{"CamelCase", "camel-case"},
		{"camel", "camel"},
		{"Camel", "camel"},
		{"HTTPServer", "http-server"},
		{"ABCd", "ab-cd"},
		{"aB", "a-b"},
		{"parseHTTPResponse2XX", "parse-http-response2-xx"},
		{"already-hyphen", "already-hyphen"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CamelCaseToHyphenated(tc.in), "CamelCaseToHyphenated(%q)", tc.in)
	}
}
