package hashutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortHash(t *testing.T) {
	t.Parallel()

	// Full URL-safe base64 of sha1("test"); note the '-' and '_' alphabet.
	require.Equal(t, "qUqP5cyxm6YcTAhz05Hph5gvu9M=", ShortHash("test", -1))
	require.Equal(t, "qUqP5cyxm6Yc", ShortHash("test", 12))
	require.Equal(t, "t-I-wpryKwtO", ShortHash("hello, world", 12))
	require.Equal(t, "2jmj7l5rSw0y", ShortHash("", 12))
	require.Equal(t, "", ShortHash("test", 0))
	require.Equal(t, "qUqP5cyxm6YcTAhz05Hph5gvu9M=", ShortHash("test", 1000))
}

func TestShortHashStable(t *testing.T) {
	t.Parallel()

	require.Equal(t, ShortHash("Benjamin Franklin", 20), ShortHash("Benjamin Franklin", 20))
	require.NotEqual(t, ShortHash("a", 20), ShortHash("b", 20))
}

func TestBase64FromInt(t *testing.T) {
	t.Parallel()

	require.Equal(t, "AA==", Base64FromInt(0))
	require.Equal(t, "QQ==", Base64FromInt(65))
	require.Equal(t, "/w==", Base64FromInt(255))
	// Values wrap at a byte, matching the single-byte encoding.
	require.Equal(t, Base64FromInt(1), Base64FromInt(257))
}
