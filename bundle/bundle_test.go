package bundle

import (
	"archive/zip"
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const lessonYAML = "title: Welcome\nsteps:\n    - read\n"

func TestFromDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"lesson/content.yaml":        {Data: []byte(lessonYAML)},
		"lesson/.DS_Store":           {Data: []byte{0}},
		"lesson/assets/logo.png":     {Data: []byte("png-bytes")},
		"lesson/assets/audio/a.mp3":  {Data: []byte("mp3-bytes")},
		"lesson/assets/audio/b.mp3":  {Data: []byte("more-bytes")},
		"unrelated/other/thing.yaml": {Data: []byte("ignored: true\n")},
	}
	comps, err := FromDir(fsys, "lesson")
	require.NoError(t, err)
	require.Equal(t, lessonYAML, comps.Content)
	require.Equal(t, []Asset{
		{Name: "audio/a.mp3", Data: []byte("mp3-bytes")},
		{Name: "audio/b.mp3", Data: []byte("more-bytes")},
		{Name: "logo.png", Data: []byte("png-bytes")},
	}, comps.Assets)

	m, err := comps.ContentMap()
	require.NoError(t, err)
	require.Equal(t, "Welcome", m["title"])
}

func TestFromDirNoAssetsDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"lesson/content.yaml": {Data: []byte(lessonYAML)},
	}
	comps, err := FromDir(fsys, "lesson")
	require.NoError(t, err)
	require.Empty(t, comps.Assets)
}

func TestFromDirErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{
			name: "no content file",
			fsys: fstest.MapFS{"lesson/assets/a.png": {Data: []byte("x")}},
			want: ErrNoContent,
		},
		{
			name: "two content files",
			fsys: fstest.MapFS{
				"lesson/a.yaml": {Data: []byte("a: 1\n")},
				"lesson/b.yaml": {Data: []byte("b: 2\n")},
			},
			want: ErrMultipleContent,
		},
		{
			name: "wrong suffix",
			fsys: fstest.MapFS{"lesson/content.json": {Data: []byte("{}")}},
			want: ErrBadContent,
		},
		{
			name: "stray directory",
			fsys: fstest.MapFS{
				"lesson/content.yaml": {Data: []byte(lessonYAML)},
				"lesson/extras/x.txt": {Data: []byte("x")},
			},
			want: ErrUnexpectedDir,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromDir(tc.fsys, "lesson")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func buildZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFromZip(t *testing.T) {
	t.Parallel()

	data := buildZip(t, map[string][]byte{
		"content.yaml":    []byte(lessonYAML),
		"assets/logo.png": []byte("png-bytes"),
		"assets/audio/a":  []byte("audio-bytes"),
		"assets/misc//b":  []byte("sloppy-name"), // doubled slash normalizes away
	})
	comps, err := FromZip(data)
	require.NoError(t, err)
	require.Equal(t, lessonYAML, comps.Content)

	byName := map[string][]byte{}
	for _, a := range comps.Assets {
		byName[a.Name] = a.Data
	}
	require.Equal(t, map[string][]byte{
		"logo.png": []byte("png-bytes"),
		"audio/a":  []byte("audio-bytes"),
		"misc/b":   []byte("sloppy-name"),
	}, byName)
}

func TestFromZipErrors(t *testing.T) {
	t.Parallel()

	_, err := FromZip([]byte("not a zip archive"))
	require.ErrorContains(t, err, "open archive")

	_, err = FromZip(buildZip(t, map[string][]byte{"assets/a.png": []byte("x")}))
	require.ErrorIs(t, err, ErrNoContent)

	_, err = FromZip(buildZip(t, map[string][]byte{"content.txt": []byte("x")}))
	require.ErrorIs(t, err, ErrBadContent)

	_, err = FromZip(buildZip(t, map[string][]byte{
		"content.yaml": []byte(lessonYAML),
		"readme.yaml":  []byte("x: 1\n"),
	}))
	require.ErrorIs(t, err, ErrMultipleContent)
}

func TestFromZipRejectsEscapingEntries(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"../evil.yaml", "assets/../../evil", "/etc/passwd"} {
		data := buildZip(t, map[string][]byte{
			"content.yaml": []byte(lessonYAML),
			name:           []byte("x"),
		})
		_, err := FromZip(data)
		require.ErrorIs(t, err, ErrUnsafePath, "entry %q", name)
	}
}
