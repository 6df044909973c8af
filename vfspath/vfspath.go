// Package vfspath manipulates slash-separated virtual file system paths.
//
// The virtual file system layer stores entries under string keys that look
// like POSIX paths: '/' is the only separator and there is no drive letter,
// symlink, or current-directory notion. These functions operate purely on the
// path string and never consult real storage, so a ".." that cannot be
// resolved structurally is preserved rather than guessed at.
package vfspath

import "strings"

// leadingSlashes classifies the slash prefix of a path. POSIX treats a path
// starting with exactly two slashes as implementation-defined and requires it
// to be preserved, while one slash or three-or-more collapse to one. The
// value doubles as the number of slashes to re-prepend after normalization.
type leadingSlashes int

const (
	relative   leadingSlashes = 0
	rooted     leadingSlashes = 1
	doubleRoot leadingSlashes = 2
)

func classifySlashes(path string) leadingSlashes {
	if !strings.HasPrefix(path, "/") {
		return relative
	}
	if strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "///") {
		return doubleRoot
	}
	return rooted
}

// Join concatenates base with any number of additional segments, following
// POSIX os.path.join semantics: a segment starting with '/' discards
// everything accumulated before it. Segments are not validated or
// normalized; call Normalize on the result to canonicalize it.
func Join(base string, segments ...string) string {
	path := base
	for _, seg := range segments {
		switch {
		case strings.HasPrefix(seg, "/"):
			path = seg
		case path == "" || strings.HasSuffix(path, "/"):
			path += seg
		default:
			path += "/" + seg
		}
	}
	return path
}

// Normalize returns the canonical form of path: empty and "." segments are
// dropped, ".." is resolved against preceding segments where possible, and
// repeated separators collapse. A path of exactly two leading slashes keeps
// both (POSIX quirk); three or more collapse to one. The empty path
// normalizes to ".". Normalize is idempotent and total.
func Normalize(path string) string {
	if path == "" {
		return "."
	}
	slashes := classifySlashes(path)
	var kept []string
	for _, seg := range strings.Split(path, "/") {
		switch {
		case seg == "" || seg == ".":
			// redundant separator or no-op segment
		case seg != "..":
			kept = append(kept, seg)
		case len(kept) > 0 && kept[len(kept)-1] != "..":
			kept = kept[:len(kept)-1]
		case slashes == relative || len(kept) > 0:
			// Unresolvable without a real file system: the path is
			// relative and nothing precedes, or the previous segment is
			// itself an unresolved "..".
			kept = append(kept, seg)
		default:
			// ".." directly above an absolute root is a no-op.
		}
	}
	out := strings.Repeat("/", int(slashes)) + strings.Join(kept, "/")
	if out == "" {
		return "."
	}
	return out
}
