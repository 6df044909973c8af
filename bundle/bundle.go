// Package bundle extracts lesson bundles: a single YAML content file plus an
// assets/ tree, delivered either as a directory or as an uploaded zip
// archive. Extraction is structural only; the content YAML is returned as a
// string and can be decoded with ContentMap.
package bundle

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/lessonforge/webutil/vfspath"
	"github.com/lessonforge/webutil/yamlutil"
)

const (
	assetsDir     = "assets"
	contentSuffix = ".yaml"
)

var (
	ErrNoContent       = errors.New("bundle has no content file")
	ErrMultipleContent = errors.New("bundle has more than one content file")
	ErrBadContent      = errors.New("content file must have a " + contentSuffix + " suffix")
	ErrUnexpectedDir   = errors.New("only the assets directory is allowed in a bundle")
	ErrUnsafePath      = errors.New("archive entry escapes the bundle root")
)

// Asset is one file from the bundle's assets/ tree. Name is relative to
// assets/ and uses forward slashes.
type Asset struct {
	Name string
	Data []byte
}

// Components holds the extracted pieces of a bundle.
type Components struct {
	Content string
	Assets  []Asset
}

// ContentMap decodes the content YAML into a mapping.
func (c *Components) ContentMap() (map[string]any, error) {
	m, err := yamlutil.ToMap(c.Content)
	if err != nil {
		return nil, fmt.Errorf("bundle content: %w", err)
	}
	return m, nil
}

// FromDir extracts bundle components from dir within fsys. The directory
// must contain exactly one regular file, with the content suffix, and may
// contain an assets/ subdirectory; any other subdirectory is an error.
// macOS Finder droppings (.DS_Store) are ignored.
func FromDir(fsys fs.FS, dir string) (*Components, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read bundle dir: %w", err)
	}

	var comps Components
	haveContent := false
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if name != assetsDir {
				return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpectedDir, name, dir)
			}
			continue
		}
		if name == ".DS_Store" {
			continue
		}
		if haveContent {
			return nil, fmt.Errorf("%w: %s", ErrMultipleContent, dir)
		}
		if !strings.HasSuffix(name, contentSuffix) {
			return nil, fmt.Errorf("%w: found %q", ErrBadContent, name)
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		comps.Content = string(data)
		haveContent = true
	}
	if !haveContent {
		return nil, fmt.Errorf("%w: %s", ErrNoContent, dir)
	}

	if err := collectAssets(fsys, path.Join(dir, assetsDir), &comps); err != nil {
		return nil, err
	}
	return &comps, nil
}

func collectAssets(fsys fs.FS, root string, comps *Components) error {
	if _, err := fs.Stat(fsys, root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat assets dir: %w", err)
	}
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read asset: %w", err)
		}
		comps.Assets = append(comps.Assets, Asset{
			Name: strings.TrimPrefix(p, root+"/"),
			Data: data,
		})
		return nil
	})
}

// FromZip extracts bundle components from the raw bytes of a zip archive.
// The archive layout mirrors FromDir: exactly one non-asset entry holding
// the content YAML, and any number of entries under assets/. Zip uploads
// come from users, so entry names are normalized and rejected if they are
// absolute or point outside the archive root.
func FromZip(data []byte) (*Components, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var comps Components
	haveContent := false
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue // directory entry
		}
		name, err := safeEntryName(f.Name)
		if err != nil {
			return nil, err
		}
		if rel, ok := strings.CutPrefix(name, assetsDir+"/"); ok {
			data, err := readZipEntry(f)
			if err != nil {
				return nil, err
			}
			comps.Assets = append(comps.Assets, Asset{Name: rel, Data: data})
			continue
		}
		if haveContent {
			return nil, ErrMultipleContent
		}
		if !strings.HasSuffix(name, contentSuffix) {
			return nil, fmt.Errorf("%w: found %q", ErrBadContent, name)
		}
		data, err := readZipEntry(f)
		if err != nil {
			return nil, err
		}
		comps.Content = string(data)
		haveContent = true
	}
	if !haveContent {
		return nil, ErrNoContent
	}
	return &comps, nil
}

// safeEntryName normalizes a zip entry name and rejects names that would
// resolve outside the archive root.
func safeEntryName(name string) (string, error) {
	norm := vfspath.Normalize(name)
	if strings.HasPrefix(norm, "/") || norm == ".." || strings.HasPrefix(norm, "../") {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return norm, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read archive entry %s: %w", f.Name, err)
	}
	return data, nil
}
