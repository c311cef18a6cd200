// Package contactbook provides embedded runtime resources (the startup banner)
// and an overlay filesystem that checks local disk first, falling back to embedded.
package contactbook

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BannerFile is the name of the startup banner resource.
const BannerFile = "banner.txt"

//go:embed banner.txt
var rawResources embed.FS

// Resources is the embedded resource filesystem.
var Resources fs.FS = rawResources

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) || strings.Contains(name, `\`) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name)))
	if err == nil {
		return f, nil
	}
	return o.embedded.Open(name)
}

// Banner returns the startup banner, preferring BannerFile in localDir over
// the embedded copy. Trailing newlines are trimmed.
func Banner(localDir string) (string, error) {
	data, err := fs.ReadFile(OverlayFS(localDir, Resources), BannerFile)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
