package gtfsfeed

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// source abstracts over a plain directory and a ZIP archive so the eager
// and lazy readers can share one code path regardless of origin.
type source interface {
	// open returns a reader for name, or ok=false if name is not present.
	open(name string) (rc io.ReadCloser, ok bool, err error)
	// path is a human-readable identifier for error messages.
	path() string
}

type dirSource struct {
	root string
}

func openDirSource(root string) (source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &dirSource{root: root}, nil
}

func (d *dirSource) open(name string) (io.ReadCloser, bool, error) {
	f, err := os.Open(filepath.Join(d.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return f, true, nil
}

func (d *dirSource) path() string { return d.root }

type zipSource struct {
	zr       *zip.ReadCloser
	filePath string
	byName   map[string]*zip.File
}

func openZipSource(path string) (source, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// GTFS archives sometimes nest the CSVs under a single
		// top-level directory; match on basename.
		byName[filepath.Base(f.Name)] = f
	}
	return &zipSource{zr: zr, filePath: path, byName: byName}, nil
}

func (z *zipSource) open(name string) (io.ReadCloser, bool, error) {
	f, ok := z.byName[name]
	if !ok {
		return nil, false, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, false, err
	}
	return rc, true, nil
}

func (z *zipSource) path() string { return z.filePath }

func (z *zipSource) close() error { return z.zr.Close() }

// openSource picks a directory or ZIP source based on the path's shape: an
// existing directory opens as dirSource, anything else is attempted as a
// ZIP archive.
func openSource(path string) (source, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return openDirSource(path)
	}
	return openZipSource(path)
}
