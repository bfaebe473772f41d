// Package archive provides read-only access to the ZIP container carrying a
// print job. The rest of the checker only ever sees the ordered entry-name
// listing and the raw bytes of single entries.
package archive

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/bibin-skaria/slcheck/internal/errors"
)

// Reader is an open job archive. Close must be called once the validation
// run is finished; all reads go through the one underlying handle.
type Reader struct {
	rc    *zip.ReadCloser
	names []string
}

// Open opens the archive at path. A container that cannot be decoded yields
// a fatal CheckError; the caller aborts all remaining checks on it.
func Open(path string) (*Reader, error) {
	rc, err := zip.OpenReader(path)
	if stderrors.Is(err, zip.ErrFormat) {
		return nil, errors.NewFatal(errors.CategoryArchive, "open",
			"file is not a valid ZIP archive: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(fmt.Errorf("failed to open archive %s: %v", path, err),
			errors.CategoryArchive, "open")
	}

	names := make([]string, 0, len(rc.File))
	for _, f := range rc.File {
		names = append(names, f.Name)
	}

	return &Reader{rc: rc, names: names}, nil
}

// Close releases the underlying archive handle.
func (r *Reader) Close() error {
	return r.rc.Close()
}

// Entries returns the entry names in original archive order.
func (r *Reader) Entries() []string {
	return r.names
}

// FindBySuffix returns the first entry (in archive order) whose name ends
// with suffix and does not start with any of the given prefixes.
func (r *Reader) FindBySuffix(suffix string, skipPrefixes ...string) (string, bool) {
	for _, name := range r.names {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		if hasAnyPrefix(name, skipPrefixes) {
			continue
		}
		return name, true
	}
	return "", false
}

// ReadEntry reads the full content of the named entry.
func (r *Reader) ReadEntry(name string) ([]byte, error) {
	for _, f := range r.rc.File {
		if f.Name != name {
			continue
		}
		rd, err := f.Open()
		if err != nil {
			return nil, errors.Wrap(fmt.Errorf("failed to open entry %s: %v", name, err),
				errors.CategoryArchive, "read_entry")
		}
		defer rd.Close()

		data, err := io.ReadAll(rd)
		if err != nil {
			return nil, errors.Wrap(fmt.Errorf("failed to read entry %s: %v", name, err),
				errors.CategoryArchive, "read_entry")
		}
		return data, nil
	}
	return nil, errors.NewFatal(errors.CategoryArchive, "read_entry",
		"entry not found in archive: %s", name)
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
