// Package jobconfig decodes the config.ini entry of a job package into a
// section/key/value model. Slicers disagree on whether the file carries
// section headers at all, so parsing is deliberately tolerant: a strict
// attempt first, then a retry with a synthetic wrapper section.
package jobconfig

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/bibin-skaria/slcheck/internal/errors"
)

// FallbackSection is the synthetic section keys land in when the source text
// has no explicit section headers.
var FallbackSection = ini.DefaultSection

// Model is the parsed configuration. Immutable after Parse.
type Model struct {
	file *ini.File
}

// Parse decodes raw config bytes. On a parse failure the content is
// re-parsed once with a synthetic wrapper section prepended; if that also
// fails, the error from the first attempt is returned and the caller gets
// no model (subsequent consistency checks are skipped, not failed).
func Parse(data []byte) (*Model, error) {
	f, err := ini.Load(data)
	if err == nil {
		return &Model{file: f}, nil
	}

	wrapped := append([]byte("["+FallbackSection+"]\n"), data...)
	if f, retryErr := ini.Load(wrapped); retryErr == nil {
		return &Model{file: f}, nil
	}

	return nil, errors.Wrap(fmt.Errorf("failed to parse config: %v", err),
		errors.CategoryConfig, "parse")
}

// Get resolves a key through three tiers: the named section first, then the
// fallback section, then any section containing the key. A miss everywhere
// returns ok=false; lookup never panics.
func (m *Model) Get(section, key string) (string, bool) {
	if sec, err := m.file.GetSection(section); err == nil && sec.HasKey(key) {
		return sec.Key(key).String(), true
	}

	if sec, err := m.file.GetSection(FallbackSection); err == nil && sec.HasKey(key) {
		return sec.Key(key).String(), true
	}

	for _, sec := range m.file.Sections() {
		if sec.HasKey(key) {
			return sec.Key(key).String(), true
		}
	}

	return "", false
}
