// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/exp/slices"
	"gopkg.in/ini.v1"
)

// Store is the typed accessor layer over a parsed pyvsgen configuration.
// Typed getters take a caller-supplied fallback returned when the section
// or key is absent; path getters additionally resolve values against the
// store's root directory (injected by the suite builder after resolving
// the top-level root key).
type Store struct {
	file *ini.File
	path string
	root string
}

// Load parses the configuration file at path.
// Until SetRoot is called, relative paths resolve against the file's own
// directory.
func Load(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve configuration path %s: %w", path, err)
	}

	file, err := ini.Load(abs)
	if err != nil {
		return nil, fmt.Errorf("read configuration file %s: %w", abs, err)
	}

	return &Store{
		file: file,
		path: abs,
		root: filepath.Dir(abs),
	}, nil
}

// Path returns the absolute path of the loaded configuration file.
func (s *Store) Path() string {
	return s.path
}

// Root returns the directory against which relative path values resolve.
func (s *Store) Root() string {
	return s.root
}

// SetRoot injects the resolved root directory. All subsequent relative-path
// lookups resolve against it.
func (s *Store) SetRoot(dir string) {
	s.root = filepath.Clean(dir)
}

// Sections returns the section names in declaration order, excluding the
// implicit default section.
func (s *Store) Sections() []string {
	names := s.file.SectionStrings()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == ini.DefaultSection {
			continue
		}
		out = append(out, name)
	}
	return out
}

// HasSection reports whether the named section exists.
func (s *Store) HasSection(name string) bool {
	_, err := s.file.GetSection(name)
	return err == nil
}

// CheckSection returns a SectionNotFoundError when the named section is
// absent. Entity resolution must short-circuit on this error rather than
// proceed with partial data.
func (s *Store) CheckSection(name string) error {
	if s.HasSection(name) {
		return nil
	}
	return &SectionNotFoundError{Requested: name, Available: s.Sections()}
}

// lookup returns the raw value for section/key and whether it was present.
func (s *Store) lookup(section, key string) (string, bool) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

// GetString returns the value of key in section, or fallback when absent.
func (s *Store) GetString(section, key, fallback string) string {
	v, ok := s.lookup(section, key)
	if !ok {
		return fallback
	}
	return v
}

// GetFloat returns the value of key in section coerced to a float64.
// An absent key yields the fallback; a present but unparsable value yields
// a ConversionError.
func (s *Store) GetFloat(section, key string, fallback float64) (float64, error) {
	v, ok := s.lookup(section, key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, &ConversionError{Section: section, Key: key, Value: v, Cause: err}
	}
	return f, nil
}

// GetBool returns the value of key in section coerced to a bool.
// Accepts the usual spellings (true/false, yes/no, on/off, 1/0).
func (s *Store) GetBool(section, key string, fallback bool) (bool, error) {
	v, ok := s.lookup(section, key)
	if !ok {
		return fallback, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, &ConversionError{
		Section: section,
		Key:     key,
		Value:   v,
		Cause:   fmt.Errorf("not a boolean"),
	}
}

// GetList returns the comma-delimited value of key in section as an ordered
// list of trimmed strings. An empty raw value yields an empty list.
func (s *Store) GetList(section, key string, fallback []string) []string {
	v, ok := s.lookup(section, key)
	if !ok {
		return slices.Clone(fallback)
	}
	return splitList(v)
}

// GetDir returns the value of key in section normalized to an absolute
// path relative to the store's root.
func (s *Store) GetDir(section, key, fallback string) string {
	v, ok := s.lookup(section, key)
	if !ok {
		return fallback
	}
	return s.resolvePath(v)
}

// GetFile is GetDir for a single file path.
func (s *Store) GetFile(section, key, fallback string) string {
	return s.GetDir(section, key, fallback)
}

// GetDirs returns the list value of key in section with each entry treated
// as a glob pattern rooted at the store's root, expanded and filtered to
// existing directories.
func (s *Store) GetDirs(section, key string, fallback []string) []string {
	v, ok := s.lookup(section, key)
	if !ok {
		return slices.Clone(fallback)
	}

	var dirs []string
	for _, pattern := range splitList(v) {
		matches, err := doublestar.FilepathGlob(s.resolvePath(pattern))
		if err != nil {
			continue
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && info.IsDir() {
				dirs = append(dirs, filepath.Clean(m))
			}
		}
	}
	slices.Sort(dirs)
	return dirs
}

// resolvePath normalizes a value into an absolute path relative to root.
func (s *Store) resolvePath(v string) string {
	v = filepath.FromSlash(strings.TrimSpace(v))
	if filepath.IsAbs(v) {
		return filepath.Clean(v)
	}
	return filepath.Join(s.root, v)
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return []string{}
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
