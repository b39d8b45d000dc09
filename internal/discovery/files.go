// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"pyvsgen-cli/internal/model"
)

// InsertFiles walks the tree rooted at rootPath and appends discovered
// files to the project's CompileFiles and ContentFiles, in lexical walk
// order, as paths relative to rootPath. An empty rootPath is a no-op.
//
// Directory filters prune traversal: a directory matching the ex-filter is
// always skipped; when the in-filter is non-empty, only directories on a
// path to, equal to, or inside an in-filter directory are entered, and
// files are only collected inside in-filter directories.
//
// Files are classified against the compile in/ex filters first, then the
// content in/ex filters. The ex-filter wins over the in-filter in both
// cases; a file matching neither inclusion set is dropped.
func InsertFiles(p *model.Project, rootPath string) error {
	if rootPath == "" {
		return nil
	}
	root := filepath.Clean(rootPath)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if matchesDir(path, p.DirectoryExFilter) {
				return filepath.SkipDir
			}
			if len(p.DirectoryInFilter) > 0 && !onPathTo(path, p.DirectoryInFilter) {
				return filepath.SkipDir
			}
			return nil
		}

		// With a non-empty in-filter, files outside the in-filter
		// directories are not collected even when their parent had to be
		// traversed to reach one.
		dir := filepath.Dir(path)
		if len(p.DirectoryInFilter) > 0 && !withinAny(dir, p.DirectoryInFilter) {
			return nil
		}
		if matchesDir(dir, p.DirectoryExFilter) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		base := filepath.Base(path)
		switch {
		case included(base, p.CompileInFilter, p.CompileExFilter):
			p.CompileFiles = append(p.CompileFiles, rel)
		case included(base, p.ContentInFilter, p.ContentExFilter):
			p.ContentFiles = append(p.ContentFiles, rel)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("discover files under %s: %w", root, err)
	}
	return nil
}

// included reports whether name matches an inclusion pattern and no
// exclusion pattern. An empty inclusion list includes nothing.
func included(name string, in, ex []string) bool {
	if !matchesAny(name, in) {
		return false
	}
	return !matchesAny(name, ex)
}

// matchesAny matches a file base name against glob patterns.
func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// matchesDir reports whether dir equals or lies inside any of the filter
// directories.
func matchesDir(dir string, filters []string) bool {
	return withinAny(dir, filters)
}

// withinAny reports whether dir equals or is a descendant of any entry.
func withinAny(dir string, entries []string) bool {
	for _, entry := range entries {
		if isWithin(dir, entry) {
			return true
		}
	}
	return false
}

// onPathTo reports whether dir is an ancestor of, equal to, or a
// descendant of any entry, i.e. traversal through dir can reach an
// included directory.
func onPathTo(dir string, entries []string) bool {
	for _, entry := range entries {
		if isWithin(dir, entry) || isWithin(entry, dir) {
			return true
		}
	}
	return false
}

// isWithin reports whether path equals dir or lies underneath it.
func isWithin(path, dir string) bool {
	path = filepath.Clean(path)
	dir = filepath.Clean(dir)
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}
