// SPDX-License-Identifier: MPL-2.0

package model

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Interpreter identifies a Python runtime installation or virtual
// environment usable by a Project. Path is the installation or environment
// directory; VSVersion records the Visual Studio context the interpreter
// was resolved under.
type Interpreter struct {
	Path         string
	Version      string
	Description  string
	Arch         string
	VSVersion    float64
	IsVirtualEnv bool
}

// NewFromInstallation builds an interpreter entry for a Python installation
// rooted at dir.
func NewFromInstallation(dir string, ctx ResolveContext) *Interpreter {
	clean := filepath.Clean(dir)
	return &Interpreter{
		Path:        clean,
		Description: filepath.Base(clean),
		VSVersion:   ctx.VSVersion,
	}
}

// NewFromVirtualEnv builds an interpreter entry for a virtual environment
// rooted at dir. The environment's pyvenv.cfg, when present, supplies the
// Python version.
func NewFromVirtualEnv(dir string, ctx ResolveContext) *Interpreter {
	clean := filepath.Clean(dir)
	return &Interpreter{
		Path:         clean,
		Version:      readVenvVersion(clean),
		Description:  filepath.Base(clean),
		VSVersion:    ctx.VSVersion,
		IsVirtualEnv: true,
	}
}

// EntityName implements Entity. Interpreters order by description, falling
// back to the path when no description was configured.
func (i *Interpreter) EntityName() string {
	if i.Description != "" {
		return i.Description
	}
	return i.Path
}

// Identity implements Entity. Interpreters deduplicate by cleaned
// installation or environment path.
func (i *Interpreter) Identity() string {
	return filepath.Clean(i.Path)
}

// readVenvVersion extracts the version key from a pyvenv.cfg file.
// Returns the empty string when the file is absent or has no version key.
func readVenvVersion(dir string) string {
	f, err := os.Open(filepath.Join(dir, "pyvenv.cfg"))
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == "version" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
