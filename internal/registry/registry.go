// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"pyvsgen-cli/internal/batch"
	"pyvsgen-cli/internal/model"
)

// Entry is one registered interpreter.
type Entry struct {
	Path         string    `toml:"path"`
	Version      string    `toml:"version,omitempty"`
	Description  string    `toml:"description,omitempty"`
	Arch         string    `toml:"arch,omitempty"`
	VSVersion    float64   `toml:"visual_studio_version,omitempty"`
	VirtualEnv   bool      `toml:"virtual_env,omitempty"`
	RegisteredAt time.Time `toml:"registered_at"`
}

// Registry persists interpreter registrations to a TOML file.
type Registry struct {
	path string

	// mu serializes read-modify-write cycles. The registration phase runs
	// sequentially, but the registry must stay safe if a caller does not.
	mu sync.Mutex

	now func() time.Time
}

// New creates a registry backed by the file at path. The file need not
// exist yet.
func New(path string) *Registry {
	return &Registry{
		path: path,
		now:  time.Now,
	}
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// Register upserts the interpreter, keyed by its identity. Registering the
// same interpreter again replaces its entry.
func (r *Registry) Register(i *model.Interpreter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	entries[i.Identity()] = Entry{
		Path:         i.Path,
		Version:      i.Version,
		Description:  i.Description,
		Arch:         i.Arch,
		VSVersion:    i.VSVersion,
		VirtualEnv:   i.IsVirtualEnv,
		RegisteredAt: r.now().UTC(),
	}

	return r.store(entries)
}

// Entries returns the current registry contents keyed by identity.
func (r *Registry) Entries() (map[string]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *Registry) load() (map[string]Entry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read interpreter registry %s: %w", r.path, err)
	}

	entries := map[string]Entry{}
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse interpreter registry %s: %w", r.path, err)
	}
	return entries, nil
}

// store writes the registry atomically via a temp file and rename.
func (r *Registry) store(entries map[string]Entry) error {
	data, err := toml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode interpreter registry: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create registry directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp registry file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp registry file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace interpreter registry %s: %w", r.path, err)
	}
	return nil
}

type registerTask struct {
	registry    *Registry
	interpreter *model.Interpreter
}

func (t *registerTask) Name() string {
	return t.interpreter.EntityName()
}

func (t *registerTask) Materialize() error {
	return t.registry.Register(t.interpreter)
}

// Tasks adapts interpreters to batch tasks targeting this registry,
// preserving order.
func (r *Registry) Tasks(interpreters []*model.Interpreter) []batch.Task {
	tasks := make([]batch.Task, len(interpreters))
	for i, interp := range interpreters {
		tasks[i] = &registerTask{registry: r, interpreter: interp}
	}
	return tasks
}
