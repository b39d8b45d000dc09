// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"path/filepath"
	"testing"
	"time"

	"pyvsgen-cli/internal/model"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New(filepath.Join(t.TempDir(), "registry.toml"))
	r.now = func() time.Time { return time.Date(2016, 4, 2, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestRegisterAndReload(t *testing.T) {
	r := testRegistry(t)
	i := &model.Interpreter{
		Path:        "/opt/py39",
		Version:     "3.9",
		Description: "Python 3.9",
		Arch:        "x64",
		VSVersion:   14.0,
	}

	if err := r.Register(i); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	entries, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	entry, ok := entries[i.Identity()]
	if !ok {
		t.Fatalf("registry missing entry for %s: %v", i.Identity(), entries)
	}
	if entry.Version != "3.9" || entry.Description != "Python 3.9" || entry.VSVersion != 14.0 {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Arch != "x64" {
		t.Errorf("Arch = %q, want x64", entry.Arch)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := testRegistry(t)
	i := &model.Interpreter{Path: "/opt/py39", Description: "first"}

	if err := r.Register(i); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	i.Description = "second"
	if err := r.Register(i); err != nil {
		t.Fatalf("re-Register() error: %v", err)
	}

	entries, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("registry has %d entries, want 1", len(entries))
	}
	if entries[i.Identity()].Description != "second" {
		t.Errorf("re-registration should replace the entry: %+v", entries[i.Identity()])
	}
}

func TestRegisterDistinctIdentities(t *testing.T) {
	r := testRegistry(t)

	for _, path := range []string{"/opt/py39", "/opt/py311", "/envs/dev"} {
		if err := r.Register(&model.Interpreter{Path: path}); err != nil {
			t.Fatalf("Register(%s) error: %v", path, err)
		}
	}

	entries, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("registry has %d entries, want 3", len(entries))
	}
}

func TestEntriesOnMissingFile(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "absent.toml"))
	entries, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty registry, got %v", entries)
	}
}

func TestTasksAdaptInterpreters(t *testing.T) {
	r := testRegistry(t)
	i := &model.Interpreter{Path: "/opt/py39", Description: "Python 3.9"}

	tasks := r.Tasks([]*model.Interpreter{i})
	if len(tasks) != 1 || tasks[0].Name() != "Python 3.9" {
		t.Fatalf("Tasks() = %v", tasks)
	}
	if err := tasks[0].Materialize(); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	entries, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected one registered entry, got %v", entries)
	}
}
