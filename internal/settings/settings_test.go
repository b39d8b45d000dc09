// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"path/filepath"
	"testing"

	"pyvsgen-cli/internal/testutil"
)

func TestDefaults(t *testing.T) {
	d := Default()
	if d.Parallel {
		t.Error("parallel should default to false")
	}
	if d.Workers <= 0 {
		t.Errorf("workers default = %d, want positive", d.Workers)
	}
	if d.FailFast {
		t.Error("fail_fast should default to false")
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	s, err := loadFrom(filepath.Join(dir, SettingsFileName), dir)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if s.Parallel || s.FailFast {
		t.Errorf("expected defaults, got %+v", s)
	}
	if s.RegistryPath != filepath.Join(dir, RegistryFileName) {
		t.Errorf("RegistryPath = %q, want default under config dir", s.RegistryPath)
	}
}

func TestLoadFromSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	testutil.MustWriteFile(t, path, "parallel = true\nworkers = 3\nregistry_path = \"/tmp/reg.toml\"\n")

	s, err := loadFrom(path, dir)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if !s.Parallel || s.Workers != 3 {
		t.Errorf("settings = %+v", s)
	}
	if s.RegistryPath != "/tmp/reg.toml" {
		t.Errorf("RegistryPath = %q", s.RegistryPath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	testutil.MustWriteFile(t, path, "workers = 3\n")
	restore := testutil.MustSetenv(t, "PYVSGEN_WORKERS", "7")
	defer restore()

	s, err := loadFrom(path, dir)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if s.Workers != 7 {
		t.Errorf("Workers = %d, want env override 7", s.Workers)
	}
}

func TestNonPositiveWorkersFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	testutil.MustWriteFile(t, path, "workers = 0\n")

	s, err := loadFrom(path, dir)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if s.Workers <= 0 {
		t.Errorf("Workers = %d, want positive fallback", s.Workers)
	}
}
