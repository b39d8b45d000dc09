// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"pyvsgen-cli/internal/testutil"
)

const sampleConfig = `[pyvsgen]
root = .

[pyvsgen.solution.demo]
name = Demo
filename = demo.sln
visual_studio_version = 14.0
projects = pyvsgen.project.demo

[pyvsgen.project.demo]
name = Demo
filename = demo.pyproj
is_windows_application = true
python_interpreter_args = -B, -v
empty_list =
bad_float = not-a-number
`

func loadSample(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	path := testutil.WriteConfig(t, dir, sampleConfig)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return store
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.cfg")); err == nil {
		t.Fatal("expected error for missing configuration file")
	}
}

func TestSectionsOrder(t *testing.T) {
	store := loadSample(t)

	want := []string{"pyvsgen", "pyvsgen.solution.demo", "pyvsgen.project.demo"}
	got := store.Sections()
	if len(got) != len(want) {
		t.Fatalf("Sections() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sections()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCheckSection(t *testing.T) {
	store := loadSample(t)

	if err := store.CheckSection("pyvsgen.solution.demo"); err != nil {
		t.Errorf("CheckSection() unexpected error: %v", err)
	}

	err := store.CheckSection("pyvsgen.project.missing")
	var notFound *SectionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SectionNotFoundError, got %v", err)
	}
	if notFound.Requested != "pyvsgen.project.missing" {
		t.Errorf("Requested = %q", notFound.Requested)
	}
	if len(notFound.Available) == 0 {
		t.Error("Available should list existing sections")
	}
}

func TestGetString(t *testing.T) {
	store := loadSample(t)

	if got := store.GetString("pyvsgen.solution.demo", "name", ""); got != "Demo" {
		t.Errorf("GetString() = %q, want Demo", got)
	}
	if got := store.GetString("pyvsgen.solution.demo", "absent", "dflt"); got != "dflt" {
		t.Errorf("GetString() fallback = %q, want dflt", got)
	}
}

func TestGetFloat(t *testing.T) {
	store := loadSample(t)

	got, err := store.GetFloat("pyvsgen.solution.demo", "visual_studio_version", 0)
	if err != nil {
		t.Fatalf("GetFloat() error: %v", err)
	}
	if got != 14.0 {
		t.Errorf("GetFloat() = %v, want 14.0", got)
	}

	if got, err := store.GetFloat("pyvsgen.solution.demo", "absent", 11.0); err != nil || got != 11.0 {
		t.Errorf("GetFloat() fallback = %v, %v", got, err)
	}

	_, err = store.GetFloat("pyvsgen.project.demo", "bad_float", 0)
	var conv *ConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if conv.Key != "bad_float" {
		t.Errorf("ConversionError.Key = %q", conv.Key)
	}
}

func TestGetBool(t *testing.T) {
	store := loadSample(t)

	got, err := store.GetBool("pyvsgen.project.demo", "is_windows_application", false)
	if err != nil {
		t.Fatalf("GetBool() error: %v", err)
	}
	if !got {
		t.Error("GetBool() = false, want true")
	}

	if got, err := store.GetBool("pyvsgen.project.demo", "absent", true); err != nil || !got {
		t.Errorf("GetBool() fallback = %v, %v", got, err)
	}
}

func TestGetList(t *testing.T) {
	store := loadSample(t)

	got := store.GetList("pyvsgen.project.demo", "python_interpreter_args", nil)
	if len(got) != 2 || got[0] != "-B" || got[1] != "-v" {
		t.Errorf("GetList() = %v, want [-B -v]", got)
	}

	if got := store.GetList("pyvsgen.project.demo", "empty_list", []string{"x"}); len(got) != 0 {
		t.Errorf("GetList() on empty value = %v, want empty", got)
	}

	if got := store.GetList("pyvsgen.project.demo", "absent", []string{"a", "b"}); len(got) != 2 {
		t.Errorf("GetList() fallback = %v", got)
	}
}

func TestGetDirResolvesAgainstRoot(t *testing.T) {
	store := loadSample(t)

	root := filepath.Join(t.TempDir(), "src")
	testutil.MustMkdirAll(t, root)
	store.SetRoot(root)

	if got := store.GetDir("pyvsgen.project.demo", "name", ""); got != filepath.Join(root, "Demo") {
		t.Errorf("GetDir() = %q, want joined with root", got)
	}
}

func TestGetDirsExpandsGlobs(t *testing.T) {
	dir := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(dir, "libs", "alpha"))
	testutil.MustMkdirAll(t, filepath.Join(dir, "libs", "beta"))
	testutil.MustWriteFile(t, filepath.Join(dir, "libs", "readme.txt"), "not a dir")

	path := testutil.WriteConfig(t, dir, `[pyvsgen]
root = .

[pyvsgen.project.demo]
search_path = libs/*
`)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	store.SetRoot(dir)

	got := store.GetDirs("pyvsgen.project.demo", "search_path", nil)
	if len(got) != 2 {
		t.Fatalf("GetDirs() = %v, want two directories", got)
	}
	if filepath.Base(got[0]) != "alpha" || filepath.Base(got[1]) != "beta" {
		t.Errorf("GetDirs() = %v", got)
	}
}
