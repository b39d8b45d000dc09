// SPDX-License-Identifier: MPL-2.0

package model

import (
	"path/filepath"
	"testing"

	"pyvsgen-cli/internal/testutil"
)

func TestDedupCollapsesByIdentity(t *testing.T) {
	a1 := &Project{Name: "alpha", FileName: "out/alpha.pyproj"}
	a2 := &Project{Name: "alpha", FileName: "out/sub/../alpha.pyproj"}
	b := &Project{Name: "beta", FileName: "out/beta.pyproj"}

	got := Dedup([]*Project{b, a1, a2})
	if len(got) != 2 {
		t.Fatalf("Dedup() kept %d entities, want 2", len(got))
	}
	// Sorted by name, first occurrence is the canonical representative.
	if got[0] != a1 {
		t.Errorf("expected a1 as canonical alpha, got %+v", got[0])
	}
	if got[1] != b {
		t.Errorf("expected beta second, got %+v", got[1])
	}
}

func TestDedupDistinctIdentities(t *testing.T) {
	i1 := &Interpreter{Path: "/opt/py39", Description: "Python 3.9"}
	i2 := &Interpreter{Path: "/opt/py311", Description: "Python 3.11"}

	got := Dedup([]*Interpreter{i2, i1})
	if len(got) != 2 {
		t.Fatalf("Dedup() kept %d entities, want 2", len(got))
	}
	if got[0] != i2 || got[1] != i1 {
		t.Errorf("expected name order [3.11 3.9], got [%s %s]", got[0].Description, got[1].Description)
	}
}

func TestSolutionIdentityIsCleanedFileName(t *testing.T) {
	s := &Solution{Name: "demo", FileName: "out//./demo.sln"}
	if got := s.Identity(); got != filepath.Clean("out/demo.sln") {
		t.Errorf("Identity() = %q", got)
	}
}

func TestNewFromInstallation(t *testing.T) {
	ctx := ResolveContext{VSVersion: 14.0}
	i := NewFromInstallation("/opt/python39/", ctx)

	if i.VSVersion != 14.0 {
		t.Errorf("VSVersion = %v, want 14.0 from context", i.VSVersion)
	}
	if i.IsVirtualEnv {
		t.Error("installation interpreter should not be flagged as virtualenv")
	}
	if i.Description != "python39" {
		t.Errorf("Description = %q, want python39", i.Description)
	}
}

func TestNewFromVirtualEnvReadsVersion(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "pyvenv.cfg"),
		"home = /usr/bin\nversion = 3.11.4\n")

	i := NewFromVirtualEnv(dir, ResolveContext{VSVersion: 15.0})
	if !i.IsVirtualEnv {
		t.Error("expected IsVirtualEnv")
	}
	if i.Version != "3.11.4" {
		t.Errorf("Version = %q, want 3.11.4", i.Version)
	}
}

func TestNewFromVirtualEnvWithoutConfig(t *testing.T) {
	i := NewFromVirtualEnv(t.TempDir(), ResolveContext{})
	if i.Version != "" {
		t.Errorf("Version = %q, want empty without pyvenv.cfg", i.Version)
	}
}
