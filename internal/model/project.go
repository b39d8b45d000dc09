// SPDX-License-Identifier: MPL-2.0

package model

import "path/filepath"

// Project is a buildable/openable unit with source and content files,
// referencing the interpreters and virtual environments available to it.
type Project struct {
	Name             string
	FileName         string
	SearchPath       []string
	OutputPath       string
	WorkingDirectory string
	RootNamespace    string
	ProjectHome      string
	StartupFile      string

	// CompileFiles and ContentFiles hold explicit entries from the
	// configuration followed by discovered entries, in walk order.
	CompileFiles []string
	ContentFiles []string

	CompileInFilter []string
	CompileExFilter []string
	ContentInFilter []string
	ContentExFilter []string

	// Directory filters prune source-tree traversal during file discovery.
	DirectoryInFilter []string
	DirectoryExFilter []string

	IsWindowsApplication bool
	InterpreterArgs      []string

	// Interpreters is the concatenation of every interpreter discovered
	// through the project's python_interpreters references.
	Interpreters []*Interpreter

	// SelectedInterpreter is the configured python_interpreter resolution,
	// nil when the name does not resolve. An unresolved name is not an error.
	SelectedInterpreter *Interpreter

	VirtualEnvironments []*Interpreter

	// VSVersion is inherited from the owning Solution during resolution.
	VSVersion float64
}

// EntityName implements Entity.
func (p *Project) EntityName() string {
	return p.Name
}

// Identity implements Entity. Projects deduplicate by cleaned file name.
func (p *Project) Identity() string {
	return filepath.Clean(p.FileName)
}
