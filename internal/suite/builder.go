// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"pyvsgen-cli/internal/config"
	"pyvsgen-cli/internal/discovery"
	"pyvsgen-cli/internal/issue"
	"pyvsgen-cli/internal/model"
)

const (
	// rootSection is the top-level section carrying the root key.
	rootSection = "pyvsgen"

	// solutionPrefix marks the sections resolved into Solutions.
	solutionPrefix = "pyvsgen.solution."
)

// Suite is the resolved entity graph of one configuration file.
type Suite struct {
	solutions []*model.Solution
	logger    *log.Logger
}

// New loads the configuration file at path and resolves the full entity
// graph. Any missing required section or field aborts the build with an
// error naming the offending section; nothing is written.
func New(path string) (*Suite, error) {
	store, err := config.Load(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			Wrap(err).
			BuildError()
	}
	return build(store)
}

// build resolves the graph from an already loaded store.
func build(store *config.Store) (*Suite, error) {
	s := &Suite{
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "suite",
		}),
	}

	// Resolve the root path relative to the configuration file's own
	// location and inject it back so every later relative lookup uses it.
	root := store.GetString(rootSection, "root", "")
	if root == "" {
		return nil, issue.NewErrorContext().
			WithOperation("resolve root path").
			WithSection(rootSection).
			WithSuggestion("Add a root key to the [pyvsgen] section").
			BuildError()
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(store.Path()), root)
	}
	store.SetRoot(root)

	for _, section := range store.Sections() {
		if !strings.HasPrefix(section, solutionPrefix) {
			continue
		}
		solution, err := s.buildSolution(store, section)
		if err != nil {
			return nil, err
		}
		s.solutions = append(s.solutions, solution)
	}

	return s, nil
}

// Solutions returns the resolved solutions in declaration order.
func (s *Suite) Solutions() []*model.Solution {
	return s.solutions
}

// buildSolution resolves one solution section.
func (s *Suite) buildSolution(store *config.Store, section string) (*model.Solution, error) {
	if err := store.CheckSection(section); err != nil {
		return nil, resolutionError("resolve solution", section, err)
	}

	sol := &model.Solution{}
	sol.Name = store.GetString(section, "name", sol.Name)
	sol.FileName = store.GetFile(section, "filename", sol.FileName)

	version, err := store.GetFloat(section, "visual_studio_version", 0)
	if err != nil {
		return nil, resolutionError("resolve solution", section, err)
	}
	if version == 0 {
		return nil, issue.NewErrorContext().
			WithOperation("resolve solution").
			WithSection(section).
			WithSuggestion("Add a visual_studio_version key to the section").
			BuildError()
	}
	sol.VSVersion = version

	rctx := model.ResolveContext{VSVersion: sol.VSVersion}
	for _, projectSection := range store.GetList(section, "projects", nil) {
		project, err := s.buildProject(store, projectSection, rctx)
		if err != nil {
			return nil, err
		}
		sol.Projects = append(sol.Projects, project)
	}

	return sol, nil
}

// buildProject resolves one project section under the given context.
func (s *Suite) buildProject(store *config.Store, section string, rctx model.ResolveContext) (*model.Project, error) {
	if err := store.CheckSection(section); err != nil {
		return nil, resolutionError("resolve project", section, err)
	}

	p := &model.Project{VSVersion: rctx.VSVersion}
	p.Name = store.GetString(section, "name", p.Name)
	p.FileName = store.GetFile(section, "filename", p.FileName)
	p.SearchPath = store.GetDirs(section, "search_path", p.SearchPath)
	p.OutputPath = store.GetDir(section, "output_path", p.OutputPath)
	p.WorkingDirectory = store.GetDir(section, "working_directory", p.WorkingDirectory)
	p.RootNamespace = store.GetString(section, "root_namespace", p.RootNamespace)
	p.ProjectHome = store.GetDir(section, "project_home", p.ProjectHome)
	p.StartupFile = store.GetFile(section, "startup_file", p.StartupFile)
	p.CompileFiles = store.GetList(section, "compile_files", p.CompileFiles)
	p.ContentFiles = store.GetList(section, "content_files", p.ContentFiles)
	p.CompileInFilter = store.GetList(section, "compile_in_filter", p.CompileInFilter)
	p.CompileExFilter = store.GetList(section, "compile_ex_filter", p.CompileExFilter)
	p.ContentInFilter = store.GetList(section, "content_in_filter", p.ContentInFilter)
	p.ContentExFilter = store.GetList(section, "content_ex_filter", p.ContentExFilter)
	p.DirectoryInFilter = store.GetDirs(section, "directory_in_filter", p.DirectoryInFilter)
	p.DirectoryExFilter = store.GetDirs(section, "directory_ex_filter", p.DirectoryExFilter)
	p.InterpreterArgs = store.GetList(section, "python_interpreter_args", p.InterpreterArgs)

	isWindows, err := store.GetBool(section, "is_windows_application", p.IsWindowsApplication)
	if err != nil {
		return nil, resolutionError("resolve project", section, err)
	}
	p.IsWindowsApplication = isWindows

	// Merge interpreters from every referenced section and select the
	// configured one. Every reference resolves; deduplication happens only
	// when batches are flattened.
	selectedName := store.GetString(section, "python_interpreter", "")
	bySection := make(map[string][]*model.Interpreter)
	for _, interpreterSection := range store.GetList(section, "python_interpreters", nil) {
		interpreters, err := s.buildInterpreters(store, interpreterSection, rctx)
		if err != nil {
			return nil, err
		}
		bySection[interpreterSection] = interpreters
		p.Interpreters = append(p.Interpreters, interpreters...)
	}
	if candidates := bySection[selectedName]; len(candidates) > 0 {
		p.SelectedInterpreter = candidates[0]
	} else if selectedName != "" {
		// Unresolved selection is not an error: the project simply has no
		// selected interpreter.
		s.logger.Warn("python_interpreter did not resolve", "section", section, "name", selectedName)
	}

	for _, venvSection := range store.GetList(section, "python_virtual_environments", nil) {
		environments, err := s.buildVirtualEnvironments(store, venvSection, rctx)
		if err != nil {
			return nil, err
		}
		p.VirtualEnvironments = append(p.VirtualEnvironments, environments...)
	}

	rootPath := store.GetDir(section, "root_path", "")
	if err := discovery.InsertFiles(p, rootPath); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("resolve project").
			WithSection(section).
			WithResource(rootPath).
			Wrap(err).
			BuildError()
	}

	return p, nil
}

// buildInterpreters resolves one interpreter section into the
// interpreters discovered under its interpreter_paths.
func (s *Suite) buildInterpreters(store *config.Store, section string, rctx model.ResolveContext) ([]*model.Interpreter, error) {
	if err := store.CheckSection(section); err != nil {
		return nil, resolutionError("resolve interpreter", section, err)
	}

	var interpreters []*model.Interpreter
	for _, dir := range store.GetDirs(section, "interpreter_paths", nil) {
		interpreters = append(interpreters, model.NewFromInstallation(dir, rctx))
	}
	for _, i := range interpreters {
		i.Description = store.GetString(section, "description", i.Description)
		i.Arch = store.GetString(section, "arch", i.Arch)
	}
	return interpreters, nil
}

// buildVirtualEnvironments resolves one virtualenv section into
// environment-flavored interpreter entries.
func (s *Suite) buildVirtualEnvironments(store *config.Store, section string, rctx model.ResolveContext) ([]*model.Interpreter, error) {
	if err := store.CheckSection(section); err != nil {
		return nil, resolutionError("resolve virtual environment", section, err)
	}

	var environments []*model.Interpreter
	for _, dir := range store.GetDirs(section, "environment_paths", nil) {
		environments = append(environments, model.NewFromVirtualEnv(dir, rctx))
	}
	for _, e := range environments {
		e.Description = store.GetString(section, "description", e.Description)
		e.Arch = store.GetString(section, "arch", e.Arch)
	}
	return environments, nil
}

// resolutionError wraps a section-level failure as a configuration error.
func resolutionError(operation, section string, err error) error {
	return issue.NewErrorContext().
		WithOperation(operation).
		WithSection(section).
		WithSuggestion("Check the section name against the declared sections").
		Wrap(err).
		BuildError()
}
