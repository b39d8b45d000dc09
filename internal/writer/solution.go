// SPDX-License-Identifier: MPL-2.0

package writer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"pyvsgen-cli/internal/model"
)

// ptvsProjectTypeGUID is the Visual Studio project-type identifier for
// Python Tools projects, fixed across all generated solutions.
const ptvsProjectTypeGUID = "888888A0-9F3D-457C-B088-3A5042F75D52"

var solutionTemplate = template.Must(template.New("sln").Parse(
	"Microsoft Visual Studio Solution File, Format Version 12.00\r\n" +
		"# Visual Studio {{.VSVersion}}\r\n" +
		"{{range .Projects}}Project(\"{" + ptvsProjectTypeGUID + "}\") = \"{{.Name}}\", \"{{.Path}}\", \"{{.GUID}}\"\r\nEndProject\r\n{{end}}" +
		"Global\r\n" +
		"\tGlobalSection(SolutionConfigurationPlatforms) = preSolution\r\n" +
		"\t\tDebug|Any CPU = Debug|Any CPU\r\n" +
		"\t\tRelease|Any CPU = Release|Any CPU\r\n" +
		"\tEndGlobalSection\r\n" +
		"EndGlobal\r\n"))

type (
	solutionView struct {
		VSVersion string
		Projects  []solutionProjectView
	}

	solutionProjectView struct {
		Name string
		Path string
		GUID string
	}
)

// WriteSolution renders the .sln artifact for s at its FileName,
// overwriting any existing file.
func WriteSolution(s *model.Solution) error {
	view := solutionView{
		VSVersion: formatVersion(s.VSVersion),
	}
	slnDir := filepath.Dir(s.FileName)
	for _, p := range s.Projects {
		rel, err := filepath.Rel(slnDir, p.FileName)
		if err != nil {
			// Projects on another volume keep their absolute path.
			rel = p.FileName
		}
		view.Projects = append(view.Projects, solutionProjectView{
			Name: p.Name,
			Path: toWindowsPath(rel),
			GUID: "{" + GUID(p.Identity()) + "}",
		})
	}

	var buf bytes.Buffer
	if err := solutionTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("render solution %s: %w", s.Name, err)
	}
	return writeArtifact(s.FileName, buf.Bytes())
}

// formatVersion renders a Visual Studio version number, keeping the
// decimal only when the version has a minor part (14.0 -> "14",
// 14.5 -> "14.5").
func formatVersion(v float64) string {
	out := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(out, ".0")
}

// toWindowsPath converts a path to the backslash form Visual Studio
// expects, regardless of the platform generating it.
func toWindowsPath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "/", "\\")
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
