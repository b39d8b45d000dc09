// SPDX-License-Identifier: MPL-2.0

package writer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"pyvsgen-cli/internal/model"
)

var projectTemplate = template.Must(template.New("pyproj").Funcs(template.FuncMap{
	"esc": escapeXML,
}).Parse(`<?xml version="1.0" encoding="utf-8"?>
<Project DefaultTargets="Build" ToolsVersion="4.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <SchemaVersion>2.0</SchemaVersion>
    <ProjectGuid>{{.GUID}}</ProjectGuid>
    <Name>{{esc .Name}}</Name>
{{- if .ProjectHome}}
    <ProjectHome>{{esc .ProjectHome}}</ProjectHome>
{{- end}}
{{- if .StartupFile}}
    <StartupFile>{{esc .StartupFile}}</StartupFile>
{{- end}}
{{- if .SearchPath}}
    <SearchPath>{{esc .SearchPath}}</SearchPath>
{{- end}}
{{- if .WorkingDirectory}}
    <WorkingDirectory>{{esc .WorkingDirectory}}</WorkingDirectory>
{{- end}}
{{- if .OutputPath}}
    <OutputPath>{{esc .OutputPath}}</OutputPath>
{{- end}}
{{- if .RootNamespace}}
    <RootNamespace>{{esc .RootNamespace}}</RootNamespace>
{{- end}}
    <IsWindowsApplication>{{.IsWindowsApplication}}</IsWindowsApplication>
{{- if .InterpreterArguments}}
    <InterpreterArguments>{{esc .InterpreterArguments}}</InterpreterArguments>
{{- end}}
{{- if .SelectedInterpreter}}
    <InterpreterId>{{esc .SelectedInterpreter}}</InterpreterId>
{{- end}}
  </PropertyGroup>
{{- if .CompileFiles}}
  <ItemGroup>
{{- range .CompileFiles}}
    <Compile Include="{{esc .}}" />
{{- end}}
  </ItemGroup>
{{- end}}
{{- if .ContentFiles}}
  <ItemGroup>
{{- range .ContentFiles}}
    <Content Include="{{esc .}}" />
{{- end}}
  </ItemGroup>
{{- end}}
{{- if .Interpreters}}
  <ItemGroup>
{{- range .Interpreters}}
    <Interpreter Include="{{esc .Path}}">
      <Id>{{esc .ID}}</Id>
      <Description>{{esc .Description}}</Description>
{{- if .Version}}
      <Version>{{esc .Version}}</Version>
{{- end}}
{{- if .Arch}}
      <Architecture>{{esc .Arch}}</Architecture>
{{- end}}
    </Interpreter>
{{- end}}
  </ItemGroup>
{{- end}}
</Project>
`))

type (
	projectView struct {
		GUID                 string
		Name                 string
		ProjectHome          string
		StartupFile          string
		SearchPath           string
		WorkingDirectory     string
		OutputPath           string
		RootNamespace        string
		IsWindowsApplication bool
		InterpreterArguments string
		SelectedInterpreter  string
		CompileFiles         []string
		ContentFiles         []string
		Interpreters         []interpreterView
	}

	interpreterView struct {
		ID          string
		Path        string
		Description string
		Version     string
		Arch        string
	}
)

// WriteProject renders the .pyproj artifact for p at its FileName,
// overwriting any existing file.
func WriteProject(p *model.Project) error {
	view := projectView{
		GUID:                 "{" + GUID(p.Identity()) + "}",
		Name:                 p.Name,
		ProjectHome:          toWindowsPath(p.ProjectHome),
		StartupFile:          toWindowsPath(p.StartupFile),
		SearchPath:           joinWindowsPaths(p.SearchPath),
		WorkingDirectory:     toWindowsPath(p.WorkingDirectory),
		OutputPath:           toWindowsPath(p.OutputPath),
		RootNamespace:        p.RootNamespace,
		IsWindowsApplication: p.IsWindowsApplication,
		InterpreterArguments: strings.Join(p.InterpreterArgs, " "),
	}
	if p.SelectedInterpreter != nil {
		view.SelectedInterpreter = GUID(p.SelectedInterpreter.Identity())
	}
	for _, f := range p.CompileFiles {
		view.CompileFiles = append(view.CompileFiles, toWindowsPath(f))
	}
	for _, f := range p.ContentFiles {
		view.ContentFiles = append(view.ContentFiles, toWindowsPath(f))
	}
	for _, i := range append(append([]*model.Interpreter{}, p.Interpreters...), p.VirtualEnvironments...) {
		view.Interpreters = append(view.Interpreters, interpreterView{
			ID:          GUID(i.Identity()),
			Path:        toWindowsPath(i.Path),
			Description: i.Description,
			Version:     i.Version,
			Arch:        i.Arch,
		})
	}

	var buf bytes.Buffer
	if err := projectTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("render project %s: %w", p.Name, err)
	}
	return writeArtifact(p.FileName, buf.Bytes())
}

// joinWindowsPaths renders a search path list as the semicolon-delimited
// form MSBuild expects.
func joinWindowsPaths(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = toWindowsPath(filepath.Clean(p))
	}
	return strings.Join(out, ";")
}

// escapeXML escapes a value for embedding in the generated XML.
func escapeXML(v string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(v))
	return buf.String()
}
