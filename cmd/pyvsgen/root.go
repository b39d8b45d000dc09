// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"pyvsgen-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output.
	verbose bool

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "pyvsgen",
		Short: "Generate Visual Studio artifacts for Python codebases",
		Long: TitleStyle.Render("pyvsgen") + SubtitleStyle.Render(" - Generate Visual Studio artifacts for Python codebases") + `

pyvsgen reads one INI-style configuration file describing solutions,
projects, Python interpreter installations and virtual environments, and
materializes the corresponding .sln and .pyproj files. Interpreters are
recorded in a local registry so the IDE can offer them as environments.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Write a pyvsgen.cfg describing your solutions and projects
  2. Check it with: pyvsgen validate pyvsgen.cfg
  3. Generate with:  pyvsgen generate pyvsgen.cfg

` + SubtitleStyle.Render("Examples:") + `
  pyvsgen validate pyvsgen.cfg        Resolve the graph without writing
  pyvsgen generate pyvsgen.cfg        Write solutions, projects, registry
  pyvsgen generate -p pyvsgen.cfg     Write with a parallel worker pool`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It only needs to happen once to the rootCmd.
func Execute() {
	// fang overrides rootCmd.Version, so the version goes in via option.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render their markdown form through glamour when possible; in verbose mode
// the full error chain is shown instead.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if verboseMode {
			return ae.Format(true)
		}
		if rendered, rerr := glamour.Render(ae.Markdown(), "auto"); rerr == nil {
			return rendered
		}
		return ae.Format(false)
	}
	return err.Error()
}
