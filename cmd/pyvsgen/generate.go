// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pyvsgen-cli/internal/batch"
	"pyvsgen-cli/internal/registry"
	"pyvsgen-cli/internal/settings"
	"pyvsgen-cli/internal/suite"
)

var (
	generateParallel bool
	generateWorkers  int
	generateFailFast bool
	generateDryRun   bool
	generateRegistry string

	generateCmd = &cobra.Command{
		Use:   "generate <config>",
		Short: "Generate solutions, projects, and interpreter registrations",
		Long: `Generate the artifacts described by a pyvsgen configuration file.

Writing happens in three sequential phases: solution files first, then
project files, then interpreter registration. With --parallel the entities
inside the first two phases are written by a worker pool; registration is
always sequential because the registry is a single shared file.

By default every failure in a phase is collected and reported together.
With --fail-fast the first failure aborts the phase.

Examples:
  pyvsgen generate pyvsgen.cfg              Generate everything
  pyvsgen generate -p --workers 8 p.cfg     Use 8 write workers
  pyvsgen generate --dry-run pyvsgen.cfg    Show the plan, write nothing`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().BoolVarP(&generateParallel, "parallel", "p", false, "write each phase through a worker pool")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 0, "worker pool size (default from settings)")
	generateCmd.Flags().BoolVar(&generateFailFast, "fail-fast", false, "abort a phase on the first failure")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "resolve and show the plan without writing")
	generateCmd.Flags().StringVar(&generateRegistry, "registry", "", "interpreter registry file (default from settings)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg := loadSettings(stderr)
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = generateParallel
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = generateWorkers
	}
	if cmd.Flags().Changed("fail-fast") {
		cfg.FailFast = generateFailFast
	}
	if generateRegistry != "" {
		cfg.RegistryPath = generateRegistry
	}

	s, err := suite.New(args[0])
	if err != nil {
		// The error is fully rendered here; the returned ExitError only
		// carries the exit code so it is not printed a second time.
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1}
	}

	plan := s.Plan()
	if generateDryRun {
		printPlan(stdout, plan)
		return nil
	}

	opts := suite.WriteOptions{
		Parallel: cfg.Parallel,
		Workers:  cfg.Workers,
		FailFast: cfg.FailFast,
		Registry: registry.New(cfg.RegistryPath),
	}
	if err := s.Write(cmd.Context(), opts); err != nil {
		printWriteFailure(stderr, err)
		return &ExitError{Code: 1}
	}

	fmt.Fprintln(stdout, SuccessStyle.Render("✓")+fmt.Sprintf(" Wrote %d solution(s), %d project(s); registered %d interpreter(s)",
		len(plan.Solutions), len(plan.Projects), len(plan.Interpreters)))
	return nil
}

// loadSettings loads the tool settings, falling back to defaults with a
// warning when the settings file cannot be read.
func loadSettings(stderr io.Writer) settings.Settings {
	cfg, err := settings.Load()
	if err != nil {
		fmt.Fprintln(stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return settings.Default()
	}
	return *cfg
}

// printPlan renders the artifacts a write would produce.
func printPlan(stdout io.Writer, plan suite.Plan) {
	fmt.Fprintln(stdout, TitleStyle.Render("Generation Plan"))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s\n", SubtitleStyle.Render(fmt.Sprintf("Solutions (%d):", len(plan.Solutions))))
	for _, sol := range plan.Solutions {
		fmt.Fprintf(stdout, "  %s\n", PathStyle.Render(sol.FileName))
	}
	fmt.Fprintf(stdout, "%s\n", SubtitleStyle.Render(fmt.Sprintf("Projects (%d):", len(plan.Projects))))
	for _, p := range plan.Projects {
		fmt.Fprintf(stdout, "  %s\n", PathStyle.Render(p.FileName))
	}
	fmt.Fprintf(stdout, "%s\n", SubtitleStyle.Render(fmt.Sprintf("Interpreters (%d):", len(plan.Interpreters))))
	for _, i := range plan.Interpreters {
		fmt.Fprintf(stdout, "  %s\n", PathStyle.Render(i.Path))
	}
}

// printWriteFailure renders a phase failure, listing each failed task when
// the batch collected several.
func printWriteFailure(stderr io.Writer, err error) {
	var batchErr *batch.Error
	if errors.As(err, &batchErr) {
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("%s: %d of %d task(s) failed",
			batchErr.Label, len(batchErr.Failures), batchErr.Total))
		for _, failure := range batchErr.Failures {
			fmt.Fprintf(stderr, "  %s %s: %v\n", ErrorStyle.Render("✗"), failure.Task, failure.Err)
		}
		return
	}
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
}

