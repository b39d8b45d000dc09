// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyvsgen-cli/internal/suite"
)

// validateCmd resolves the full entity graph of a configuration file and
// reports what generation would produce, without writing anything.
var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Validate a configuration without writing artifacts",
	Long: `Validate a pyvsgen configuration file.

The whole entity graph is resolved exactly as generation would resolve it:
every referenced section must exist, every solution must carry a Visual
Studio version, and interpreter paths are expanded against the filesystem.
The first resolution failure is reported with the offending section.

Examples:
  pyvsgen validate pyvsgen.cfg         Check a configuration
  pyvsgen validate -v pyvsgen.cfg      Check with the full error chain`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	fmt.Fprintln(stdout, TitleStyle.Render("Configuration Validation"))
	fmt.Fprintf(stdout, "Path: %s\n", PathStyle.Render(args[0]))
	fmt.Fprintln(stdout)

	s, err := suite.New(args[0])
	if err != nil {
		fmt.Fprintln(stderr, ErrorStyle.Render("✗ Invalid: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1}
	}

	plan := s.Plan()
	fmt.Fprintln(stdout, SuccessStyle.Render("✓ Valid"))
	fmt.Fprintf(stdout, "  %d solution(s), %d project(s), %d interpreter(s)\n",
		len(plan.Solutions), len(plan.Projects), len(plan.Interpreters))

	if verbose {
		for _, sol := range plan.Solutions {
			fmt.Fprintf(stdout, "  %s %s\n", SubtitleStyle.Render("solution"), PathStyle.Render(sol.FileName))
		}
		for _, p := range plan.Projects {
			selected := "(no selected interpreter)"
			if p.SelectedInterpreter != nil {
				selected = p.SelectedInterpreter.Path
			}
			fmt.Fprintf(stdout, "  %s  %s  %s\n", SubtitleStyle.Render("project"), PathStyle.Render(p.FileName), SubtitleStyle.Render(selected))
		}
		for _, i := range plan.Interpreters {
			fmt.Fprintf(stdout, "  %s %s\n", SubtitleStyle.Render("interpreter"), PathStyle.Render(i.Path))
		}
	}
	return nil
}
