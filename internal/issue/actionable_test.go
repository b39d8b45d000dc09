// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "with section",
			err: &ActionableError{
				Operation: "resolve solution",
				Section:   "pyvsgen.solution.demo",
			},
			want: "failed to resolve solution: section [pyvsgen.solution.demo]",
		},
		{
			name: "with resource and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "/tmp/pyvsgen.cfg",
				Cause:     errors.New("no such file"),
			},
			want: "failed to load configuration: /tmp/pyvsgen.cfg: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContextBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("resolve project").
		WithSection("pyvsgen.project.demo").
		WithSuggestion("Check the projects key in the solution section").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if err.Operation != "resolve project" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Section != "pyvsgen.project.demo" {
		t.Errorf("Section = %q", err.Section)
	}
	if len(err.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithSection("pyvsgen").BuildError(); got != nil {
		t.Errorf("expected nil error without operation, got %v", got)
	}
}

func TestFormatVerboseIncludesChain(t *testing.T) {
	inner := errors.New("inner")
	wrapped := fmt.Errorf("outer: %w", inner)
	err := &ActionableError{
		Operation:   "write projects",
		Suggestions: []string{"Check file permissions"},
		Cause:       wrapped,
	}

	out := err.Format(true)
	if !strings.Contains(out, "Error chain:") {
		t.Error("verbose format should include the error chain")
	}
	if !strings.Contains(out, "2. inner") {
		t.Errorf("verbose format should include unwrapped causes: %s", out)
	}
	if !strings.Contains(out, "• Check file permissions") {
		t.Error("format should include suggestions")
	}

	brief := err.Format(false)
	if strings.Contains(brief, "Error chain:") {
		t.Error("non-verbose format should not include the error chain")
	}
}

func TestMarkdownRendering(t *testing.T) {
	err := &ActionableError{
		Operation:   "register interpreters",
		Resource:    "/opt/python39",
		Suggestions: []string{"Verify the interpreter path exists"},
		Cause:       errors.New("permission denied"),
	}

	md := err.Markdown()
	for _, want := range []string{
		"# Failed to register interpreters",
		"`/opt/python39`",
		"## Things you can try",
		"- Verify the interpreter path exists",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}
}
