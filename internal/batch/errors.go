// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"fmt"
	"strings"
)

// TaskError attributes a materialization failure to a single task.
type TaskError struct {
	Task string
	Err  error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %v", e.Task, e.Err)
}

// Unwrap returns the underlying materialization failure.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// Error aggregates the failures of one batch.
type Error struct {
	Label    string
	Total    int
	Failures []*TaskError
}

// Error implements the error interface.
func (e *Error) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Task
	}
	return fmt.Sprintf("%s: %d of %d task(s) failed: %s", e.Label, len(e.Failures), e.Total, strings.Join(names, ", "))
}

// Unwrap exposes the individual task errors to errors.Is/As.
func (e *Error) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
