// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
)

// SectionNotFoundError reports a reference to a configuration section that
// does not exist in the loaded file. Available carries the section names
// that do exist so the user can spot typos.
type SectionNotFoundError struct {
	Requested string
	Available []string
}

// Error implements the error interface.
func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section [%s] not found in [%s]", e.Requested, strings.Join(e.Available, ", "))
}

// ConversionError reports a configuration value that exists but cannot be
// coerced to the requested type.
type ConversionError struct {
	Section string
	Key     string
	Value   string
	Cause   error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("option %q in section [%s]: cannot convert %q: %v", e.Key, e.Section, e.Value, e.Cause)
}

// Unwrap returns the underlying conversion failure.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}
