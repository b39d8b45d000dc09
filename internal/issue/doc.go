// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing errors for pyvsgen.
//
// Configuration and materialization failures are surfaced to the user as
// ActionableError values that carry the operation that failed, the
// configuration section or filesystem resource involved, and suggestions
// for fixing the problem. The CLI layer decides how to render them.
package issue
