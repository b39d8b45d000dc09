// SPDX-License-Identifier: MPL-2.0

// Package batch executes the materialization phases of a resolved suite.
//
// A Command wraps one phase (write solutions, write projects, register
// interpreters): a labeled set of tasks executed sequentially in the
// supplied order or in parallel through a bounded worker pool. The
// command's lifecycle is scoped: startup validation and logging on entry,
// a completion log on every exit path. Each task failure is attributed to
// the task that raised it.
package batch
