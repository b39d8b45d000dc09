// SPDX-License-Identifier: MPL-2.0

// Package discovery scans a project's source tree and populates its
// compile and content file lists.
//
// Traversal is pruned by the project's directory in/ex filters and files
// are classified by the compile/content in/ex glob filters. Exclusion
// always takes precedence over inclusion.
package discovery
