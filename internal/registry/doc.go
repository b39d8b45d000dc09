// SPDX-License-Identifier: MPL-2.0

// Package registry records resolved interpreters in a host-wide registry
// file so the IDE can list them.
//
// The registry is a TOML document keyed by interpreter identity.
// Re-registration with the same identity replaces the existing entry, so
// registering is idempotent. Writes go through a temp file and rename.
package registry
