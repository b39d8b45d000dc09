// SPDX-License-Identifier: MPL-2.0

// Package writer serializes resolved Solutions and Projects into the
// artifacts the IDE consumes (.sln and .pyproj files).
//
// Writes are idempotent: parent directories are created as needed and
// existing files are overwritten. Project GUIDs are derived
// deterministically from entity identity so regeneration is stable.
package writer
