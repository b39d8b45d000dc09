// SPDX-License-Identifier: MPL-2.0

// Package main implements the pyvsgen command line interface. It turns an
// INI-style configuration into Visual Studio solution and project files for
// Python codebases, and registers the interpreters those projects use.
package main
