// SPDX-License-Identifier: MPL-2.0

// Package settings handles pyvsgen's own tool configuration using Viper:
// batch execution defaults and the interpreter registry location. Values
// come from an optional settings file in the platform config directory,
// overridden by PYVSGEN_* environment variables.
package settings
