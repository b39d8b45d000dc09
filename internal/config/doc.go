// SPDX-License-Identifier: MPL-2.0

// Package config provides the typed accessor layer over pyvsgen
// configuration files.
//
// A pyvsgen configuration is a sectioned key–value file ([pyvsgen],
// [pyvsgen.solution.*], [pyvsgen.project.*], [pyvsgen.interpreter.*],
// [pyvsgen.virtualenv.*]). The Store wraps the parsed file and exposes
// typed getters with caller-supplied fallbacks, plus path-aware getters
// that resolve values against the configured root directory.
package config
