// SPDX-License-Identifier: MPL-2.0

package model

import "path/filepath"

// Solution is the top-level container grouping one or more Projects for
// the IDE. Projects keeps declaration order from the configuration.
type Solution struct {
	Name      string
	FileName  string
	VSVersion float64
	Projects  []*Project
}

// EntityName implements Entity.
func (s *Solution) EntityName() string {
	return s.Name
}

// Identity implements Entity. Solutions deduplicate by cleaned file name.
func (s *Solution) Identity() string {
	return filepath.Clean(s.FileName)
}
