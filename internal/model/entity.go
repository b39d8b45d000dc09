// SPDX-License-Identifier: MPL-2.0

package model

import "golang.org/x/exp/slices"

// Entity is implemented by every node of the resolved graph that
// participates in batch materialization.
type Entity interface {
	// EntityName is the display name used for deterministic batch ordering.
	EntityName() string
	// Identity is the stable deduplication key (a cleaned path).
	Identity() string
}

// ResolveContext carries the fields that cascade from Solution to Project
// to Interpreter during graph resolution.
type ResolveContext struct {
	// VSVersion is the Visual Studio version the entity is resolved under.
	VSVersion float64
}

// Dedup collapses entities with equal identity into one canonical
// representative (first occurrence wins) and returns them sorted by name,
// with identity as the tie-breaker so ordering stays deterministic when
// names collide.
func Dedup[T Entity](entities []T) []T {
	seen := make(map[string]struct{}, len(entities))
	out := make([]T, 0, len(entities))
	for _, e := range entities {
		id := e.Identity()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b T) int {
		if a.EntityName() != b.EntityName() {
			if a.EntityName() < b.EntityName() {
				return -1
			}
			return 1
		}
		if a.Identity() < b.Identity() {
			return -1
		}
		if a.Identity() > b.Identity() {
			return 1
		}
		return 0
	})
	return out
}
