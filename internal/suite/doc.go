// SPDX-License-Identifier: MPL-2.0

// Package suite resolves a pyvsgen configuration into the entity graph
// and orchestrates its materialization.
//
// Resolution walks the declared sections recursively: solutions reference
// project sections, projects reference interpreter and virtualenv
// sections. Materialization runs three strictly sequential phases (write
// solutions, write projects, register interpreters), each phase a batch
// over entities flattened, deduplicated by identity, and sorted by name.
package suite
