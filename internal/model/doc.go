// SPDX-License-Identifier: MPL-2.0

// Package model defines the entity graph pyvsgen resolves from a
// configuration file: Solutions own Projects, Projects reference
// Interpreters and virtual environments.
//
// Entities are constructed and mutated only during graph resolution; the
// orchestration phase treats them as immutable inputs. Deduplication across
// batches is by stable identity key (cleaned file or installation path),
// never by object reference.
package model
