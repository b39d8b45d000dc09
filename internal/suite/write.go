// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"context"

	"pyvsgen-cli/internal/batch"
	"pyvsgen-cli/internal/model"
	"pyvsgen-cli/internal/registry"
	"pyvsgen-cli/internal/writer"
)

// WriteOptions configures the materialization phases.
type WriteOptions struct {
	// Parallel runs the write phases through a worker pool. Entities are
	// deduplicated by identity upstream, so no two tasks share a write path.
	Parallel bool
	// Workers bounds the pool when Parallel is set.
	Workers int
	// FailFast aborts a batch on the first failure instead of collecting
	// every failure.
	FailFast bool
	// Registry receives interpreter registrations.
	Registry *registry.Registry
}

// Plan describes what Write would materialize, collapsed by identity the
// same way the write phases collapse their batches.
type Plan struct {
	Solutions    []*model.Solution
	Projects     []*model.Project
	Interpreters []*model.Interpreter
}

// Plan returns the deduplicated entities of each write phase without
// touching the filesystem.
func (s *Suite) Plan() Plan {
	solutions := model.Dedup(s.solutions)
	projects := s.flattenProjects(solutions)
	return Plan{
		Solutions:    solutions,
		Projects:     projects,
		Interpreters: s.flattenInterpreters(projects),
	}
}

// Write materializes the suite in three strictly sequential phases:
// solutions, then projects, then interpreter registration. A failing phase
// stops the ones after it.
func (s *Suite) Write(ctx context.Context, opts WriteOptions) error {
	policy := batch.CollectAll
	if opts.FailFast {
		policy = batch.FailFast
	}
	writeOpts := []batch.Option{batch.WithPolicy(policy)}
	if opts.Parallel {
		writeOpts = append(writeOpts, batch.WithParallel(opts.Workers))
	}

	plan := s.Plan()
	if err := batch.New("Writing solutions", writer.SolutionTasks(plan.Solutions), writeOpts...).Run(ctx); err != nil {
		return err
	}

	if err := batch.New("Writing projects", writer.ProjectTasks(plan.Projects), writeOpts...).Run(ctx); err != nil {
		return err
	}

	// Registration stays sequential: the registry file is one shared
	// resource.
	return batch.New("Registering interpreters", opts.Registry.Tasks(plan.Interpreters),
		batch.WithPolicy(policy)).Run(ctx)
}

// flattenProjects collects every project referenced by the solutions,
// collapsed by identity and sorted by name.
func (s *Suite) flattenProjects(solutions []*model.Solution) []*model.Project {
	var projects []*model.Project
	for _, sol := range solutions {
		projects = append(projects, sol.Projects...)
	}
	return model.Dedup(projects)
}

// flattenInterpreters collects every interpreter referenced by the
// projects, collapsed by identity and sorted by name.
func (s *Suite) flattenInterpreters(projects []*model.Project) []*model.Interpreter {
	var interpreters []*model.Interpreter
	for _, p := range projects {
		interpreters = append(interpreters, p.Interpreters...)
	}
	return model.Dedup(interpreters)
}
