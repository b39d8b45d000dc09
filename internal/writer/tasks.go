// SPDX-License-Identifier: MPL-2.0

package writer

import (
	"pyvsgen-cli/internal/batch"
	"pyvsgen-cli/internal/model"
)

type (
	solutionTask struct {
		solution *model.Solution
	}

	projectTask struct {
		project *model.Project
	}
)

func (t *solutionTask) Name() string {
	return t.solution.EntityName()
}

func (t *solutionTask) Materialize() error {
	return WriteSolution(t.solution)
}

func (t *projectTask) Name() string {
	return t.project.EntityName()
}

func (t *projectTask) Materialize() error {
	return WriteProject(t.project)
}

// SolutionTasks adapts solutions to batch tasks, preserving order.
func SolutionTasks(solutions []*model.Solution) []batch.Task {
	tasks := make([]batch.Task, len(solutions))
	for i, s := range solutions {
		tasks[i] = &solutionTask{solution: s}
	}
	return tasks
}

// ProjectTasks adapts projects to batch tasks, preserving order.
func ProjectTasks(projects []*model.Project) []batch.Task {
	tasks := make([]batch.Task, len(projects))
	for i, p := range projects {
		tasks[i] = &projectTask{project: p}
	}
	return tasks
}
