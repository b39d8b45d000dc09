// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Task is one unit of materialization work: writing a solution or project
// file, or registering an interpreter.
type Task interface {
	// Name identifies the task in logs and error attribution.
	Name() string
	// Materialize performs the work. It either completes or fails; the
	// batch layer adds no timeout or cancellation of its own.
	Materialize() error
}

// Policy controls how a Command reacts to a task failure.
type Policy int

const (
	// CollectAll runs every task and aggregates all failures. This is the
	// default, and the only sensible policy for parallel execution.
	CollectAll Policy = iota

	// FailFast aborts the batch on the first failure. In parallel mode
	// in-flight tasks still run to completion; no new tasks start.
	FailFast
)

// Option configures a Command.
type Option func(*Command)

// WithParallel enables concurrent execution with at most workers tasks in
// flight. A non-positive worker count falls back to GOMAXPROCS. Callers
// must guarantee tasks have no write-path overlap; upstream deduplication
// by entity identity provides that for suite phases.
func WithParallel(workers int) Option {
	return func(c *Command) {
		c.parallel = true
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		c.workers = workers
	}
}

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(c *Command) {
		c.policy = p
	}
}

// WithLogger overrides the command's logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Command) {
		c.logger = logger
	}
}

// Command is one materialization phase over a fixed set of tasks.
type Command struct {
	label    string
	tasks    []Task
	parallel bool
	workers  int
	policy   Policy
	logger   *log.Logger
}

// New builds a Command. The caller supplies tasks already in the order the
// sequential mode must process them (sorted by entity name upstream).
func New(label string, tasks []Task, opts ...Option) *Command {
	c := &Command{
		label:   label,
		tasks:   tasks,
		workers: 1,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "batch",
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the batch. The completion log is emitted on every exit
// path, including early failure.
func (c *Command) Run(ctx context.Context) (err error) {
	if c.label == "" {
		return errors.New("batch: command label must not be empty")
	}
	for _, task := range c.tasks {
		if task == nil {
			return fmt.Errorf("batch %q: nil task", c.label)
		}
	}

	mode := "sequential"
	if c.parallel {
		mode = fmt.Sprintf("parallel(%d)", c.workers)
	}
	c.logger.Info("starting", "label", c.label, "tasks", len(c.tasks), "mode", mode)

	start := time.Now()
	defer func() {
		c.logger.Info("finished", "label", c.label, "duration", time.Since(start).Round(time.Millisecond), "ok", err == nil)
	}()

	if len(c.tasks) == 0 {
		return nil
	}
	if c.parallel {
		return c.runParallel(ctx)
	}
	return c.runSequential(ctx)
}

func (c *Command) runSequential(ctx context.Context) error {
	var failures []*TaskError
	for _, task := range c.tasks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("batch %q: %w", c.label, err)
		}
		if err := task.Materialize(); err != nil {
			taskErr := &TaskError{Task: task.Name(), Err: err}
			c.logger.Error("task failed", "label", c.label, "task", task.Name(), "err", err)
			if c.policy == FailFast {
				return &Error{Label: c.label, Total: len(c.tasks), Failures: []*TaskError{taskErr}}
			}
			failures = append(failures, taskErr)
		}
	}
	return c.aggregate(failures)
}

func (c *Command) runParallel(ctx context.Context) error {
	var (
		mu       sync.Mutex
		failures []*TaskError
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for _, task := range c.tasks {
		task := task
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := task.Materialize()
			if err == nil {
				return nil
			}
			c.logger.Error("task failed", "label", c.label, "task", task.Name(), "err", err)
			taskErr := &TaskError{Task: task.Name(), Err: err}
			if c.policy == FailFast {
				return taskErr
			}
			mu.Lock()
			failures = append(failures, taskErr)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var taskErr *TaskError
		if errors.As(err, &taskErr) {
			return &Error{Label: c.label, Total: len(c.tasks), Failures: []*TaskError{taskErr}}
		}
		return fmt.Errorf("batch %q: %w", c.label, err)
	}
	return c.aggregate(failures)
}

// aggregate builds the batch error from collected failures, sorted by task
// name so reporting is deterministic regardless of execution order.
func (c *Command) aggregate(failures []*TaskError) error {
	if len(failures) == 0 {
		return nil
	}
	slices.SortFunc(failures, func(a, b *TaskError) int {
		switch {
		case a.Task < b.Task:
			return -1
		case a.Task > b.Task:
			return 1
		}
		return 0
	})
	return &Error{Label: c.label, Total: len(c.tasks), Failures: failures}
}
