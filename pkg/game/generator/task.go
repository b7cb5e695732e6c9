package generator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"warrengen/pkg/engine/world"
)

// Task is a level being generated on its own goroutine. Nothing about the
// level is visible until the work finishes; there is no cancellation.
type Task struct {
	group   errgroup.Group
	done    chan struct{}
	grid    *world.Grid
	summary Summary
}

// startTask runs build in the background
func startTask(build func() (*world.Grid, Summary, error)) *Task {
	t := &Task{done: make(chan struct{})}
	t.group.Go(func() error {
		defer close(t.done)
		grid, summary, err := build()
		if err != nil {
			return err
		}
		t.grid, t.summary = grid, summary
		return nil
	})
	return t
}

// Done is closed once the grid is complete
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the grid is complete and hands it over. A grid that
// fails validation is a generator bug and panics here, on the caller's
// goroutine.
func (t *Task) Wait() *world.Grid {
	if err := t.group.Wait(); err != nil {
		panic("Generated invalid grid: " + err.Error())
	}
	return t.grid
}

// WaitContext is Wait with an upper bound on how long the caller blocks.
// Generation itself keeps running if ctx ends first.
func (t *Task) WaitContext(ctx context.Context) (*world.Grid, error) {
	select {
	case <-t.done:
		return t.Wait(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Summary returns the level statistics, blocking until generation finishes
func (t *Task) Summary() Summary {
	t.Wait()
	return t.summary
}
