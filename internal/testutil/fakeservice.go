// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu   sync.RWMutex
	open map[int]string
	done map[int][]string

	// Closed is set once Close has been called.
	Closed bool

	// Error injection for testing
	AddTaskErr            error
	CompleteTaskErr       error
	RemoveTaskErr         error
	ListOpenTasksErr      error
	ListCompletedTasksErr error
	CloseErr              error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		open: make(map[int]string),
		done: make(map[int][]string),
	}
}

// AddOpen seeds an open task.
func (f *FakeService) AddOpen(id int, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open[id] = description
}

// AddDone seeds a completion.
func (f *FakeService) AddDone(id int, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done[id] = append(f.done[id], description)
}

// Open returns the open description for id.
func (f *FakeService) Open(id int) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	d, ok := f.open[id]
	return d, ok
}

// Done returns the completions recorded for id.
func (f *FakeService) Done(id int) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.done[id]...)
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, id int, description string) error {
	if f.AddTaskErr != nil {
		return f.AddTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.open[id]; ok {
		return fmt.Errorf("task %d: %w", id, service.ErrExists)
	}
	f.open[id] = description
	return nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, id int) (service.Task, error) {
	if f.CompleteTaskErr != nil {
		return service.Task{}, f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	description, ok := f.open[id]
	if !ok {
		return service.Task{}, fmt.Errorf("task %d: %w", id, service.ErrNotFound)
	}
	f.done[id] = append(f.done[id], description)
	delete(f.open, id)
	return service.Task{ID: id, Description: description}, nil
}

// RemoveTask implements service.Service.
func (f *FakeService) RemoveTask(ctx context.Context, id int) (service.Task, error) {
	if f.RemoveTaskErr != nil {
		return service.Task{}, f.RemoveTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	description, ok := f.open[id]
	if !ok {
		return service.Task{}, fmt.Errorf("task %d: %w", id, service.ErrNotFound)
	}
	delete(f.open, id)
	return service.Task{ID: id, Description: description}, nil
}

// ListOpenTasks implements service.Service.
func (f *FakeService) ListOpenTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListOpenTasksErr != nil {
		return nil, f.ListOpenTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []service.Task
	for _, id := range sortedKeys(f.open) {
		result = append(result, service.Task{ID: id, Description: f.open[id]})
	}
	return result, nil
}

// ListCompletedTasks implements service.Service.
func (f *FakeService) ListCompletedTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListCompletedTasksErr != nil {
		return nil, f.ListCompletedTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []service.Task
	for _, id := range sortedKeys(f.done) {
		for _, description := range f.done[id] {
			result = append(result, service.Task{ID: id, Description: description})
		}
	}
	return result, nil
}

// Close implements service.Service.
func (f *FakeService) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return f.CloseErr
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
