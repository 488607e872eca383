// Package filestore implements service.Service on two local key-value files:
// one for open tasks and one for completed tasks.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/kvstore"
	"todo/internal/logging"
	"todo/internal/service"
)

const (
	// openSchema: task ID -> description.
	openSchema = `{
  "type": "object",
  "propertyNames": {"pattern": "^[1-9][0-9]*$"},
  "additionalProperties": {"type": "string"}
}`

	// doneSchema: task ID -> every description completed under that ID.
	doneSchema = `{
  "type": "object",
  "propertyNames": {"pattern": "^[1-9][0-9]*$"},
  "additionalProperties": {"type": "array", "items": {"type": "string"}}
}`
)

// Client implements service.Service over an open store and a done store.
type Client struct {
	open   *kvstore.Store
	done   *kvstore.Store
	logger *log.Logger
}

// New opens both task files named by cfg.
// The caller must Close the client to release the stores.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if err := cfg.EnsureDir(); err != nil {
		return nil, err
	}

	open, err := kvstore.Open(cfg.OpenPath(), kvstore.Options{Schema: openSchema, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	done, err := kvstore.Open(cfg.DonePath(), kvstore.Options{Schema: doneSchema, Logger: logger})
	if err != nil {
		_ = open.Close()
		return nil, fmt.Errorf("open done store: %w", err)
	}

	return &Client{open: open, done: done, logger: logger}, nil
}

// AddTask inserts an open task.
func (c *Client) AddTask(ctx context.Context, id int, description string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := service.Key(id)
	if c.open.Exists(key) {
		return fmt.Errorf("task %d: %w", id, service.ErrExists)
	}
	if err := c.open.Set(key, description); err != nil {
		return fmt.Errorf("add task %d: %w", id, err)
	}

	c.logger.Debug("task added", "id", id)
	return nil
}

// CompleteTask appends the task to the done store, then removes it from the
// open store.
func (c *Client) CompleteTask(ctx context.Context, id int) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}

	task, err := c.lookup(id)
	if err != nil {
		return service.Task{}, err
	}

	var history []string
	if _, err := c.done.Get(task.Key(), &history); err != nil {
		return service.Task{}, err
	}
	history = append(history, task.Description)

	if err := c.done.Set(task.Key(), history); err != nil {
		return service.Task{}, fmt.Errorf("complete task %d: %w", id, err)
	}
	if _, err := c.open.Remove(task.Key()); err != nil {
		return service.Task{}, fmt.Errorf("complete task %d: %w", id, err)
	}

	c.logger.Debug("task completed", "id", id, "completions", len(history))
	return task, nil
}

// RemoveTask deletes an open task.
func (c *Client) RemoveTask(ctx context.Context, id int) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}

	task, err := c.lookup(id)
	if err != nil {
		return service.Task{}, err
	}
	if _, err := c.open.Remove(task.Key()); err != nil {
		return service.Task{}, fmt.Errorf("remove task %d: %w", id, err)
	}

	c.logger.Debug("task removed", "id", id)
	return task, nil
}

// ListOpenTasks returns open tasks by ascending ID.
func (c *Client) ListOpenTasks(ctx context.Context) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids, err := sortedIDs(c.open)
	if err != nil {
		return nil, err
	}

	result := make([]service.Task, 0, len(ids))
	for _, id := range ids {
		task, err := c.lookup(id)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, nil
}

// ListCompletedTasks returns one entry per completion, by ascending ID.
func (c *Client) ListCompletedTasks(ctx context.Context) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids, err := sortedIDs(c.done)
	if err != nil {
		return nil, err
	}

	var result []service.Task
	for _, id := range ids {
		var history []string
		if _, err := c.done.Get(service.Key(id), &history); err != nil {
			return nil, err
		}
		for _, description := range history {
			result = append(result, service.Task{ID: id, Description: description})
		}
	}
	return result, nil
}

// Close flushes and closes both stores.
func (c *Client) Close() error {
	return errors.Join(c.open.Close(), c.done.Close())
}

// lookup returns the open task with the given id or service.ErrNotFound.
func (c *Client) lookup(id int) (service.Task, error) {
	var description string
	ok, err := c.open.Get(service.Key(id), &description)
	if err != nil {
		return service.Task{}, err
	}
	if !ok {
		return service.Task{}, fmt.Errorf("task %d: %w", id, service.ErrNotFound)
	}
	return service.Task{ID: id, Description: description}, nil
}

// sortedIDs returns the store keys as task IDs in numeric order.
func sortedIDs(s *kvstore.Store) ([]int, error) {
	keys := s.Keys()
	ids := make([]int, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%s: bad task id %q", s.Path(), k)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
