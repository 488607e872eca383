package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"remove"} }
func (c *RmCmd) Synopsis() string  { return "Delete an open task" }
func (c *RmCmd) Usage() string     { return "rm <id>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return reportTaskIDError(errOut, err)
	}

	task, err := svc.RemoveTask(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fmt.Fprintf(out, "Task with ID '%d' not found\n", id)
			return exitcode.Success
		}
		return reportStoreError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task removed: %s\n", task)
	}
	return exitcode.Success
}
