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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark an open task completed" }
func (c *DoneCmd) Usage() string     { return "done <id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return reportTaskIDError(errOut, err)
	}

	task, err := svc.CompleteTask(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fmt.Fprintf(out, "Task with ID '%d' not found\n", id)
			return exitcode.Success
		}
		return reportStoreError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task marked as done: %s\n", task)
	}
	return exitcode.Success
}
