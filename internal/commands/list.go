package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
	Register(&ListDoneCmd{})
}

// ListCmd implements the list command. It is also what `todo` runs with no arguments.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List open tasks" }
func (c *ListCmd) Usage() string     { return "list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks, err := svc.ListOpenTasks(ctx)
	if err != nil {
		return reportStoreError(errOut, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	output.FormatTasks(out, tasks)
	return exitcode.Success
}

// ListDoneCmd implements the list-done command.
type ListDoneCmd struct{}

func (c *ListDoneCmd) Name() string      { return "list-done" }
func (c *ListDoneCmd) Aliases() []string { return nil }
func (c *ListDoneCmd) Synopsis() string  { return "List completed tasks" }
func (c *ListDoneCmd) Usage() string     { return "list-done" }
func (c *ListDoneCmd) NeedsStore() bool  { return true }

func (c *ListDoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListDoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks, err := svc.ListCompletedTasks(ctx)
	if err != nil {
		return reportStoreError(errOut, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no completed tasks")
		}
		return exitcode.Success
	}
	output.FormatTasks(out, tasks)
	return exitcode.Success
}
