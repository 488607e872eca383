package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add an open task" }
func (c *AddCmd) Usage() string     { return "add <id:description>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task entry required")
		return exitcode.UserError
	}

	// Unquoted descriptions arrive split across args
	entry := strings.Join(args, " ")

	id, description, err := service.ParseEntry(entry)
	if err != nil {
		fmt.Fprintln(out, "Data should be in 'id:description' format")
		return exitcode.Success
	}

	if err := svc.AddTask(ctx, id, description); err != nil {
		if errors.Is(err, service.ErrExists) {
			fmt.Fprintf(out, "The task with ID '%d' already exists\n", id)
			return exitcode.Success
		}
		return reportStoreError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task added: %d -> %s\n", id, description)
	}
	return exitcode.Success
}
