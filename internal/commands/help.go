package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	// Registry lists the commands to describe. Nil means DefaultRegistry.
	Registry *Registry
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	registry := c.Registry
	if registry == nil {
		registry = DefaultRegistry
	}

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  todo                          List open tasks")
	for _, cmd := range registry.All() {
		fmt.Fprintf(out, "  todo %-25s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Flag form:
  -a, --add <id:description>    Same as add
  -d, --done <id>               Same as done
  -r, --remove <id>             Same as rm
  -l, --list                    Same as list
  -c, --dl                      Same as list-done
  -h, --help                    Same as help

Common flags:
  --dir <path>     Directory holding cli_task.db and done.db
  --config <file>  Config file (TOML or YAML)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
