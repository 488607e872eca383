// Package cli maps command-line arguments onto commands and runs them.
package cli

import (
	"fmt"
	"strings"
)

// flagVerb is one switch of the flag form: `todo -a 1:Buy milk`, `todo --dl`.
type flagVerb struct {
	command  string
	takesArg bool
}

var flagVerbs = map[string]flagVerb{
	"-a":       {"add", true},
	"--add":    {"add", true},
	"-d":       {"done", true},
	"--done":   {"done", true},
	"-r":       {"rm", true},
	"--remove": {"rm", true},
	"-l":       {"list", false},
	"--list":   {"list", false},
	"-c":       {"list-done", false},
	"--dl":     {"list-done", false},
	"-h":       {"help", false},
	"--help":   {"help", false},
}

// translateFlagForm rewrites a leading flag-form switch into subcommand
// form, e.g. ["-d", "3"] -> ["done", "3"] and ["--add=1:x"] -> ["add", "1:x"].
// Remaining args are passed through for normal flag parsing.
func translateFlagForm(args []string) ([]string, error) {
	name, value, hasValue := strings.Cut(args[0], "=")

	verb, ok := flagVerbs[name]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", args[0])
	}

	rest := args[1:]
	if !verb.takesArg {
		if hasValue {
			return nil, fmt.Errorf("flag does not take a value: %s", name)
		}
		return append([]string{verb.command}, rest...), nil
	}

	if !hasValue {
		if len(rest) == 0 {
			return nil, fmt.Errorf("flag needs an argument: %s", name)
		}
		value, rest = rest[0], rest[1:]
	}
	return append([]string{verb.command, value}, rest...), nil
}
