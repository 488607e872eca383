package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/service"
)

// ErrTaskIDRequired indicates no task ID was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the single task ID argument of done and rm.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	return service.ParseID(args[0])
}

// reportStoreError prints a storage failure and returns its exit code.
func reportStoreError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: store error: %v\n", err)
	return exitcode.StoreError
}

// reportTaskIDError prints a task ID parse failure and returns its exit code.
func reportTaskIDError(errOut io.Writer, err error) int {
	if errors.Is(err, ErrTaskIDRequired) {
		fmt.Fprintln(errOut, "error: task id required")
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.UserError
}
