// Command wikikit serves wiki pages with the client-side helpers applied on
// the server, and exposes the URL and validation helpers on the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	return 1
}

// exitError ends the process with code without printing anything; the
// command has already written its result.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
