// Command lipsum replaces the words of a document with themed stand-ins and
// restores them from a stored mapping.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/lipsum/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// ExitErrors have already been reported by the command.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
