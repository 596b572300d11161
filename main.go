package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/create-01x/create-01x-project/internal/cli"
	"github.com/create-01x/create-01x-project/internal/prompt"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// The cancellation message was already printed.
		if !errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
