// Command moodmate classifies a free-text mood, recommends matching tracks and
// writes a short encouraging quote. It runs one-shot subcommands or serves the
// same operations over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
