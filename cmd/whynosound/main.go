package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Exit codes: 0 when the audio system is healthy, 1 when errors or warnings
// were diagnosed, 2 for internal faults, bad usage, or broken configuration.
const (
	exitIssuesFound = 1
	exitInternal    = 2
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errIssuesFound) {
			os.Exit(exitIssuesFound)
		}
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitInternal)
	}
}
