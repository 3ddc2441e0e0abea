package main

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// splitCommand turns a configured command line into an argv. Fields are
// whitespace-separated; there is no shell quoting. A blank command line
// yields nil.
func splitCommand(cmdline string) []string {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// serverArgv builds the argv handed to exec when replacing this process
// with the server binary.
func serverArgv(binary string, extra []string) []string {
	return append([]string{binary}, extra...)
}

// runTests runs the configured test command with output streamed to the
// container log. The caller decides what a failure means.
func runTests(ctx context.Context, cmdline string) error {
	argv := splitCommand(cmdline)
	if len(argv) == 0 {
		return nil
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
