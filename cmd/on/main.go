package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/maddes8cht/go-cli-toolbox/internal/cli"
)

// version is set at build time via -ldflags.
var version = "unreleased"

func main() {
	err := cli.NewOn(version).Execute()
	if err == nil {
		return
	}

	// The scheduled command's exit code becomes ours.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}

	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	os.Exit(1)
}
