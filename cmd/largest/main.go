package main

import (
	"fmt"
	"os"

	"github.com/maddes8cht/go-cli-toolbox/internal/cli"
)

// version is set at build time via -ldflags.
var version = "unreleased"

func main() {
	if err := cli.NewLargest(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
