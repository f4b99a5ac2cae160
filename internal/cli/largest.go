package cli

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/maddes8cht/go-cli-toolbox/internal/integration"
	"github.com/maddes8cht/go-cli-toolbox/internal/largest"
)

// Largest is the command-line interface of the largest tool.
type Largest struct {
	version string
}

// NewLargest creates a new largest CLI with the given version.
func NewLargest(version string) Largest {
	return Largest{version: version}
}

// largestOptions holds the output-related flags of largest.
type largestOptions struct {
	Bare        bool
	Relative    bool
	Progress    bool
	Verbose     bool
	Version     bool
	Integration bool
}

func largestHelp() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		largest lists the largest files in a directory tree.

		Usage:

			largest [flags] [path] [filemask]

		Positional Arguments:
		  path                   Directory to scan. Defaults to the current directory.
		  filemask               Wildcard filename filter: '*' matches any run of characters,
		                         '?' matches exactly one. Case-insensitive. Defaults to '*'.

		Malformed or out-of-range values for --num and --depth silently fall
		back to their defaults instead of aborting. Unreadable directories and
		files are counted and skipped; only an unreadable scan root is fatal.

		The '-i' flag prints a zsh integration snippet that pipes the output
		through 'fzf' for interactive selection.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c Largest) Execute() error {
	var (
		opts     largestOptions
		numStr   string
		depthStr string
	)

	pflag.StringVarP(&numStr, "num", "n", "50", "Number of largest files to list (-1 lists all)")
	pflag.StringVarP(&depthStr, "depth", "d", "-1", "Depth of subdirectories to consider (-1 means unlimited)")
	pflag.BoolVarP(&opts.Bare, "bare", "b", false, "Print only file paths, without sizes")
	pflag.BoolVarP(&opts.Relative, "relative", "r", false, "Print paths relative to the scanned directory")
	pflag.BoolVarP(&opts.Progress, "progress", "p", false, "Show scan progress on stderr")
	pflag.BoolVarP(&opts.Verbose, "verbose", "v", false, "Report entries that could not be read")
	pflag.BoolVar(&opts.Version, "version", false, "Show version and exit")
	pflag.BoolVarP(&opts.Integration, "init", "i", false, "Output init script for shell usage")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = largestHelp
	pflag.Parse()

	if opts.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if opts.Integration {
		rendered, err := integration.Render()
		if err != nil {
			return fmt.Errorf("rendering integration script: %w", err)
		}

		//nolint:forbidigo // Integration script output to console
		fmt.Println(rendered)

		return nil
	}

	cfg := largest.Config{
		Root:     ".",
		Mask:     "*",
		TopN:     parseCount(numStr),
		MaxDepth: parseDepth(depthStr),
		Verbose:  opts.Verbose,
	}

	if pflag.NArg() > 0 {
		cfg.Root = pflag.Arg(0)
	}

	if pflag.NArg() > 1 {
		cfg.Mask = pflag.Arg(1)
	}

	return largestLogic(cfg, opts)
}

// parseCount interprets the --num value. Anything malformed or below
// -1 resets to the default count.
func parseCount(value string) int {
	num, err := strconv.Atoi(value)
	if err != nil || num < largest.Unbounded {
		return largest.DefaultTopN
	}

	return num
}

// parseDepth interprets the --depth value. Anything malformed or below
// -1 resets to unlimited depth.
func parseDepth(value string) int {
	depth, err := strconv.Atoi(value)
	if err != nil || depth < largest.Unbounded {
		return largest.Unbounded
	}

	return depth
}
