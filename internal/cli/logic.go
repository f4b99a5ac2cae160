package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/maddes8cht/go-cli-toolbox/internal/largest"
)

func largestLogic(cfg largest.Config, opts largestOptions) error {
	// Interrupt cancels the walk; deferred cleanup still runs so the
	// progress line and cursor are restored.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		hook     func(largest.Stats)
		reporter *largest.Reporter
	)

	if opts.Progress {
		inPlace := isatty.IsTerminal(os.Stderr.Fd())

		reporter = &largest.Reporter{Out: os.Stderr, InPlace: inPlace}
		hook = reporter.Observe

		if inPlace {
			// Hide cursor for in-place updates; restore on exit.
			fmt.Fprint(os.Stderr, "\033[?25l")
			defer fmt.Fprint(os.Stderr, "\033[?25h")
		}
	}

	result, err := largest.Run(ctx, cfg, hook)

	// Clear the status line before anything else is printed
	if reporter != nil {
		reporter.Finish()
	}

	if err != nil {
		return err
	}

	return printResults(os.Stdout, os.Stderr, result, opts)
}

// printResults writes one line per retained file, largest first, and a
// final unreadable-entry summary to stderr when any occurred.
func printResults(stdout, stderr io.Writer, result *largest.Result, opts largestOptions) error {
	for _, file := range result.Files {
		path := largest.FormatPath(file.Path, result.Root, opts.Relative)

		var err error
		if opts.Bare {
			_, err = fmt.Fprintln(stdout, path)
		} else {
			_, err = fmt.Fprintf(stdout, "%s %s\n", largest.FormatSize(file.Size), path)
		}

		if err != nil {
			return err
		}
	}

	if count := result.Stats.Inaccessible; count > 0 {
		fmt.Fprintf(stderr, "largest: %s entries could not be read\n", humanize.Comma(count))
	}

	return nil
}
