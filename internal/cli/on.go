package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/maddes8cht/go-cli-toolbox/internal/countdown"
)

// On is the command-line interface of the on tool.
type On struct {
	version string
}

// NewOn creates a new on CLI with the given version.
func NewOn(version string) On {
	return On{version: version}
}

func onHelp() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		on waits until a clock time or for a duration, then runs a command.

		Usage:

			on [flags] Time [Command [CommandArgs...]]

		Time format: hh, hh:mm, or hh:mm:ss (for clock time).
		For delay mode: hh:mm:ss, mm:ss, or ss. The leading unit can exceed
		standard limits and will be normalized (e.g., 90 becomes 1:30; 120:00
		becomes 2:00:00). Subsequent units must be 0-59.

		Default output is a countdown timer updating in the same line. If no
		Command is provided, only the countdown or progress bar is displayed.
		The command's exit code becomes on's exit code.

		Examples:
		  on 12:30 ls -l               (executes at 12:30 with countdown)
		  on -d 20 ls                  (executes after 20 seconds with countdown)
		  on -o p 21:30                (shows progress bar until 21:30, no command)
		  on -o n 12:30 ls -l          (executes at 12:30 with no output)

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c On) Execute() error {
	var (
		delayMode   bool
		noClear     bool
		outputMode  string
		barLength   int
		showVersion bool
	)

	pflag.BoolVarP(&delayMode, "delay", "d", false, "Interpret Time as a duration instead of a clock time")
	pflag.BoolVarP(&noClear, "no-clear", "c", false, "Print a new line per update instead of updating in place")
	pflag.StringVarP(&outputMode, "output", "o", "time", "Output mode: time, progress, both, none (or t, p, b, n)")
	pflag.IntVarP(&barLength, "length", "l", countdown.DefaultBarLength, "Progress bar length in characters")
	pflag.BoolVar(&showVersion, "version", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = onHelp
	pflag.Parse()

	if showVersion {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if barLength < countdown.MinBarLength || barLength > countdown.MaxBarLength {
		return fmt.Errorf("progress bar length must be between %d and %d",
			countdown.MinBarLength, countdown.MaxBarLength)
	}

	showTimer, showBar, err := countdown.ParseOutputMode(outputMode)
	if err != nil {
		return err
	}

	if pflag.NArg() == 0 {
		return errors.New("missing Time argument; see 'on --help'")
	}

	var wait time.Duration
	if delayMode {
		wait, err = countdown.ParseDelay(pflag.Arg(0))
	} else {
		wait, err = countdown.ParseClock(pflag.Arg(0), time.Now())
	}

	if err != nil {
		return err
	}

	display := countdown.Countdown{
		Total:     wait,
		ShowTimer: showTimer,
		ShowBar:   showBar,
		BarLength: barLength,
		InPlace:   !noClear && isatty.IsTerminal(os.Stdout.Fd()),
		Out:       os.Stdout,
	}

	return onLogic(display, pflag.Args()[1:])
}

func onLogic(display countdown.Countdown, command []string) error {
	// Interrupt cancels the wait; the countdown restores the cursor on
	// its way out and no command is executed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := display.Run(ctx); err != nil {
		return err
	}

	if len(command) == 0 {
		return nil
	}

	//nolint:gosec // Running the user-supplied command is the point
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// A non-zero child exit surfaces as *exec.ExitError for main to map
	return cmd.Run()
}
