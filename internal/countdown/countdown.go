package countdown

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBarLength is the progress bar width in characters.
	DefaultBarLength = 50
	// MinBarLength is the smallest accepted progress bar width.
	MinBarLength = 5
	// MaxBarLength is the largest accepted progress bar width.
	MaxBarLength = 300

	// barInterval is the render cadence when the bar is shown.
	barInterval = 125 * time.Millisecond
	// timerInterval is the render cadence for the timer-only display.
	timerInterval = time.Second

	spinnerChars = `|/-\`
	fillChar     = "."

	// clearPadding covers the "[ ] Remaining: hh:mm:ss" decoration
	// around the bar when blanking the line.
	clearPadding = 22
)

// ParseOutputMode maps an output mode name to its display toggles.
func ParseOutputMode(mode string) (showTimer, showBar bool, err error) {
	switch mode {
	case "time", "t":
		return true, false, nil
	case "progress", "p":
		return false, true, nil
	case "both", "b":
		return true, true, nil
	case "none", "n":
		return false, false, nil
	default:
		return false, false, fmt.Errorf(
			"invalid output mode %q: use time, progress, both, none (or t, p, b, n)", mode)
	}
}

// Countdown displays the time remaining until a deadline.
type Countdown struct {
	// Total is the full wait duration.
	Total time.Duration
	// ShowTimer renders the remaining time as hh:mm:ss.
	ShowTimer bool
	// ShowBar renders a progress bar with a spinner at its head.
	ShowBar bool
	// BarLength is the bar width (DefaultBarLength when zero).
	BarLength int
	// InPlace overwrites the previous update with a carriage return
	// and hides the cursor for the duration of the wait.
	InPlace bool
	// Out receives the rendered updates (stdout when nil).
	Out io.Writer
}

// Frame renders a single update for the given elapsed time. The tick
// counter advances the spinner one position per frame.
func (c Countdown) Frame(elapsed time.Duration, tick int) string {
	length := c.BarLength
	if length <= 0 {
		length = DefaultBarLength
	}

	remaining := c.Total - elapsed
	if remaining < 0 {
		remaining = 0
	}

	var b strings.Builder

	if c.ShowBar {
		ratio := 0.0
		if c.Total > 0 {
			ratio = float64(elapsed) / float64(c.Total)
		}

		if ratio > 1 {
			ratio = 1
		}

		progress := int(ratio * float64(length))

		b.WriteString("[")
		b.WriteString(strings.Repeat("#", progress))

		if progress < length {
			b.WriteByte(spinnerChars[tick%len(spinnerChars)])
			b.WriteString(strings.Repeat(fillChar, length-progress-1))
		}

		b.WriteString("] ")
	}

	if c.ShowTimer {
		secs := int(remaining / time.Second)
		fmt.Fprintf(&b, "Remaining: %02d:%02d:%02d",
			secs/secondsPerHour, secs%secondsPerHour/secondsPerMinute, secs%secondsPerMinute)
	}

	return b.String()
}

// interval returns the render cadence for the configured display.
func (c Countdown) interval() time.Duration {
	if c.ShowBar {
		return barInterval
	}

	return timerInterval
}

// Run waits until the countdown elapses, rendering updates on the way.
// It returns ctx.Err() when cancelled early. On every exit path the
// in-place line is blanked and the cursor restored.
func (c Countdown) Run(ctx context.Context) error {
	if c.Out == nil {
		c.Out = os.Stdout
	}

	if c.BarLength <= 0 {
		c.BarLength = DefaultBarLength
	}

	if !c.ShowTimer && !c.ShowBar {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.Total):
			return nil
		}
	}

	start := time.Now()
	end := start.Add(c.Total)

	if c.InPlace {
		fmt.Fprint(c.Out, "\033[?25l")

		defer func() {
			fmt.Fprint(c.Out, "\r", strings.Repeat(" ", c.BarLength+clearPadding), "\r\033[?25h")
		}()
	}

	ticker := time.NewTicker(c.interval())
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		now := time.Now()
		if !now.Before(end) {
			return nil
		}

		frame := c.Frame(now.Sub(start), tick)

		if c.InPlace {
			fmt.Fprint(c.Out, "\r", frame)
		} else {
			fmt.Fprintln(c.Out, frame)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
