package largest

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultProgressInterval is the minimum time between progress renders.
const DefaultProgressInterval = 100 * time.Millisecond

// Reporter renders walk progress at a bounded rate. It is driven
// synchronously from the walk loop: every observation first checks the
// elapsed time and returns without formatting when the interval has
// not passed, so the scan loop is not slowed by terminal output.
type Reporter struct {
	// Out receives the rendered updates (normally stderr).
	Out io.Writer
	// Interval is the minimum time between renders
	// (DefaultProgressInterval when zero).
	Interval time.Duration
	// InPlace overwrites the previous update with a carriage return
	// instead of printing a new line per update.
	InPlace bool

	now      func() time.Time
	last     time.Time
	rendered bool
}

func (r *Reporter) clock() time.Time {
	if r.now != nil {
		return r.now()
	}

	return time.Now()
}

// Observe renders a stats snapshot unless the previous render was less
// than Interval ago.
func (r *Reporter) Observe(s Stats) {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	now := r.clock()
	if !r.last.IsZero() && now.Sub(r.last) < interval {
		return
	}

	r.last = now
	r.rendered = true

	msg := fmt.Sprintf("%s files, depth %d (max %d), %d unreadable",
		humanize.Comma(s.FilesScanned), s.CurrentDepth, s.MaxDepthSeen, s.Inaccessible)

	if r.InPlace {
		fmt.Fprintf(r.Out, "\r\033[2K%s", msg)
	} else {
		fmt.Fprintln(r.Out, msg)
	}
}

// Finish clears the in-place progress line. It is safe to call on
// every exit path, including when nothing was ever rendered.
func (r *Reporter) Finish() {
	if r.rendered && r.InPlace {
		fmt.Fprint(r.Out, "\r\033[2K")
	}
}
