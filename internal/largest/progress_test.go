package largest

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestReporterThrottles(t *testing.T) {
	var buf bytes.Buffer

	current := time.Unix(0, 0)
	r := &Reporter{
		Out:      &buf,
		Interval: 100 * time.Millisecond,
		now:      func() time.Time { return current },
	}

	r.Observe(Stats{FilesScanned: 1})

	current = current.Add(50 * time.Millisecond)
	r.Observe(Stats{FilesScanned: 2})

	current = current.Add(60 * time.Millisecond)
	r.Observe(Stats{FilesScanned: 3})

	out := buf.String()

	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("rendered %d updates, want 2:\n%s", got, out)
	}

	if strings.Contains(out, "2 files") {
		t.Error("update inside the interval should have been skipped")
	}

	if !strings.Contains(out, "3 files") {
		t.Error("update after the interval should have rendered")
	}
}

func TestReporterInPlace(t *testing.T) {
	var buf bytes.Buffer

	r := &Reporter{Out: &buf, InPlace: true, now: time.Now}

	r.Observe(Stats{FilesScanned: 1234, CurrentDepth: 2, MaxDepthSeen: 5, Inaccessible: 1})
	r.Finish()

	out := buf.String()

	if !strings.HasPrefix(out, "\r\033[2K") {
		t.Errorf("in-place update should rewrite the line: %q", out)
	}

	if !strings.Contains(out, "1,234 files, depth 2 (max 5), 1 unreadable") {
		t.Errorf("unexpected progress line: %q", out)
	}

	if !strings.HasSuffix(out, "\r\033[2K") {
		t.Errorf("Finish should clear the line: %q", out)
	}
}

func TestReporterFinishWithoutRender(t *testing.T) {
	var buf bytes.Buffer

	r := &Reporter{Out: &buf, InPlace: true}
	r.Finish()

	if buf.Len() != 0 {
		t.Errorf("Finish with no prior render wrote %q", buf.String())
	}
}
