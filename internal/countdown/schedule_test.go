package countdown

import (
	"testing"
	"time"
)

func TestParseDelay(t *testing.T) {
	cases := []struct {
		arg  string
		want time.Duration
	}{
		{"20", 20 * time.Second},
		{"90", 90 * time.Second},
		{"1:30", 90 * time.Second},
		{"120:00", 2 * time.Hour},
		{"2:00:00", 2 * time.Hour},
		{"26:00:00", 26 * time.Hour},
		{"0:59", 59 * time.Second},
	}

	for _, c := range cases {
		got, err := ParseDelay(c.arg)
		if err != nil {
			t.Errorf("ParseDelay(%q) error: %v", c.arg, err)

			continue
		}

		if got != c.want {
			t.Errorf("ParseDelay(%q) = %v, want %v", c.arg, got, c.want)
		}
	}
}

func TestParseDelayErrors(t *testing.T) {
	for _, arg := range []string{"0", "-5", "1:60", "1:60:00", "1:00:60", "abc", "1:2:3:4", ""} {
		if _, err := ParseDelay(arg); err == nil {
			t.Errorf("ParseDelay(%q) should fail", arg)
		}
	}
}

func TestParseClock(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)

	cases := []struct {
		arg  string
		want time.Duration
	}{
		{"12", 2 * time.Hour},
		{"12:30", 2*time.Hour + 30*time.Minute},
		{"10:00:30", 30 * time.Second},
		{"10", 0},
		{"9:30", 23*time.Hour + 30*time.Minute},
		{"0:00", 14 * time.Hour},
	}

	for _, c := range cases {
		got, err := ParseClock(c.arg, now)
		if err != nil {
			t.Errorf("ParseClock(%q) error: %v", c.arg, err)

			continue
		}

		if got != c.want {
			t.Errorf("ParseClock(%q) = %v, want %v", c.arg, got, c.want)
		}
	}
}

func TestParseClockErrors(t *testing.T) {
	now := time.Now()

	for _, arg := range []string{"24", "12:60", "12:00:60", "-1:00", "noon", ""} {
		if _, err := ParseClock(arg, now); err == nil {
			t.Errorf("ParseClock(%q) should fail", arg)
		}
	}
}
