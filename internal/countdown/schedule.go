package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 24 * secondsPerHour
)

// splitFields parses up to three colon-separated non-negative integers.
func splitFields(arg string) ([]int, error) {
	parts := strings.Split(arg, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("invalid time/duration format %q", arg)
	}

	fields := make([]int, 0, len(parts))

	for _, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid time/duration format %q", arg)
		}

		if value < 0 {
			return nil, errors.New("invalid values: all components must be non-negative")
		}

		fields = append(fields, value)
	}

	return fields, nil
}

// ParseClock interprets arg as a wall-clock target in the form hh,
// hh:mm or hh:mm:ss and returns the duration until its next
// occurrence relative to now, wrapping to the next day when the time
// has already passed today.
func ParseClock(arg string, now time.Time) (time.Duration, error) {
	fields, err := splitFields(arg)
	if err != nil {
		return 0, err
	}

	var hh, mm, ss int

	hh = fields[0]
	if len(fields) > 1 {
		mm = fields[1]
	}

	if len(fields) > 2 {
		ss = fields[2]
	}

	if hh > 23 || mm > 59 || ss > 59 {
		return 0, errors.New("invalid values: hours 0-23, minutes/seconds 0-59")
	}

	target := hh*secondsPerHour + mm*secondsPerMinute + ss
	current := now.Hour()*secondsPerHour + now.Minute()*secondsPerMinute + now.Second()

	diff := target - current
	if diff < 0 {
		diff += secondsPerDay
	}

	return time.Duration(diff) * time.Second, nil
}

// ParseDelay interprets arg as a duration in the form ss, mm:ss or
// hh:mm:ss. The leading unit may overflow its usual range (90 means
// one minute thirty seconds, 120:00 means two hours); trailing units
// must be 0-59. The duration must come out positive.
func ParseDelay(arg string) (time.Duration, error) {
	fields, err := splitFields(arg)
	if err != nil {
		return 0, err
	}

	var hh, mm, ss int

	switch len(fields) {
	case 1:
		ss = fields[0]
	case 2:
		mm, ss = fields[0], fields[1]
		if ss > 59 {
			return 0, errors.New("invalid values: seconds must be 0-59")
		}
	case 3:
		hh, mm, ss = fields[0], fields[1], fields[2]
		if mm > 59 || ss > 59 {
			return 0, errors.New("invalid values: minutes/seconds must be 0-59")
		}
	}

	total := hh*secondsPerHour + mm*secondsPerMinute + ss
	if total <= 0 {
		return 0, errors.New("duration must be positive")
	}

	return time.Duration(total) * time.Second, nil
}
