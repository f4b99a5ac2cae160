package largest

import (
	"regexp"
	"strings"
)

// Matcher tests filenames against a wildcard mask. '*' matches any run
// of characters, '?' matches exactly one, matching is case-insensitive
// and anchored over the whole filename.
type Matcher struct {
	mask string
	re   *regexp.Regexp
}

// NewMatcher compiles a matcher for the given mask. The universal mask
// "*" skips pattern construction entirely. If the pattern cannot be
// compiled the matcher falls back to a case-insensitive substring
// check, so construction never fails.
func NewMatcher(mask string) *Matcher {
	m := &Matcher{mask: mask}

	if mask == "*" {
		return m
	}

	var b strings.Builder

	b.WriteString("(?i)^")

	for _, r := range mask {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	b.WriteString("$")

	if re, err := regexp.Compile(b.String()); err == nil {
		m.re = re
	}

	return m
}

// Match reports whether the filename satisfies the mask.
func (m *Matcher) Match(name string) bool {
	if m.mask == "*" {
		return true
	}

	if m.re != nil {
		return m.re.MatchString(name)
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(m.mask))
}
