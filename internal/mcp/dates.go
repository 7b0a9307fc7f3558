// ABOUTME: Date argument handling for tool parameters
// ABOUTME: Accepts any common date format, normalizes to YYYY-MM-DD
package mcp

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

const dateLayout = "2006-01-02"

// resolveDate normalizes a user-supplied date argument, falling back to
// def when empty. The error names the offending parameter so the
// caller's diagnostic is actionable.
func resolveDate(param, value string, def func() string) (string, error) {
	if value == "" {
		return def(), nil
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q: use YYYY-MM-DD", param, value)
	}
	return t.Format(dateLayout), nil
}

func today() string {
	return time.Now().Format(dateLayout)
}

func daysAgo(n int) func() string {
	return func() string {
		return time.Now().AddDate(0, 0, -n).Format(dateLayout)
	}
}

func daysAhead(n int) func() string {
	return func() string {
		return time.Now().AddDate(0, 0, n).Format(dateLayout)
	}
}
