// ABOUTME: Shared formatting helpers for tool responses
// ABOUTME: Pure string building; nil fields are omitted, never placeholders
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mvilanova/intervals-mcp/internal/icu"
)

// Error renders any client failure as a short diagnostic the calling
// LLM can read. op names the operation ("fetching activities", ...).
// Every error kind yields a non-empty string; nothing escapes past
// this boundary.
func Error(op string, err error) string {
	return fmt.Sprintf("Error %s: %v", op, err)
}

// num formats a float without trailing zeros (42000 stays "42000",
// 75.5 stays "75.5").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// duration renders seconds as H:MM:SS, or M:SS under an hour.
// Presentation only; the upstream unit is still seconds.
func duration(secs float64) string {
	total := int(secs)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// fieldWriter appends "Label: value" lines, skipping absent values.
type fieldWriter struct {
	sb     *strings.Builder
	indent string
}

func (w fieldWriter) str(label, value string) {
	if value == "" {
		return
	}
	w.sb.WriteString(w.indent)
	w.sb.WriteString(label)
	w.sb.WriteString(": ")
	w.sb.WriteString(value)
	w.sb.WriteString("\n")
}

func (w fieldWriter) float(label string, v *float64, suffix string) {
	if v == nil {
		return
	}
	w.str(label, num(*v)+suffix)
}

func (w fieldWriter) secs(label string, v *float64) {
	if v == nil {
		return
	}
	w.str(label, duration(*v))
}

// bestDuration picks the first present duration-ish field.
func bestDuration(candidates ...*float64) *float64 {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// intervalTitle labels the nth interval. Upstream labels win; unnamed
// intervals fall back to their rep number.
func intervalTitle(n int, iv icu.Interval) string {
	if iv.Label != "" {
		return fmt.Sprintf("Rep %d (%s)", n, iv.Label)
	}
	return fmt.Sprintf("Rep %d", n)
}
