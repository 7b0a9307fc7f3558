// ABOUTME: Formatting of wellness entries (fitness, fatigue, sleep, HRV)
// ABOUTME: One dated block per entry; absent metrics are simply not printed
package format

import (
	"fmt"
	"strings"

	"github.com/mvilanova/intervals-mcp/internal/icu"
)

// Wellness renders a range of wellness entries.
func Wellness(athleteID string, entries []icu.WellnessEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No wellness data found for athlete %s in the specified date range.", athleteID)
	}

	var sb strings.Builder
	sb.WriteString("Wellness Data:\n\n")
	for _, e := range entries {
		sb.WriteString("Date: " + e.ID + "\n")
		w := fieldWriter{sb: &sb, indent: "  "}
		w.float("CTL (Fitness)", e.CTL, "")
		w.float("ATL (Fatigue)", e.ATL, "")
		w.float("Ramp Rate", e.RampRate, "")
		w.float("Resting HR", e.RestingHR, " bpm")
		w.float("HRV", e.HRV, "")
		w.secs("Sleep", e.SleepSecs)
		w.float("Sleep Quality", e.SleepQuality, "")
		w.float("Weight", e.Weight, " kg")
		w.float("Steps", e.Steps, "")
		w.float("Soreness", e.Soreness, "")
		w.float("Fatigue", e.Fatigue, "")
		w.float("Stress", e.Stress, "")
		w.float("Mood", e.Mood, "")
		w.str("Comments", e.Comments)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
