// ABOUTME: Formatting of activity lists, details, intervals, and streams
// ABOUTME: Headers match what MCP clients already parse ("Activities:", "Rep N")
package format

import (
	"fmt"
	"strings"

	"github.com/mvilanova/intervals-mcp/internal/icu"
)

// Activities renders a list of activities as a readable summary.
func Activities(athleteID string, activities []icu.Activity) string {
	if len(activities) == 0 {
		return fmt.Sprintf("No activities found for athlete %s in the specified date range.", athleteID)
	}

	var sb strings.Builder
	sb.WriteString("Activities:\n\n")
	for _, a := range activities {
		sb.WriteString(activityBlock(a, false))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// ActivityDetails renders the full record of one activity.
func ActivityDetails(a icu.Activity) string {
	return strings.TrimRight(activityBlock(a, true), "\n") + "\n"
}

func activityBlock(a icu.Activity, detailed bool) string {
	var sb strings.Builder
	name := a.Name
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString("Activity: " + name + "\n")

	w := fieldWriter{sb: &sb}
	w.str("ID", a.ID.String())
	w.str("Type", a.Type)
	w.str("Date", a.Date())
	w.float("Distance", a.Distance, " m")
	w.secs("Duration", bestDuration(a.MovingTime, a.Duration, a.ElapsedTime))
	if detailed {
		w.secs("Moving Time", a.MovingTime)
		w.secs("Elapsed Time", a.ElapsedTime)
		w.float("Elevation Gain", a.ElevationGain, " m")
		w.float("Avg Power", a.AvgWatts, " W")
		w.float("Weighted Avg Power", a.WeightedWatts, " W")
		w.float("Avg Heart Rate", a.AvgHeartRate, " bpm")
		w.float("Max Heart Rate", a.MaxHeartRate, " bpm")
		w.float("Avg Cadence", a.AvgCadence, "")
		w.float("Calories", a.Calories, "")
		w.float("FTP", a.FTP, " W")
		w.float("Intensity", a.Intensity, "")
	}
	w.float("Training Load", a.TrainingLoad, "")
	return sb.String()
}

// Intervals renders an activity's interval analysis.
func Intervals(activityID string, analysis *icu.IntervalsAnalysis) string {
	if analysis == nil || len(analysis.Intervals) == 0 {
		return fmt.Sprintf("No intervals found for activity %s.", activityID)
	}

	var sb strings.Builder
	sb.WriteString("Intervals Analysis:\n\n")
	for i, iv := range analysis.Intervals {
		sb.WriteString(intervalTitle(i+1, iv) + "\n")
		w := fieldWriter{sb: &sb, indent: "  "}
		w.str("Type", iv.Type)
		w.secs("Duration", bestDuration(iv.MovingTime, iv.ElapsedTime))
		w.float("Distance", iv.Distance, " m")
		w.float("Avg Power", iv.AvgWatts, " W")
		w.float("Max Power", iv.MaxWatts, " W")
		w.float("Avg Heart Rate", iv.AvgHeartRate, " bpm")
		w.float("Max Heart Rate", iv.MaxHeartRate, " bpm")
		w.float("Avg Cadence", iv.AvgCadence, "")
		w.float("Avg Speed", iv.AvgSpeed, " m/s")
		w.float("Intensity", iv.Intensity, "")
		sb.WriteString("\n")
	}

	if len(analysis.Groups) > 0 {
		sb.WriteString("Interval Groups:\n\n")
		for i, g := range analysis.Groups {
			sb.WriteString(intervalTitle(i+1, g) + "\n")
			w := fieldWriter{sb: &sb, indent: "  "}
			w.secs("Duration", bestDuration(g.MovingTime, g.ElapsedTime))
			w.float("Distance", g.Distance, " m")
			w.float("Avg Power", g.AvgWatts, " W")
			w.float("Avg Heart Rate", g.AvgHeartRate, " bpm")
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// Streams summarizes an activity's raw data channels. Raw samples are
// huge, so each channel gets a point count and min/avg/max digest.
func Streams(activityID string, streams []icu.Stream) string {
	if len(streams) == 0 {
		return fmt.Sprintf("No streams found for activity %s.", activityID)
	}

	var sb strings.Builder
	sb.WriteString("Activity Streams:\n\n")
	for _, s := range streams {
		name := s.Name
		if name == "" {
			name = s.Type
		}
		sb.WriteString("Stream: " + name + "\n")
		w := fieldWriter{sb: &sb, indent: "  "}
		w.str("Type", s.Type)
		w.str("Data Points", fmt.Sprintf("%d", len(s.Data)))

		if mn, mx, avg, ok := streamStats(s.Data); ok {
			w.str("Min", num(mn))
			w.str("Max", num(mx))
			w.str("Avg", fmt.Sprintf("%.1f", avg))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// streamStats digests non-null samples. ok is false when every sample
// is a gap.
func streamStats(data []*float64) (min, max, avg float64, ok bool) {
	var sum float64
	var n int
	for _, v := range data {
		if v == nil {
			continue
		}
		if n == 0 || *v < min {
			min = *v
		}
		if n == 0 || *v > max {
			max = *v
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, 0, 0, false
	}
	return min, max, sum / float64(n), true
}
