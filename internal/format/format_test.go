// ABOUTME: Tests for response formatting
// ABOUTME: Verifies headers, unit presentation, nil elision, and diagnostics
package format

import (
	"strings"
	"testing"

	"github.com/mvilanova/intervals-mcp/internal/icu"
)

func f(v float64) *float64 { return &v }

func TestActivities(t *testing.T) {
	t.Run("formats a sample activity", func(t *testing.T) {
		out := Activities("i1", []icu.Activity{{
			ID:        "123",
			Name:      "Morning Ride",
			Type:      "Ride",
			StartTime: "2024-01-01T08:00:00Z",
			Distance:  f(42000),
			Duration:  f(3600),
		}})

		if !strings.HasPrefix(out, "Activities:") {
			t.Errorf("expected Activities: header, got %q", out)
		}
		for _, want := range []string{"Morning Ride", "42000 m", "1:00:00", "Ride", "2024-01-01T08:00:00Z"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})

	t.Run("omits absent fields", func(t *testing.T) {
		out := Activities("i1", []icu.Activity{{ID: "1", Name: "Bare"}})
		for _, banned := range []string{"Distance", "Duration", "Training Load", "null", "<nil>"} {
			if strings.Contains(out, banned) {
				t.Errorf("expected %q to be omitted:\n%s", banned, out)
			}
		}
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		out := Activities("i1", nil)
		if !strings.Contains(out, "No activities found for athlete i1") {
			t.Errorf("unexpected empty message %q", out)
		}
	})
}

func TestActivityDetails(t *testing.T) {
	out := ActivityDetails(icu.Activity{
		ID:           "i12345",
		Name:         "Morning Ride",
		Distance:     f(42000),
		MovingTime:   f(7265),
		AvgWatts:     f(210),
		AvgHeartRate: f(145.5),
	})

	if !strings.Contains(out, "Activity: Morning Ride") {
		t.Errorf("expected detail header, got %q", out)
	}
	for _, want := range []string{"42000 m", "2:01:05", "210 W", "145.5 bpm"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestIntervals(t *testing.T) {
	t.Run("numbers reps and keeps labels", func(t *testing.T) {
		out := Intervals("123", &icu.IntervalsAnalysis{
			Analyzed: true,
			Intervals: []icu.Interval{
				{Label: "Warmup", MovingTime: f(900), AvgWatts: f(150)},
				{MovingTime: f(300), AvgWatts: f(280)},
			},
		})

		if !strings.HasPrefix(out, "Intervals Analysis:") {
			t.Errorf("expected header, got %q", out)
		}
		for _, want := range []string{"Rep 1 (Warmup)", "Rep 2", "15:00", "280 W"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})

	t.Run("no intervals", func(t *testing.T) {
		out := Intervals("123", &icu.IntervalsAnalysis{Analyzed: true})
		if !strings.Contains(out, "No intervals found for activity 123") {
			t.Errorf("unexpected message %q", out)
		}
	})
}

func TestStreams(t *testing.T) {
	data := make([]*float64, 0, 11)
	for i := 0; i < 11; i++ {
		data = append(data, f(150+float64(i)*5))
	}
	out := Streams("i107537962", []icu.Stream{
		{Type: "watts", Name: "watts", Data: data},
		{Type: "heartrate", Name: "heartrate", Data: []*float64{f(120), nil, f(140)}},
	})

	if !strings.HasPrefix(out, "Activity Streams:") {
		t.Errorf("expected header, got %q", out)
	}
	for _, want := range []string{"Stream: watts", "Data Points: 11", "Min: 150", "Max: 200", "Avg: 175.0", "Data Points: 3", "Avg: 130.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestWellness(t *testing.T) {
	t.Run("formats entries by date", func(t *testing.T) {
		out := Wellness("i1", []icu.WellnessEntry{
			{ID: "2024-01-01", CTL: f(75), SleepSecs: f(28800)},
		})

		if !strings.HasPrefix(out, "Wellness Data:") {
			t.Errorf("expected header, got %q", out)
		}
		for _, want := range []string{"Date: 2024-01-01", "CTL (Fitness): 75", "Sleep: 8:00:00"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "HRV") {
			t.Errorf("expected absent HRV to be omitted:\n%s", out)
		}
	})

	t.Run("empty range", func(t *testing.T) {
		out := Wellness("i1", nil)
		if !strings.Contains(out, "No wellness data found for athlete i1") {
			t.Errorf("unexpected message %q", out)
		}
	})
}

func TestEvents(t *testing.T) {
	race := true
	t.Run("formats event summaries", func(t *testing.T) {
		out := Events("i1", []icu.Event{
			{ID: "e1", Date: "2024-01-01", Name: "Test Event", Description: "desc", Race: &race},
		})

		if !strings.HasPrefix(out, "Events:") {
			t.Errorf("expected header, got %q", out)
		}
		for _, want := range []string{"Test Event", "Date: 2024-01-01", "Race: yes", "Description: desc"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})

	t.Run("empty list indicates no events, not an error", func(t *testing.T) {
		out := Events("i1", nil)
		if !strings.Contains(out, "No events found for athlete i1") {
			t.Errorf("unexpected message %q", out)
		}
		if strings.Contains(strings.ToLower(out), "error") {
			t.Errorf("empty list must not read as an error: %q", out)
		}
	})

	t.Run("event details header", func(t *testing.T) {
		out := EventDetails(icu.Event{ID: "e1", Date: "2024-01-01", Name: "Test Event"})
		if !strings.HasPrefix(out, "Event Details:") || !strings.Contains(out, "Test Event") {
			t.Errorf("unexpected details output %q", out)
		}
	})
}

func TestError(t *testing.T) {
	t.Run("rejected errors carry the upstream status", func(t *testing.T) {
		err := &icu.Error{Kind: icu.KindRejected, Status: 404, Body: "no such activity"}
		out := Error("fetching activity details", err)
		if out == "" {
			t.Fatal("diagnostic must be non-empty")
		}
		if !strings.Contains(out, "404") {
			t.Errorf("expected status in diagnostic, got %q", out)
		}
		if !strings.Contains(out, "Error fetching activity details") {
			t.Errorf("expected operation in diagnostic, got %q", out)
		}
	})

	t.Run("every kind formats non-empty", func(t *testing.T) {
		kinds := []*icu.Error{
			{Kind: icu.KindUnavailable},
			{Kind: icu.KindRejected, Status: 503},
			{Kind: icu.KindMalformed},
		}
		for _, err := range kinds {
			if out := Error("fetching events", err); out == "" || !strings.Contains(out, "Error") {
				t.Errorf("kind %v produced %q", err.Kind, out)
			}
		}
	})
}
