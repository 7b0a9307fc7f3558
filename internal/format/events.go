// ABOUTME: Formatting of calendar events and event details
// ABOUTME: Summary blocks for lists, full field set for single events
package format

import (
	"fmt"
	"strings"

	"github.com/mvilanova/intervals-mcp/internal/icu"
)

// Events renders a list of calendar events.
func Events(athleteID string, events []icu.Event) string {
	if len(events) == 0 {
		return fmt.Sprintf("No events found for athlete %s in the specified date range.", athleteID)
	}

	var sb strings.Builder
	sb.WriteString("Events:\n\n")
	for _, e := range events {
		sb.WriteString(eventBlock(e, false))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// EventDetails renders the full record of one event.
func EventDetails(e icu.Event) string {
	var sb strings.Builder
	sb.WriteString("Event Details:\n\n")
	sb.WriteString(eventBlock(e, true))
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func eventBlock(e icu.Event, detailed bool) string {
	var sb strings.Builder
	name := e.Name
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString("Event: " + name + "\n")

	w := fieldWriter{sb: &sb}
	w.str("ID", e.ID.String())
	w.str("Date", e.When())
	w.str("Category", e.Category)
	w.str("Type", e.Type)
	if e.Race != nil && *e.Race {
		w.str("Race", "yes")
	}
	if detailed {
		w.secs("Planned Time", e.MovingTime)
		w.float("Planned Distance", e.Distance, " m")
		w.float("Planned Training Load", e.TrainingLoad, "")
	}
	w.str("Description", e.Description)
	return sb.String()
}
