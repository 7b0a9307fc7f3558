// ABOUTME: MCP tool implementations wrapping the Intervals.icu API
// ABOUTME: Handlers validate arguments, call the client, and format output
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mvilanova/intervals-mcp/internal/config"
	"github.com/mvilanova/intervals-mcp/internal/format"
	"github.com/mvilanova/intervals-mcp/internal/icu"
)

// ToolNames is the fixed tool surface, in registration order. No
// runtime registration exists; the set is final once NewServer returns.
var ToolNames = []string{
	"get_activities",
	"get_activity_details",
	"get_activity_intervals",
	"get_activity_streams",
	"get_wellness_data",
	"get_events",
	"get_event_by_id",
	"add_or_update_event",
}

// ToolDescriptions maps tool names to their registered descriptions,
// for the `tools` CLI command.
var ToolDescriptions = map[string]string{
	"get_activities":         "List recent activities for an athlete, optionally within a date range",
	"get_activity_details":   "Get the full record of a single activity by ID",
	"get_activity_intervals": "Get the interval analysis of an activity by ID",
	"get_activity_streams":   "Summarize the raw data streams (power, heart rate, ...) of an activity",
	"get_wellness_data":      "Get daily wellness entries (fitness, fatigue, sleep, HRV) for a date range",
	"get_events":             "List calendar events (planned workouts, races) for a date range",
	"get_event_by_id":        "Get the full record of a single calendar event by ID",
	"add_or_update_event":    "Create a planned workout on the calendar, or update one by event ID",
}

type GetActivitiesArgs struct {
	AthleteID      string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (i-prefixed). Defaults to the configured athlete."`
	StartDate      string `json:"start_date,omitempty" jsonschema:"Start date, YYYY-MM-DD. Defaults to 30 days ago."`
	EndDate        string `json:"end_date,omitempty" jsonschema:"End date, YYYY-MM-DD. Defaults to today."`
	Limit          int    `json:"limit,omitempty" jsonschema:"Maximum number of activities to return (default 10)."`
	IncludeUnnamed bool   `json:"include_unnamed,omitempty" jsonschema:"Include activities without a name (hidden by default)."`
}

type ActivityIDArgs struct {
	ActivityID string `json:"activity_id" jsonschema:"Activity ID (required)."`
	AthleteID  string `json:"athlete_id,omitempty" jsonschema:"Athlete ID. Defaults to the configured athlete."`
}

type GetStreamsArgs struct {
	ActivityID string   `json:"activity_id" jsonschema:"Activity ID (required)."`
	Types      []string `json:"types,omitempty" jsonschema:"Stream types to include (e.g. watts, heartrate). All when empty."`
}

type DateRangeArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID. Defaults to the configured athlete."`
	StartDate string `json:"start_date,omitempty" jsonschema:"Start date, YYYY-MM-DD."`
	EndDate   string `json:"end_date,omitempty" jsonschema:"End date, YYYY-MM-DD."`
}

type GetEventArgs struct {
	EventID   string `json:"event_id" jsonschema:"Event ID (required)."`
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID. Defaults to the configured athlete."`
}

type AddEventArgs struct {
	Name        string `json:"name" jsonschema:"Name of the workout (required)."`
	WorkoutType string `json:"workout_type,omitempty" jsonschema:"Workout type (Ride, Run, Swim, Walk, Row). Inferred from the name when empty."`
	EventID     string `json:"event_id,omitempty" jsonschema:"Existing event ID to update. A new event is created when empty."`
	StartDate   string `json:"start_date,omitempty" jsonschema:"Start date, YYYY-MM-DD. Defaults to today."`
	Description string `json:"description,omitempty" jsonschema:"Workout description."`
	MovingTime  int    `json:"moving_time,omitempty" jsonschema:"Expected moving time in seconds."`
	Distance    int    `json:"distance,omitempty" jsonschema:"Expected distance in meters."`
	AthleteID   string `json:"athlete_id,omitempty" jsonschema:"Athlete ID. Defaults to the configured athlete."`
}

const defaultActivityLimit = 10

// registerTools adds the fixed tool set to the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activities",
		Description: ToolDescriptions["get_activities"],
	}, s.handleGetActivities)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_details",
		Description: ToolDescriptions["get_activity_details"],
	}, s.handleGetActivityDetails)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_intervals",
		Description: ToolDescriptions["get_activity_intervals"],
	}, s.handleGetActivityIntervals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_streams",
		Description: ToolDescriptions["get_activity_streams"],
	}, s.handleGetActivityStreams)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wellness_data",
		Description: ToolDescriptions["get_wellness_data"],
	}, s.handleGetWellness)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_events",
		Description: ToolDescriptions["get_events"],
	}, s.handleGetEvents)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_event_by_id",
		Description: ToolDescriptions["get_event_by_id"],
	}, s.handleGetEventByID)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_or_update_event",
		Description: ToolDescriptions["add_or_update_event"],
	}, s.handleAddOrUpdateEvent)
}

func (s *Server) handleGetActivities(ctx context.Context, _ *mcp.CallToolRequest, args GetActivitiesArgs) (*mcp.CallToolResult, any, error) {
	athleteID, err := s.resolveAthleteID(args.AthleteID)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	oldest, err := resolveDate("start_date", args.StartDate, daysAgo(30))
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	newest, err := resolveDate("end_date", args.EndDate, today)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	limit := args.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	activities, err := s.client.Activities(ctx, athleteID, icu.ActivityFilter{
		Oldest: oldest,
		Newest: newest,
		Limit:  limit,
	})
	if err != nil {
		return toolError(format.Error("fetching activities", err)), nil, nil
	}

	if !args.IncludeUnnamed {
		named := activities[:0]
		for _, a := range activities {
			if a.Name != "" {
				named = append(named, a)
			}
		}
		activities = named
	}
	return toolText(format.Activities(athleteID, activities)), nil, nil
}

func (s *Server) handleGetActivityDetails(ctx context.Context, _ *mcp.CallToolRequest, args ActivityIDArgs) (*mcp.CallToolResult, any, error) {
	if args.ActivityID == "" {
		return toolError("activity_id is required"), nil, nil
	}

	activity, err := s.client.Activity(ctx, args.ActivityID)
	if err != nil {
		return toolError(format.Error("fetching activity details", err)), nil, nil
	}
	return toolText(format.ActivityDetails(*activity)), nil, nil
}

func (s *Server) handleGetActivityIntervals(ctx context.Context, _ *mcp.CallToolRequest, args ActivityIDArgs) (*mcp.CallToolResult, any, error) {
	if args.ActivityID == "" {
		return toolError("activity_id is required"), nil, nil
	}

	analysis, err := s.client.ActivityIntervals(ctx, args.ActivityID)
	if err != nil {
		return toolError(format.Error("fetching activity intervals", err)), nil, nil
	}
	return toolText(format.Intervals(args.ActivityID, analysis)), nil, nil
}

func (s *Server) handleGetActivityStreams(ctx context.Context, _ *mcp.CallToolRequest, args GetStreamsArgs) (*mcp.CallToolResult, any, error) {
	if args.ActivityID == "" {
		return toolError("activity_id is required"), nil, nil
	}

	streams, err := s.client.ActivityStreams(ctx, args.ActivityID, args.Types)
	if err != nil {
		return toolError(format.Error("fetching activity streams", err)), nil, nil
	}
	return toolText(format.Streams(args.ActivityID, streams)), nil, nil
}

func (s *Server) handleGetWellness(ctx context.Context, _ *mcp.CallToolRequest, args DateRangeArgs) (*mcp.CallToolResult, any, error) {
	athleteID, err := s.resolveAthleteID(args.AthleteID)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	oldest, err := resolveDate("start_date", args.StartDate, daysAgo(30))
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	newest, err := resolveDate("end_date", args.EndDate, today)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}

	entries, err := s.client.Wellness(ctx, athleteID, oldest, newest)
	if err != nil {
		return toolError(format.Error("fetching wellness data", err)), nil, nil
	}
	return toolText(format.Wellness(athleteID, entries)), nil, nil
}

func (s *Server) handleGetEvents(ctx context.Context, _ *mcp.CallToolRequest, args DateRangeArgs) (*mcp.CallToolResult, any, error) {
	athleteID, err := s.resolveAthleteID(args.AthleteID)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	// Events look forward by default: today through 30 days ahead.
	oldest, err := resolveDate("start_date", args.StartDate, today)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	newest, err := resolveDate("end_date", args.EndDate, daysAhead(30))
	if err != nil {
		return toolError(err.Error()), nil, nil
	}

	events, err := s.client.Events(ctx, athleteID, oldest, newest)
	if err != nil {
		return toolError(format.Error("fetching events", err)), nil, nil
	}
	return toolText(format.Events(athleteID, events)), nil, nil
}

func (s *Server) handleGetEventByID(ctx context.Context, _ *mcp.CallToolRequest, args GetEventArgs) (*mcp.CallToolResult, any, error) {
	if args.EventID == "" {
		return toolError("event_id is required"), nil, nil
	}
	athleteID, err := s.resolveAthleteID(args.AthleteID)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}

	event, err := s.client.Event(ctx, athleteID, args.EventID)
	if err != nil {
		return toolError(format.Error("fetching event details", err)), nil, nil
	}
	return toolText(format.EventDetails(*event)), nil, nil
}

func (s *Server) handleAddOrUpdateEvent(ctx context.Context, _ *mcp.CallToolRequest, args AddEventArgs) (*mcp.CallToolResult, any, error) {
	if args.Name == "" {
		return toolError("name is required"), nil, nil
	}
	athleteID, err := s.resolveAthleteID(args.AthleteID)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	startDate, err := resolveDate("start_date", args.StartDate, today)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}

	var movingTime, distance *int
	if args.MovingTime > 0 {
		movingTime = &args.MovingTime
	}
	if args.Distance > 0 {
		distance = &args.Distance
	}

	data := icu.EventData{
		StartDateLocal: startDate + "T00:00:00",
		Category:       "WORKOUT",
		Name:           args.Name,
		Description:    args.Description,
		Type:           resolveWorkoutType(args.Name, args.WorkoutType),
		MovingTime:     movingTime,
		Distance:       distance,
	}

	action, op := "created", "creating event"
	if args.EventID != "" {
		action, op = "updated", "updating event"
	}

	raw, err := s.client.CreateOrUpdateEvent(ctx, athleteID, args.EventID, data)
	if err != nil {
		return toolError(format.Error(op, err)), nil, nil
	}
	if len(raw) == 0 {
		return toolText(fmt.Sprintf("Event %s successfully at %s", action, startDate)), nil, nil
	}

	var pretty []byte
	if pretty, err = json.MarshalIndent(json.RawMessage(raw), "", "  "); err != nil {
		pretty = raw
	}
	return toolText(fmt.Sprintf("Successfully %s event: %s", action, pretty)), nil, nil
}

// resolveAthleteID picks the per-call override or the configured
// default, validating the override's shape.
func (s *Server) resolveAthleteID(override string) (string, error) {
	if override == "" {
		return s.client.AthleteID(), nil
	}
	id, err := config.NormalizeAthleteID(override)
	if err != nil {
		return "", fmt.Errorf("invalid athlete_id: %v", err)
	}
	return id, nil
}

// resolveWorkoutType maps a workout name to an Intervals.icu activity
// type when none was given.
func resolveWorkoutType(name, workoutType string) string {
	if workoutType != "" {
		return workoutType
	}
	lower := strings.ToLower(name)
	keywords := []struct {
		workout string
		words   []string
	}{
		{"Ride", []string{"bike", "cycle", "cycling", "ride"}},
		{"Run", []string{"run", "running", "jog", "jogging"}},
		{"Swim", []string{"swim", "swimming", "pool"}},
		{"Walk", []string{"walk", "walking", "hike", "hiking"}},
		{"Row", []string{"row", "rowing"}},
	}
	for _, k := range keywords {
		for _, word := range k.words {
			if strings.Contains(lower, word) {
				return k.workout
			}
		}
	}
	return "Ride"
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func toolError(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
