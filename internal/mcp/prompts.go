// ABOUTME: MCP prompt definitions for intervals-mcp
// ABOUTME: Static context telling assistants how to use the tool surface
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "intervals-getting-started",
		Description: "Introduction to the Intervals.icu tools and how to use them",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		content := `This server exposes an athlete's Intervals.icu training data.

Available data:
- Activities: recorded rides, runs, swims and other workouts (get_activities, get_activity_details)
- Interval analysis: per-rep power, heart rate and pace breakdowns (get_activity_intervals)
- Raw streams: second-by-second power/heart-rate channels, summarized (get_activity_streams)
- Wellness: daily fitness (CTL), fatigue (ATL), sleep, HRV and resting HR (get_wellness_data)
- Calendar: planned workouts and races (get_events, get_event_by_id, add_or_update_event)

Tips:
- Date parameters accept YYYY-MM-DD and most common date formats.
- Activity and event IDs come from list responses; pass them verbatim.
- Wellness trends read best over 2-6 week ranges.
- add_or_update_event writes to the athlete's calendar; confirm with the user first.`

		result := &mcp.GetPromptResult{
			Description: "Getting started with Intervals.icu data",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: content,
					},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
