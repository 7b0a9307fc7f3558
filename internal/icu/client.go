// ABOUTME: HTTP client for the Intervals.icu REST API
// ABOUTME: One authenticated attempt per call; no retries, no caching
package icu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "intervals-mcp/0.1"

// Options configures a Client. Zero values fall back to sane defaults
// except APIKey and AthleteID, which the caller must supply.
type Options struct {
	BaseURL   string
	APIKey    string
	AthleteID string
	UserAgent string
	Timeout   time.Duration
	Logger    *log.Logger
}

// Client talks to Intervals.icu. Immutable after construction, so it is
// safe to share across concurrent tool calls.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	athleteID  string
	userAgent  string
	logger     *log.Logger
}

// NewClient builds a client with a per-call timeout and a conservative
// outbound rate limit (Intervals.icu throttles aggressive API users).
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://intervals.icu/api/v1"
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/60), 10),
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		athleteID:  opts.AthleteID,
		userAgent:  opts.UserAgent,
		logger:     opts.Logger,
	}
}

// AthleteID returns the configured default athlete.
func (c *Client) AthleteID() string { return c.athleteID }

// do performs a single request and returns the raw body on any 2xx
// status. Failures map onto the Error taxonomy; there is at most one
// HTTP attempt per call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, unavailable(err)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, unavailable(fmt.Errorf("encode request body: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, unavailable(err)
	}
	// Intervals.icu basic auth: literal username "API_KEY", key as password.
	req.SetBasicAuth("API_KEY", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("intervals request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("intervals request failed", "method", method, "path", path, "err", err)
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unavailable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("intervals request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return nil, rejected(resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// getJSON issues a GET and decodes the body into out. A 2xx body that
// does not decode into the expected shape is KindMalformed.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return malformed(err)
	}
	return nil
}

// ActivityFilter narrows an activities listing.
type ActivityFilter struct {
	Oldest string // YYYY-MM-DD
	Newest string // YYYY-MM-DD
	Limit  int
}

// Activities lists an athlete's activities within the filter's date
// range, newest first as upstream returns them.
func (c *Client) Activities(ctx context.Context, athleteID string, filter ActivityFilter) ([]Activity, error) {
	query := url.Values{}
	if filter.Oldest != "" {
		query.Set("oldest", filter.Oldest)
	}
	if filter.Newest != "" {
		query.Set("newest", filter.Newest)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var activities []Activity
	if err := c.getJSON(ctx, "/athlete/"+athleteID+"/activities", query, &activities); err != nil {
		return nil, err
	}
	// Upstream does not always honor limit; enforce it here.
	if filter.Limit > 0 && len(activities) > filter.Limit {
		activities = activities[:filter.Limit]
	}
	return activities, nil
}

// Activity fetches the detail record for one activity.
func (c *Client) Activity(ctx context.Context, activityID string) (*Activity, error) {
	var activity Activity
	if err := c.getJSON(ctx, "/activity/"+activityID, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// ActivityIntervals fetches the interval analysis for one activity.
func (c *Client) ActivityIntervals(ctx context.Context, activityID string) (*IntervalsAnalysis, error) {
	var analysis IntervalsAnalysis
	if err := c.getJSON(ctx, "/activity/"+activityID+"/intervals", nil, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// ActivityStreams fetches the raw data channels recorded for an
// activity. types narrows the channels when non-empty.
func (c *Client) ActivityStreams(ctx context.Context, activityID string, types []string) ([]Stream, error) {
	query := url.Values{}
	for _, t := range types {
		query.Add("types", t)
	}
	var streams []Stream
	if err := c.getJSON(ctx, "/activity/"+activityID+"/streams", query, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

// Wellness lists wellness entries in a date range. Upstream has served
// this both as a list and as a date-keyed object; both are accepted and
// normalized to date-ascending order.
func (c *Client) Wellness(ctx context.Context, athleteID, oldest, newest string) ([]WellnessEntry, error) {
	query := url.Values{}
	if oldest != "" {
		query.Set("oldest", oldest)
	}
	if newest != "" {
		query.Set("newest", newest)
	}

	body, err := c.do(ctx, http.MethodGet, "/athlete/"+athleteID+"/wellness", query, nil)
	if err != nil {
		return nil, err
	}
	return decodeWellness(body)
}

func decodeWellness(body []byte) ([]WellnessEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var entries []WellnessEntry
	if err := json.Unmarshal(trimmed, &entries); err == nil {
		return entries, nil
	}

	var keyed map[string]WellnessEntry
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, malformed(err)
	}
	entries = nil
	for date, entry := range keyed {
		if entry.ID == "" {
			entry.ID = date
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// Events lists calendar events in a date range.
func (c *Client) Events(ctx context.Context, athleteID, oldest, newest string) ([]Event, error) {
	query := url.Values{}
	if oldest != "" {
		query.Set("oldest", oldest)
	}
	if newest != "" {
		query.Set("newest", newest)
	}
	var events []Event
	if err := c.getJSON(ctx, "/athlete/"+athleteID+"/events", query, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Event fetches one event by id.
func (c *Client) Event(ctx context.Context, athleteID, eventID string) (*Event, error) {
	var event Event
	if err := c.getJSON(ctx, "/athlete/"+athleteID+"/event/"+eventID, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateOrUpdateEvent posts a new event, or updates an existing one
// when eventID is non-empty. Returns the raw upstream response so the
// caller can echo exactly what was stored.
func (c *Client) CreateOrUpdateEvent(ctx context.Context, athleteID, eventID string, data EventData) (json.RawMessage, error) {
	path := "/athlete/" + athleteID + "/events"
	method := http.MethodPost
	if eventID != "" {
		path += "/" + eventID
		method = http.MethodPut
	}

	body, err := c.do(ctx, method, path, nil, data)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, malformed(fmt.Errorf("event response is not valid JSON"))
	}
	return json.RawMessage(body), nil
}
