// ABOUTME: Per-endpoint result records for Intervals.icu payloads
// ABOUTME: Optional fields are pointers so formatters can elide what's missing
package icu

import (
	"encoding/json"
	"strings"
)

// ID accepts the mix of numeric and string identifiers Intervals.icu
// uses across endpoints and normalizes them to a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Activity is one entry from the activities list or the activity
// detail endpoint. Unknown upstream fields are ignored on decode.
type Activity struct {
	ID             ID       `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	StartDateLocal string   `json:"start_date_local"`
	StartTime      string   `json:"startTime"`
	Distance       *float64 `json:"distance"`
	MovingTime     *float64 `json:"moving_time"`
	ElapsedTime    *float64 `json:"elapsed_time"`
	Duration       *float64 `json:"duration"`
	ElevationGain  *float64 `json:"total_elevation_gain"`
	AvgWatts       *float64 `json:"icu_average_watts"`
	WeightedWatts  *float64 `json:"icu_weighted_avg_watts"`
	AvgHeartRate   *float64 `json:"average_heartrate"`
	MaxHeartRate   *float64 `json:"max_heartrate"`
	AvgCadence     *float64 `json:"average_cadence"`
	Calories       *float64 `json:"calories"`
	TrainingLoad   *float64 `json:"icu_training_load"`
	FTP            *float64 `json:"icu_ftp"`
	Intensity      *float64 `json:"icu_intensity"`
}

// Date returns the best available start timestamp for display.
func (a Activity) Date() string {
	if a.StartDateLocal != "" {
		return a.StartDateLocal
	}
	return a.StartTime
}

// Interval is a single analyzed interval within an activity.
type Interval struct {
	Label        string   `json:"label"`
	Type         string   `json:"type"`
	MovingTime   *float64 `json:"moving_time"`
	ElapsedTime  *float64 `json:"elapsed_time"`
	Distance     *float64 `json:"distance"`
	AvgWatts     *float64 `json:"average_watts"`
	MaxWatts     *float64 `json:"max_watts"`
	AvgHeartRate *float64 `json:"average_heartrate"`
	MaxHeartRate *float64 `json:"max_heartrate"`
	AvgCadence   *float64 `json:"average_cadence"`
	AvgSpeed     *float64 `json:"average_speed"`
	Intensity    *float64 `json:"intensity"`
}

// IntervalsAnalysis is the response of the activity intervals endpoint.
type IntervalsAnalysis struct {
	ID        ID         `json:"id"`
	Analyzed  bool       `json:"analyzed"`
	Intervals []Interval `json:"icu_intervals"`
	Groups    []Interval `json:"icu_groups"`
}

// Stream is one data channel (watts, heartrate, ...) of an activity.
// Data may contain nulls where the recording has gaps.
type Stream struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	ValueType string     `json:"valueType"`
	Data      []*float64 `json:"data"`
}

// WellnessEntry is one day of wellness data. The upstream id is the
// date in YYYY-MM-DD form.
type WellnessEntry struct {
	ID           string   `json:"id"`
	CTL          *float64 `json:"ctl"`
	ATL          *float64 `json:"atl"`
	RampRate     *float64 `json:"rampRate"`
	RestingHR    *float64 `json:"restingHR"`
	HRV          *float64 `json:"hrv"`
	SleepSecs    *float64 `json:"sleepSecs"`
	SleepQuality *float64 `json:"sleepQuality"`
	Weight       *float64 `json:"weight"`
	Steps        *float64 `json:"steps"`
	Soreness     *float64 `json:"soreness"`
	Fatigue      *float64 `json:"fatigue"`
	Stress       *float64 `json:"stress"`
	Mood         *float64 `json:"mood"`
	Comments     string   `json:"comments"`
}

// Event is a calendar entry: a planned workout, race, or note.
type Event struct {
	ID             ID       `json:"id"`
	Date           string   `json:"date"`
	StartDateLocal string   `json:"start_date_local"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	Race           *bool    `json:"race"`
	MovingTime     *float64 `json:"moving_time"`
	Distance       *float64 `json:"distance"`
	TrainingLoad   *float64 `json:"icu_training_load"`
}

// When returns the best available date for display.
func (e Event) When() string {
	if e.Date != "" {
		return e.Date
	}
	return e.StartDateLocal
}

// EventData is the request body for creating or updating an event.
type EventData struct {
	StartDateLocal string   `json:"start_date_local"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Type           string   `json:"type"`
	MovingTime     *int     `json:"moving_time,omitempty"`
	Distance       *int     `json:"distance,omitempty"`
}
