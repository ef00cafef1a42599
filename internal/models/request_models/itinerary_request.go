package request_models

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ItineraryRequest is the generate-itinerary payload. Dates travel as
// YYYY-MM-DD strings and are parsed during validation.
type ItineraryRequest struct {
	Destination  string   `json:"destination"`
	NumOfDays    int      `json:"num_of_days"`
	MustIncludes []string `json:"must_includes"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`

	parsedStart time.Time
	parsedEnd   time.Time
}

// Validate checks field constraints and cross-field date rules. It returns a
// field-to-message map; an empty map means the request is valid.
func (r *ItineraryRequest) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Destination) == "" {
		errs["destination"] = "destination is required"
	}
	if r.NumOfDays <= 0 {
		errs["num_of_days"] = "num_of_days must be a positive integer"
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		errs["start_date"] = "start_date must be a valid date in YYYY-MM-DD format"
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		errs["end_date"] = "end_date must be a valid date in YYYY-MM-DD format"
	}
	if len(errs) > 0 {
		return errs
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		errs["start_date"] = "start_date must not be in the past"
	}
	if !end.After(start) {
		errs["end_date"] = "end_date must be after start_date"
	}

	span := int(end.Sub(start).Hours()/24) + 1
	if r.NumOfDays > 0 && span != r.NumOfDays {
		errs["num_of_days"] = "num_of_days must match the date range"
	}

	if len(errs) == 0 {
		r.parsedStart = start
		r.parsedEnd = end
	}
	return errs
}

func (r *ItineraryRequest) StartDateParsed() time.Time { return r.parsedStart }
func (r *ItineraryRequest) EndDateParsed() time.Time   { return r.parsedEnd }
