package request_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func TestItineraryRequestValid(t *testing.T) {
	req := &ItineraryRequest{
		Destination: "Kyoto, Japan",
		NumOfDays:   3,
		StartDate:   "2026-03-11",
		EndDate:     "2026-03-13",
	}

	errs := req.Validate(testNow)
	require.Empty(t, errs)
	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), req.StartDateParsed())
	assert.Equal(t, time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), req.EndDateParsed())
}

func TestItineraryRequestStartingTodayIsValid(t *testing.T) {
	req := &ItineraryRequest{
		Destination: "Kyoto, Japan",
		NumOfDays:   2,
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-11",
	}
	assert.Empty(t, req.Validate(testNow))
}

func TestItineraryRequestFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   ItineraryRequest
		field string
	}{
		{
			name: "missing destination",
			req: ItineraryRequest{
				Destination: "   ",
				NumOfDays:   3,
				StartDate:   "2026-03-11",
				EndDate:     "2026-03-13",
			},
			field: "destination",
		},
		{
			name: "non positive days",
			req: ItineraryRequest{
				Destination: "Kyoto, Japan",
				NumOfDays:   0,
				StartDate:   "2026-03-11",
				EndDate:     "2026-03-13",
			},
			field: "num_of_days",
		},
		{
			name: "unparseable start date",
			req: ItineraryRequest{
				Destination: "Kyoto, Japan",
				NumOfDays:   3,
				StartDate:   "11/03/2026",
				EndDate:     "2026-03-13",
			},
			field: "start_date",
		},
		{
			name: "start date in the past",
			req: ItineraryRequest{
				Destination: "Kyoto, Japan",
				NumOfDays:   3,
				StartDate:   "2026-03-09",
				EndDate:     "2026-03-11",
			},
			field: "start_date",
		},
		{
			name: "end date not after start",
			req: ItineraryRequest{
				Destination: "Kyoto, Japan",
				NumOfDays:   1,
				StartDate:   "2026-03-11",
				EndDate:     "2026-03-11",
			},
			field: "end_date",
		},
		{
			name: "day count does not match range",
			req: ItineraryRequest{
				Destination: "Kyoto, Japan",
				NumOfDays:   5,
				StartDate:   "2026-03-11",
				EndDate:     "2026-03-13",
			},
			field: "num_of_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate(testNow)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestItineraryRequestParsedDatesUnsetOnFailure(t *testing.T) {
	req := &ItineraryRequest{
		Destination: "Kyoto, Japan",
		NumOfDays:   4,
		StartDate:   "2026-03-11",
		EndDate:     "2026-03-13",
	}
	require.NotEmpty(t, req.Validate(testNow))
	assert.True(t, req.StartDateParsed().IsZero())
}
