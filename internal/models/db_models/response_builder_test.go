package db_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItinerary() *Itinerary {
	location := Location{
		ID:       "12345",
		Name:     "Sagrada Familia",
		City:     "Barcelona",
		Latitude: "41.40363",
		Images: []Image{
			{LocationID: "12345", Thumbnail: "https://img/t.jpg", Original: "https://img/o.jpg"},
			{LocationID: "12345", Original: "https://img/o2.jpg"},
		},
	}

	return &Itinerary{
		BaseModel: BaseModel{
			ID:        uuid.New(),
			CreatedAt: 1767225600,
		},
		Name:        "Barcelona Itinerary for 2 days",
		Destination: "Barcelona, Spain",
		StartDate:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
		TotalDays:   2,
		ImageURL:    "https://img/o.jpg",
		Activities: []Activity{
			{
				BaseModel:   BaseModel{ID: uuid.New()},
				LocationID:  "12345",
				Name:        "Sagrada Familia",
				Description: "Morning visit.",
				Duration:    "2 hours",
				Day:         "1",
				TimeOfDay:   "morning",
				Location:    location,
			},
			{
				BaseModel:  BaseModel{ID: uuid.New()},
				LocationID: "12345",
				Name:       "Park Guell",
				Day:        "1",
				TimeOfDay:  "afternoon",
				Location:   location,
			},
			{
				BaseModel:  BaseModel{ID: uuid.New()},
				LocationID: "12345",
				Name:       "Gothic Quarter",
				Day:        "2",
				TimeOfDay:  "morning",
				Location:   location,
			},
		},
	}
}

func TestBuildItineraryResponseFormatsDates(t *testing.T) {
	resp := BuildItineraryResponse(testItinerary())

	assert.Equal(t, "2026-04-01", resp.StartDate)
	assert.Equal(t, "2026-04-02", resp.EndDate)
	assert.Equal(t, "Barcelona Itinerary for 2 days", resp.Name)
	assert.Equal(t, "https://img/o.jpg", resp.ImageURL)
	assert.Equal(t, int64(1767225600), resp.CreatedAt)
}

func TestBuildItineraryDetailResponseGroupsByDay(t *testing.T) {
	doc := BuildItineraryDetailResponse(testItinerary())

	require.Len(t, doc.Activities, 2)
	require.Len(t, doc.Activities[1], 2)
	require.Len(t, doc.Activities[2], 1)

	// Fetched order is preserved inside a day group.
	assert.Equal(t, "Sagrada Familia", doc.Activities[1][0].Name)
	assert.Equal(t, "Park Guell", doc.Activities[1][1].Name)
	assert.Equal(t, "Gothic Quarter", doc.Activities[2][0].Name)
}

func TestBuildItineraryDetailResponseNestsPlaceData(t *testing.T) {
	doc := BuildItineraryDetailResponse(testItinerary())

	activity := doc.Activities[1][0]
	assert.Equal(t, "12345", activity.PlaceDetails.LocationID)
	assert.Equal(t, "Barcelona", activity.PlaceDetails.City)
	assert.Equal(t, "41.40363", activity.PlaceDetails.Latitude)

	require.Len(t, activity.PlaceImages, 2)
	assert.Equal(t, "https://img/o.jpg", activity.PlaceImages[0].Original)
	assert.Equal(t, "https://img/t.jpg", activity.PlaceImages[0].Thumbnail)
	assert.Equal(t, "https://img/o2.jpg", activity.PlaceImages[1].Original)
}

func TestBuildItineraryDetailResponseEmptyActivities(t *testing.T) {
	itinerary := testItinerary()
	itinerary.Activities = nil

	doc := BuildItineraryDetailResponse(itinerary)
	assert.Empty(t, doc.Activities)
}
