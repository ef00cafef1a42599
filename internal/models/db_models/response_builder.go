package db_models

import (
	"strconv"

	"planmyitinerary/internal/models/response_models"
)

const dateLayout = "2006-01-02"

func BuildItineraryResponse(itinerary *Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:          itinerary.ID.String(),
		Name:        itinerary.Name,
		Destination: itinerary.Destination,
		StartDate:   itinerary.StartDate.Format(dateLayout),
		EndDate:     itinerary.EndDate.Format(dateLayout),
		TotalDays:   itinerary.TotalDays,
		ImageURL:    itinerary.ImageURL,
		CreatedAt:   itinerary.CreatedAt,
	}
}

// BuildItineraryDetailResponse groups the itinerary's activities by day
// number and nests each activity's location and image set. Activities keep
// their fetched order inside each day group.
func BuildItineraryDetailResponse(itinerary *Itinerary) *response_models.ItineraryDetailResponse {
	out := &response_models.ItineraryDetailResponse{
		ItineraryResponse: BuildItineraryResponse(itinerary),
		Activities:        make(map[int][]response_models.ActivityResponse),
	}

	for i := range itinerary.Activities {
		activity := &itinerary.Activities[i]
		day, _ := strconv.Atoi(activity.Day)
		out.Activities[day] = append(out.Activities[day], buildActivityResponse(activity))
	}
	return out
}

func buildActivityResponse(activity *Activity) response_models.ActivityResponse {
	images := make([]response_models.PlaceImage, 0, len(activity.Location.Images))
	for _, image := range activity.Location.Images {
		images = append(images, response_models.PlaceImage{
			Thumbnail: image.Thumbnail,
			Small:     image.Small,
			Medium:    image.Medium,
			Large:     image.Large,
			Original:  image.Original,
		})
	}

	return response_models.ActivityResponse{
		ID:          activity.ID.String(),
		Name:        activity.Name,
		Description: activity.Description,
		Duration:    activity.Duration,
		TimeOfDay:   activity.TimeOfDay,
		PlaceDetails: response_models.PlaceDetails{
			LocationID:    activity.Location.ID,
			Name:          activity.Location.Name,
			Street1:       activity.Location.Street1,
			Street2:       activity.Location.Street2,
			City:          activity.Location.City,
			State:         activity.Location.State,
			Country:       activity.Location.Country,
			PostalCode:    activity.Location.PostalCode,
			AddressString: activity.Location.AddressString,
			Latitude:      activity.Location.Latitude,
			Longitude:     activity.Location.Longitude,
			Ranking:       activity.Location.Ranking,
			Rating:        activity.Location.Rating,
		},
		PlaceImages: images,
	}
}
