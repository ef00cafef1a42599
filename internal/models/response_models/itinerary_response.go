package response_models

type ItineraryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TotalDays   int    `json:"total_days"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

type PlaceDetails struct {
	LocationID    string `json:"location_id"`
	Name          string `json:"name"`
	Street1       string `json:"street1,omitempty"`
	Street2       string `json:"street2,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postalcode,omitempty"`
	AddressString string `json:"address_string,omitempty"`
	Latitude      string `json:"latitude,omitempty"`
	Longitude     string `json:"longitude,omitempty"`
	Ranking       string `json:"ranking,omitempty"`
	Rating        string `json:"rating,omitempty"`
}

type PlaceImage struct {
	Thumbnail string `json:"thumbnail,omitempty"`
	Small     string `json:"small,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Large     string `json:"large,omitempty"`
	Original  string `json:"original,omitempty"`
}

type ActivityResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Duration     string       `json:"duration"`
	TimeOfDay    string       `json:"time_of_day"`
	PlaceDetails PlaceDetails `json:"place_details"`
	PlaceImages  []PlaceImage `json:"place_images"`
}

// ItineraryDetailResponse is the full shaped document: itinerary fields plus
// activities grouped by day number.
type ItineraryDetailResponse struct {
	ItineraryResponse
	Activities map[int][]ActivityResponse `json:"activities"`
}
