package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"planmyitinerary/pkg/utils"
)

const defaultBaseURL = "https://api.content.tripadvisor.com/api/v1"

// LocationRecord is the flattened place detail document. Latitude, longitude
// and rating stay as text so upstream precision is kept verbatim.
type LocationRecord struct {
	LocationID    string
	Name          string
	Street1       string
	Street2       string
	City          string
	State         string
	Country       string
	PostalCode    string
	AddressString string
	Latitude      string
	Longitude     string
	Ranking       string
	Rating        string
}

// ImageRecord holds the five size variants of one photo. Missing variants
// stay empty.
type ImageRecord struct {
	LocationID string
	Thumbnail  string
	Small      string
	Medium     string
	Large      string
	Original   string
}

// DirectoryClientInterface wraps the place directory's search, details and
// photos endpoints. Every operation degrades to an absence value on upstream
// failure; transport errors never cross this boundary.
type DirectoryClientInterface interface {
	FindPlaceID(ctx context.Context, placeName, destination string) string
	GetDetails(ctx context.Context, placeID string) *LocationRecord
	GetPhotos(ctx context.Context, placeID string) []ImageRecord
}

type TripAdvisorClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewTripAdvisorClient(apiKey string) *TripAdvisorClient {
	return &TripAdvisorClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTripAdvisorClientWithBaseURL exists for tests against a local server.
func NewTripAdvisorClientWithBaseURL(apiKey, baseURL string) *TripAdvisorClient {
	c := NewTripAdvisorClient(apiKey)
	c.baseURL = baseURL
	return c
}

type searchResponse struct {
	Data []struct {
		LocationID string `json:"location_id"`
		Name       string `json:"name"`
	} `json:"data"`
}

// FindPlaceID searches "placeName, destination" and returns the id of the
// first result whose name is a fuzzy match for placeName, or "" if none is.
func (c *TripAdvisorClient) FindPlaceID(ctx context.Context, placeName, destination string) string {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("searchQuery", fmt.Sprintf("%s, %s", placeName, destination))

	body, ok := c.get(ctx, c.baseURL+"/location/search?"+params.Encode())
	if !ok {
		return ""
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("places: search response for %q not parsable: %v", placeName, err)
		return ""
	}

	for _, candidate := range result.Data {
		if utils.MatchesPlaceName(placeName, candidate.Name, utils.DefaultMatchThreshold) {
			return candidate.LocationID
		}
	}
	return ""
}

type detailsResponse struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	AddressObj struct {
		Street1       string `json:"street1"`
		Street2       string `json:"street2"`
		City          string `json:"city"`
		State         string `json:"state"`
		Country       string `json:"country"`
		PostalCode    string `json:"postalcode"`
		AddressString string `json:"address_string"`
	} `json:"address_obj"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	RankingData *struct {
		RankingString string `json:"ranking_string"`
	} `json:"ranking_data"`
	Rating string `json:"rating"`
}

// GetDetails fetches and flattens the detail document for a place. A place
// without ranking data simply has an empty ranking.
func (c *TripAdvisorClient) GetDetails(ctx context.Context, placeID string) *LocationRecord {
	params := url.Values{}
	params.Set("key", c.apiKey)

	body, ok := c.get(ctx, fmt.Sprintf("%s/location/%s/details?%s", c.baseURL, placeID, params.Encode()))
	if !ok {
		return nil
	}

	var result detailsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("places: details response for %s not parsable: %v", placeID, err)
		return nil
	}

	record := &LocationRecord{
		LocationID:    result.LocationID,
		Name:          result.Name,
		Street1:       result.AddressObj.Street1,
		Street2:       result.AddressObj.Street2,
		City:          result.AddressObj.City,
		State:         result.AddressObj.State,
		Country:       result.AddressObj.Country,
		PostalCode:    result.AddressObj.PostalCode,
		AddressString: result.AddressObj.AddressString,
		Latitude:      result.Latitude,
		Longitude:     result.Longitude,
		Rating:        result.Rating,
	}
	if result.RankingData != nil {
		record.Ranking = result.RankingData.RankingString
	}
	return record
}

type photosResponse struct {
	Data []struct {
		Images map[string]struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"data"`
}

// GetPhotos fetches the photo list for a place. Each photo contributes one
// record tagged with the owning placeID.
func (c *TripAdvisorClient) GetPhotos(ctx context.Context, placeID string) []ImageRecord {
	params := url.Values{}
	params.Set("key", c.apiKey)

	body, ok := c.get(ctx, fmt.Sprintf("%s/location/%s/photos?%s", c.baseURL, placeID, params.Encode()))
	if !ok {
		return nil
	}

	var result photosResponse
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("places: photos response for %s not parsable: %v", placeID, err)
		return nil
	}

	records := make([]ImageRecord, 0, len(result.Data))
	for _, photo := range result.Data {
		records = append(records, ImageRecord{
			LocationID: placeID,
			Thumbnail:  photo.Images["thumbnail"].URL,
			Small:      photo.Images["small"].URL,
			Medium:     photo.Images["medium"].URL,
			Large:      photo.Images["large"].URL,
			Original:   photo.Images["original"].URL,
		})
	}
	return records
}

// get performs the call and reduces every failure mode, timeouts included,
// to an absence result.
func (c *TripAdvisorClient) get(ctx context.Context, rawURL string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.Printf("places: building request failed: %v", err)
		return nil, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("places: request failed: %v", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("places: unexpected status %d from %s", resp.StatusCode, req.URL.Path)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("places: reading response failed: %v", err)
		return nil, false
	}
	return body, true
}
