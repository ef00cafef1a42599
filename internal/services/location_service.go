package services

import (
	"context"
	"fmt"
	"log"

	dbm "planmyitinerary/internal/models/db_models"
	"planmyitinerary/internal/repositories"
	"planmyitinerary/pkg/places"
	"planmyitinerary/pkg/utils"
)

// LocationServiceInterface is the store-once cache over the place directory.
// Locations and image sets are fetched and persisted at most once per place
// id and never refreshed afterwards.
type LocationServiceInterface interface {
	EnsureLocation(ctx context.Context, placeID string) (*dbm.Location, error)
	EnsureImages(ctx context.Context, placeID string) ([]dbm.Image, error)
}

type LocationService struct {
	locationRepo repositories.LocationRepository
	directory    places.DirectoryClientInterface
}

func NewLocationService(
	locationRepo repositories.LocationRepository,
	directory places.DirectoryClientInterface,
) LocationServiceInterface {
	return &LocationService{
		locationRepo: locationRepo,
		directory:    directory,
	}
}

// EnsureLocation returns the stored location for placeID, fetching and
// persisting it on first sight. ErrUnresolvedPlace means the directory could
// not supply details and the caller should skip the activity.
func (l *LocationService) EnsureLocation(ctx context.Context, placeID string) (*dbm.Location, error) {
	existing, err := l.locationRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	record := l.directory.GetDetails(ctx, placeID)
	if record == nil {
		return nil, fmt.Errorf("%w: no details for place %s", utils.ErrUnresolvedPlace, placeID)
	}

	location := &dbm.Location{
		ID:            record.LocationID,
		Name:          record.Name,
		Street1:       record.Street1,
		Street2:       record.Street2,
		City:          record.City,
		State:         record.State,
		Country:       record.Country,
		PostalCode:    record.PostalCode,
		AddressString: record.AddressString,
		Latitude:      record.Latitude,
		Longitude:     record.Longitude,
		Ranking:       record.Ranking,
		Rating:        record.Rating,
	}
	if location.ID == "" {
		location.ID = placeID
	}

	stored, err := l.locationRepo.InsertIfAbsent(ctx, location)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stored, nil
}

// EnsureImages returns the stored image set for placeID, fetching and
// persisting it once if none exists yet. A location whose fetch yields
// nothing simply keeps an empty image set.
func (l *LocationService) EnsureImages(ctx context.Context, placeID string) ([]dbm.Image, error) {
	hasImages, err := l.locationRepo.HasImages(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hasImages {
		images, err := l.locationRepo.ListImages(ctx, placeID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return images, nil
	}

	records := l.directory.GetPhotos(ctx, placeID)
	if len(records) == 0 {
		log.Printf("location: no photos available for place %s", placeID)
		return nil, nil
	}

	images := make([]dbm.Image, 0, len(records))
	for _, record := range records {
		images = append(images, dbm.Image{
			LocationID: record.LocationID,
			Thumbnail:  record.Thumbnail,
			Small:      record.Small,
			Medium:     record.Medium,
			Large:      record.Large,
			Original:   record.Original,
		})
	}

	if err := l.locationRepo.InsertImages(ctx, images); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return images, nil
}
