package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	dbm "planmyitinerary/internal/models/db_models"
	"planmyitinerary/internal/models/request_models"
	"planmyitinerary/internal/models/response_models"
	"planmyitinerary/internal/repositories"
	"planmyitinerary/pkg/places"
	"planmyitinerary/pkg/planner"
	"planmyitinerary/pkg/utils"
)

const DefaultRecentItineraryCount = 5

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, accountID uuid.UUID, req *request_models.ItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	GetRecentItineraries(ctx context.Context, accountID uuid.UUID, count int) ([]response_models.ItineraryResponse, error)
	GetItineraryDetail(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	locations     LocationServiceInterface
	directory     places.DirectoryClientInterface
	planner       planner.PlannerClient
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	locations LocationServiceInterface,
	directory places.DirectoryClientInterface,
	plannerClient planner.PlannerClient,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		locations:     locations,
		directory:     directory,
		planner:       plannerClient,
	}
}

// activityOutcome tags the result of resolving one generated activity, so
// the expected "place not found" case never travels as an error.
type activityOutcome struct {
	resolved bool
	reason   string
}

// GenerateItinerary runs the full workflow: plan generation, itinerary
// creation, per-activity place resolution and cover selection. The itinerary
// and its activities are written in one transaction; shared location and
// image rows are written outside it and survive a rollback.
func (s *ItineraryService) GenerateItinerary(
	ctx context.Context,
	accountID uuid.UUID,
	req *request_models.ItineraryRequest,
) (*response_models.ItineraryDetailResponse, error) {

	plan, err := s.planner.GeneratePlan(ctx, req.Destination, req.NumOfDays, req.MustIncludes)
	if err != nil {
		log.Printf("itinerary: plan generation failed: %v", err)
		return nil, utils.ErrPlanGenerationFailed
	}

	itinerary := &dbm.Itinerary{
		AccountID:   accountID,
		Name:        displayName(req.Destination, req.NumOfDays),
		Destination: req.Destination,
		StartDate:   req.StartDateParsed(),
		EndDate:     req.EndDateParsed(),
		TotalDays:   req.NumOfDays,
	}

	err = s.itineraryRepo.RunInTransaction(ctx, func(txRepo repositories.ItineraryRepository) error {
		if err := txRepo.CreateItinerary(ctx, itinerary); err != nil {
			return err
		}

		coverSet := false
		for _, generated := range plan {
			outcome, err := s.resolveActivity(ctx, txRepo, itinerary.ID, req.Destination, generated, &coverSet)
			if err != nil {
				return err
			}
			if !outcome.resolved {
				log.Printf("itinerary: dropping activity %q: %s", generated.PlaceName, outcome.reason)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("itinerary: persisting itinerary failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.GetItineraryDetail(ctx, itinerary.ID.String())
}

// resolveActivity looks up one generated activity in the place directory,
// persists it and feeds the cover selection. A place that cannot be resolved
// is reported as a skip; only unexpected persistence failures surface as
// errors and abort the transaction.
func (s *ItineraryService) resolveActivity(
	ctx context.Context,
	txRepo repositories.ItineraryRepository,
	itineraryID uuid.UUID,
	destination string,
	generated planner.GeneratedActivity,
	coverSet *bool,
) (activityOutcome, error) {

	placeID := s.directory.FindPlaceID(ctx, generated.PlaceName, destination)
	if placeID == "" {
		return activityOutcome{reason: "no matching place in directory"}, nil
	}

	location, err := s.locations.EnsureLocation(ctx, placeID)
	if err != nil {
		if errors.Is(err, utils.ErrUnresolvedPlace) {
			return activityOutcome{reason: "place details unavailable"}, nil
		}
		return activityOutcome{}, err
	}

	activity := &dbm.Activity{
		ItineraryID: itineraryID,
		LocationID:  location.ID,
		Name:        generated.PlaceName,
		Description: generated.Description,
		Duration:    generated.Duration,
		Day:         strconv.Itoa(generated.DayNumber),
		TimeOfDay:   generated.TimeOfDay,
	}
	if err := txRepo.CreateActivity(ctx, activity); err != nil {
		return activityOutcome{}, err
	}

	images, err := s.locations.EnsureImages(ctx, placeID)
	if err != nil {
		return activityOutcome{}, err
	}

	if !*coverSet {
		if cover := firstOriginalURL(images); cover != "" {
			if err := txRepo.SetCoverImage(ctx, itineraryID, cover); err != nil {
				return activityOutcome{}, err
			}
			*coverSet = true
		}
	}

	return activityOutcome{resolved: true}, nil
}

func (s *ItineraryService) GetRecentItineraries(
	ctx context.Context,
	accountID uuid.UUID,
	count int,
) ([]response_models.ItineraryResponse, error) {
	if count <= 0 {
		return nil, utils.ErrInvalidItineraryCount
	}

	itineraries, err := s.itineraryRepo.ListRecentByAccount(ctx, accountID, count)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, dbm.BuildItineraryResponse(&itineraries[i]))
	}
	return out, nil
}

func (s *ItineraryService) GetItineraryDetail(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.GetDetailByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

// displayName derives the itinerary title from the destination's first
// comma segment.
func displayName(destination string, numDays int) string {
	city := destination
	if idx := strings.Index(destination, ","); idx != -1 {
		city = destination[:idx]
	}
	return strings.TrimSpace(city) + " Itinerary for " + strconv.Itoa(numDays) + " days"
}

// firstOriginalURL picks the first photo carrying an original-size URL.
func firstOriginalURL(images []dbm.Image) string {
	for _, image := range images {
		if image.Original != "" {
			return image.Original
		}
	}
	return ""
}
