package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "planmyitinerary/internal/models/db_models"
	"planmyitinerary/internal/models/request_models"
	"planmyitinerary/internal/repositories"
	"planmyitinerary/pkg/places"
	"planmyitinerary/pkg/planner"
	"planmyitinerary/pkg/utils"
)

type fakeItineraryRepo struct {
	locationRepo *fakeLocationRepo

	itineraries map[uuid.UUID]*dbm.Itinerary
	activities  []dbm.Activity

	failActivityCreate bool
	listCalls          int
}

func newFakeItineraryRepo(locationRepo *fakeLocationRepo) *fakeItineraryRepo {
	return &fakeItineraryRepo{
		locationRepo: locationRepo,
		itineraries:  make(map[uuid.UUID]*dbm.Itinerary),
	}
}

// RunInTransaction snapshots itinerary-side state and restores it when fn
// fails, mimicking a rollback. Location-side state is deliberately owned by
// the separate fakeLocationRepo, which a rollback must not touch.
func (f *fakeItineraryRepo) RunInTransaction(_ context.Context, fn func(txRepo repositories.ItineraryRepository) error) error {
	savedItineraries := make(map[uuid.UUID]*dbm.Itinerary, len(f.itineraries))
	for k, v := range f.itineraries {
		copied := *v
		savedItineraries[k] = &copied
	}
	savedActivities := append([]dbm.Activity(nil), f.activities...)

	if err := fn(f); err != nil {
		f.itineraries = savedItineraries
		f.activities = savedActivities
		return err
	}
	return nil
}

func (f *fakeItineraryRepo) CreateItinerary(_ context.Context, itinerary *dbm.Itinerary) error {
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	itinerary.CreatedAt = time.Now().Unix()
	f.itineraries[itinerary.ID] = itinerary
	return nil
}

func (f *fakeItineraryRepo) CreateActivity(_ context.Context, activity *dbm.Activity) error {
	if f.failActivityCreate {
		return errors.New("insert failed")
	}
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	f.activities = append(f.activities, *activity)
	return nil
}

func (f *fakeItineraryRepo) SetCoverImage(_ context.Context, itineraryID uuid.UUID, url string) error {
	f.itineraries[itineraryID].ImageURL = url
	return nil
}

func (f *fakeItineraryRepo) ListRecentByAccount(_ context.Context, accountID uuid.UUID, limit int) ([]dbm.Itinerary, error) {
	f.listCalls++
	var out []dbm.Itinerary
	for _, itinerary := range f.itineraries {
		if itinerary.AccountID == accountID && len(out) < limit {
			out = append(out, *itinerary)
		}
	}
	return out, nil
}

func (f *fakeItineraryRepo) GetDetailByID(_ context.Context, itineraryID string) (*dbm.Itinerary, error) {
	id, err := uuid.Parse(itineraryID)
	if err != nil {
		return nil, nil
	}
	itinerary, ok := f.itineraries[id]
	if !ok {
		return nil, nil
	}

	loaded := *itinerary
	loaded.Activities = nil
	for _, activity := range f.activities {
		if activity.ItineraryID != id {
			continue
		}
		if location, ok := f.locationRepo.locations[activity.LocationID]; ok {
			activity.Location = *location
			activity.Location.Images = f.locationRepo.images[activity.LocationID]
		}
		loaded.Activities = append(loaded.Activities, activity)
	}
	return &loaded, nil
}

type fakePlanner struct {
	plan []planner.GeneratedActivity
	err  error
}

func (f *fakePlanner) GeneratePlan(context.Context, string, int, []string) ([]planner.GeneratedActivity, error) {
	return f.plan, f.err
}

func validRequest(t *testing.T, numDays int) *request_models.ItineraryRequest {
	t.Helper()
	tomorrow := time.Now().AddDate(0, 0, 1)
	req := &request_models.ItineraryRequest{
		Destination:  "Paris, France",
		NumOfDays:    numDays,
		MustIncludes: []string{"Louvre"},
		StartDate:    tomorrow.Format("2006-01-02"),
		EndDate:      tomorrow.AddDate(0, 0, numDays-1).Format("2006-01-02"),
	}
	require.Empty(t, req.Validate(time.Now()))
	return req
}

func generatedActivity(day int, place string) planner.GeneratedActivity {
	return planner.GeneratedActivity{
		DayNumber:    day,
		TimeOfDay:    "morning",
		PlaceName:    place,
		Duration:     "2 hours",
		Description:  "A place worth seeing.",
		TouristPlace: true,
	}
}

type testEnv struct {
	svc           ItineraryServiceInterface
	itineraryRepo *fakeItineraryRepo
	locationRepo  *fakeLocationRepo
	directory     *fakeDirectory
}

func newTestEnv(plan []planner.GeneratedActivity, planErr error) *testEnv {
	locationRepo := newFakeLocationRepo()
	directory := newFakeDirectory()
	itineraryRepo := newFakeItineraryRepo(locationRepo)

	return &testEnv{
		svc: NewItineraryService(
			itineraryRepo,
			NewLocationService(locationRepo, directory),
			directory,
			&fakePlanner{plan: plan, err: planErr},
		),
		itineraryRepo: itineraryRepo,
		locationRepo:  locationRepo,
		directory:     directory,
	}
}

func (e *testEnv) registerPlace(name, id string, withPhotos bool) {
	e.directory.placeIDs[name] = id
	e.directory.details[id] = &places.LocationRecord{
		LocationID: id,
		Name:       name,
		City:       "Paris",
	}
	if withPhotos {
		e.directory.photos[id] = []places.ImageRecord{
			{LocationID: id, Original: "https://img/" + id + "/original.jpg", Thumbnail: "https://img/" + id + "/thumb.jpg"},
		}
	}
}

func TestGenerateItineraryFullSuccess(t *testing.T) {
	env := newTestEnv([]planner.GeneratedActivity{
		generatedActivity(1, "Louvre Museum"),
		generatedActivity(2, "Eiffel Tower"),
		generatedActivity(3, "Notre-Dame"),
	}, nil)
	env.registerPlace("Louvre Museum", "101", true)
	env.registerPlace("Eiffel Tower", "102", true)
	env.registerPlace("Notre-Dame", "103", true)

	accountID := uuid.New()
	doc, err := env.svc.GenerateItinerary(context.Background(), accountID, validRequest(t, 3))
	require.NoError(t, err)

	assert.Equal(t, "Paris Itinerary for 3 days", doc.Name)
	assert.Equal(t, 3, doc.TotalDays)
	require.Len(t, doc.Activities, 3)
	for day := 1; day <= 3; day++ {
		require.Len(t, doc.Activities[day], 1, "day %d", day)
	}

	first := doc.Activities[1][0]
	assert.Equal(t, "Louvre Museum", first.Name)
	assert.Equal(t, "101", first.PlaceDetails.LocationID)
	assert.Equal(t, "Paris", first.PlaceDetails.City)
	require.Len(t, first.PlaceImages, 1)
	assert.Equal(t, "https://img/101/original.jpg", first.PlaceImages[0].Original)

	// Cover comes from the first successfully imaged location.
	assert.Equal(t, "https://img/101/original.jpg", doc.ImageURL)
}

func TestGenerateItineraryGenerationFailure(t *testing.T) {
	env := newTestEnv(nil, errors.New("model unavailable"))

	_, err := env.svc.GenerateItinerary(context.Background(), uuid.New(), validRequest(t, 3))
	assert.True(t, errors.Is(err, utils.ErrPlanGenerationFailed))

	// Nothing was persisted.
	assert.Empty(t, env.itineraryRepo.itineraries)
	assert.Empty(t, env.itineraryRepo.activities)
}

func TestGenerateItineraryDropsUnmatchedActivity(t *testing.T) {
	env := newTestEnv([]planner.GeneratedActivity{
		generatedActivity(1, "Louvre Museum"),
		generatedActivity(2, "Nonexistent Place ZZZ"),
	}, nil)
	env.registerPlace("Louvre Museum", "101", true)

	doc, err := env.svc.GenerateItinerary(context.Background(), uuid.New(), validRequest(t, 2))
	require.NoError(t, err)

	// The unmatched activity vanishes without surfacing an error.
	require.Len(t, doc.Activities, 1)
	assert.Len(t, doc.Activities[1], 1)
	assert.Empty(t, doc.Activities[2])
}

func TestGenerateItineraryDropsActivityWithoutDetails(t *testing.T) {
	env := newTestEnv([]planner.GeneratedActivity{
		generatedActivity(1, "Louvre Museum"),
		generatedActivity(2, "Eiffel Tower"),
	}, nil)
	env.registerPlace("Louvre Museum", "101", true)
	// Eiffel Tower resolves to an id the details endpoint knows nothing about.
	env.directory.placeIDs["Eiffel Tower"] = "999"

	doc, err := env.svc.GenerateItinerary(context.Background(), uuid.New(), validRequest(t, 2))
	require.NoError(t, err)
	require.Len(t, doc.Activities, 1)
	assert.Len(t, doc.Activities[1], 1)
}

func TestGenerateItineraryCoverImageSetOnce(t *testing.T) {
	env := newTestEnv([]planner.GeneratedActivity{
		generatedActivity(1, "No Photos Place"),
		generatedActivity(1, "Louvre Museum"),
		generatedActivity(2, "Eiffel Tower"),
	}, nil)
	env.registerPlace("No Photos Place", "100", false)
	env.registerPlace("Louvre Museum", "101", true)
	env.registerPlace("Eiffel Tower", "102", true)

	doc, err := env.svc.GenerateItinerary(context.Background(), uuid.New(), validRequest(t, 2))
	require.NoError(t, err)

	// The first location yields no photo, so the second one wins and the
	// third never overwrites it.
	assert.Equal(t, "https://img/101/original.jpg", doc.ImageURL)
}

func TestGenerateItineraryRollbackKeepsSharedRows(t *testing.T) {
	env := newTestEnv([]planner.GeneratedActivity{
		generatedActivity(1, "Louvre Museum"),
	}, nil)
	env.registerPlace("Louvre Museum", "101", true)
	env.itineraryRepo.failActivityCreate = true

	_, err := env.svc.GenerateItinerary(context.Background(), uuid.New(), validRequest(t, 2))
	assert.True(t, errors.Is(err, utils.ErrDatabaseError))

	// The itinerary write rolled back.
	assert.Empty(t, env.itineraryRepo.itineraries)
	assert.Empty(t, env.itineraryRepo.activities)

	// The shared location row survives for future requests.
	assert.NotNil(t, env.locationRepo.locations["101"])
}

func TestGetRecentItinerariesRejectsNonPositiveCount(t *testing.T) {
	env := newTestEnv(nil, nil)

	_, err := env.svc.GetRecentItineraries(context.Background(), uuid.New(), 0)
	assert.True(t, errors.Is(err, utils.ErrInvalidItineraryCount))

	_, err = env.svc.GetRecentItineraries(context.Background(), uuid.New(), -3)
	assert.True(t, errors.Is(err, utils.ErrInvalidItineraryCount))

	// No query ran.
	assert.Equal(t, 0, env.itineraryRepo.listCalls)
}

func TestGetItineraryDetailNotFound(t *testing.T) {
	env := newTestEnv(nil, nil)

	_, err := env.svc.GetItineraryDetail(context.Background(), uuid.New().String())
	assert.True(t, errors.Is(err, utils.ErrItineraryNotFound))
}
