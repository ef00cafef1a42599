package itineraryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"planmyitinerary/internal/repositories"
	"planmyitinerary/internal/services"
	"planmyitinerary/pkg/places"
	"planmyitinerary/pkg/planner"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideLocationRepo,
	provideLocationService,
	provideItineraryService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideLocationService(
	locationRepo repositories.LocationRepository,
	directory places.DirectoryClientInterface,
) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo, directory)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	locations services.LocationServiceInterface,
	directory places.DirectoryClientInterface,
	plannerClient planner.PlannerClient,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, locations, directory, plannerClient)
}
