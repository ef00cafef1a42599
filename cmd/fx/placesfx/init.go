package placesfx

import (
	"os"

	"go.uber.org/fx"

	"planmyitinerary/pkg/places"
)

var Module = fx.Provide(provideDirectoryClient)

func provideDirectoryClient() places.DirectoryClientInterface {
	return places.NewTripAdvisorClient(os.Getenv("TRIPADVISOR_API_KEY"))
}
