package plannerfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"planmyitinerary/pkg/planner"
)

var Module = fx.Provide(providePlannerClient)

func providePlannerClient() planner.PlannerClient {
	provider := os.Getenv("PLANNER_PROVIDER") // "gemini" (default) or "openai"

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := planner.NewPlannerClient(provider, apiKey, os.Getenv("PLANNER_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize planner client: %v", err)
	}
	return client
}
