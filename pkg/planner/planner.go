package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GeneratedActivity is one entry of the raw day-by-day plan returned by the
// generative model, before any place resolution happens.
type GeneratedActivity struct {
	DayNumber    int    `json:"day_number"`
	TimeOfDay    string `json:"time_of_day"`
	PlaceName    string `json:"place_name"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
	TouristPlace bool   `json:"tourist_place"`
}

// PlannerClient produces a raw itinerary plan for a destination. A single
// attempt is made; callers decide whether a failure is retryable.
type PlannerClient interface {
	GeneratePlan(ctx context.Context, destination string, numDays int, mustIncludes []string) ([]GeneratedActivity, error)
}

// NewPlannerClient selects the generation provider from config.
func NewPlannerClient(provider, apiKey, model string) (PlannerClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlanner(apiKey, model), nil
	case "gemini", "":
		return NewGeminiPlanner(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", provider)
	}
}

func buildPlanPrompt(destination string, numDays int, mustIncludes []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Provide a JSON response listing top tourist places around %s for a %d-day trip.\n", destination, numDays)
	sb.WriteString("For each place, include the recommended duration to spend there and a 60-word description about the place.\n")
	if len(mustIncludes) > 0 {
		fmt.Fprintf(&sb, "Create an itinerary based on this, which must include %s.\n", strings.Join(mustIncludes, ", "))
	}
	sb.WriteString("Ensure no extra text outside of the JSON format.\n")
	sb.WriteString("Return a JSON array structured as follows:\n\n")
	sb.WriteString(`[
  {
    "day_number": 1,
    "time_of_day": "morning/afternoon/evening",
    "place_name": "name of the place",
    "duration": "time to spend at the place",
    "description": "60-word description of the place",
    "tourist_place": true
  }
]`)
	sb.WriteString("\n\nReturn JSON only. No comments, no markdown.")

	return sb.String()
}

// parsePlanContent strips markdown fencing the model may wrap around the
// payload and decodes the activity list.
func parsePlanContent(content string) ([]GeneratedActivity, error) {
	content = cleanJSONResponse(content)

	var activities []GeneratedActivity
	if err := json.Unmarshal([]byte(content), &activities); err != nil {
		return nil, fmt.Errorf("plan is not valid JSON: %w", err)
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("plan contains no activities")
	}
	return activities, nil
}

// cleanJSONResponse removes code fences and any prose around the JSON array.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "[")
	if start == -1 {
		return response
	}
	end := findMatchingBracket(response, start)
	if end == -1 {
		return response
	}
	return response[start : end+1]
}

func findMatchingBracket(s string, start int) int {
	if start >= len(s) || s[start] != '[' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
