package planner

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiPlanner generates plans using Google's Gemini models.
type GeminiPlanner struct {
	client *genai.Client
	model  string
}

func NewGeminiPlanner(apiKey, model string) (*GeminiPlanner, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlanner{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiPlanner) GeneratePlan(ctx context.Context, destination string, numDays int, mustIncludes []string) ([]GeneratedActivity, error) {
	if numDays < 1 || numDays > 30 {
		return nil, fmt.Errorf("day count must be between 1 and 30")
	}

	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	prompt := buildPlanPrompt(destination, numDays, mustIncludes)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return parsePlanContent(content)
}

func (g *GeminiPlanner) Close() error {
	return g.client.Close()
}
