package planner

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlanner is the alternate provider behind the same interface.
type OpenAIPlanner struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlanner(apiKey, model string) *OpenAIPlanner {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlanner{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAIPlanner) GeneratePlan(ctx context.Context, destination string, numDays int, mustIncludes []string) ([]GeneratedActivity, error) {
	if numDays < 1 || numDays > 30 {
		return nil, fmt.Errorf("day count must be between 1 and 30")
	}

	prompt := buildPlanPrompt(destination, numDays, mustIncludes)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no content generated")
	}

	return parsePlanContent(resp.Choices[0].Message.Content)
}
