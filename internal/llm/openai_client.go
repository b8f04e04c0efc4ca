package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical habit coaching assistant for a 90-day health program.

You receive one user's weekly assessment: per-pillar achievement (steps, water, sleep, mood check-ins), consistency streaks, and the progression decision the program engine recommended. Base your conclusions only on the provided data.

Your goals:
- Summarize the week in clear, encouraging but honest language.
- Name what measurably went well (wins) with the numbers behind them.
- Give concrete behavioral focus areas for the coming week, aligned with the engine's recommendation (ADVANCE, EXTEND, or RESET).

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (walking habits, hydration prompts, wind-down routines, check-in timing).
- If the data is marked historical, say the numbers come from an earlier week.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the week and what the recommendation means.",
  "wins": [
    "2-4 bullet points naming specific things that went well, with numbers."
  ],
  "focus_areas": [
    "2-4 concrete, non-medical suggestions for the coming week.",
    "If the recommendation is EXTEND, the first item must address the weakest pillar."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's weekly assessment:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM is the interface for generating weekly coaching narratives.
type CoachLLM interface {
	// GenerateNarrative takes the weekly context and returns an
	// LLM-generated narrative.
	GenerateNarrative(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachNarrative, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for coaching narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateNarrative calls OpenAI to generate the weekly narrative.
func (c *OpenAIClient) GenerateNarrative(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachNarrative, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(coachCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var narrative domain.CoachNarrative
	if err := json.Unmarshal([]byte(content), &narrative); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &narrative, nil
}
