package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiPlaceClient implements PlaceInferenceClient using Google's Gemini models
type GeminiPlaceClient struct {
	client *genai.Client
	model  string
}

// NewGeminiPlaceClient creates a new Gemini client
func NewGeminiPlaceClient(apiKey, model string) (PlaceInferenceClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlaceClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlaceClient) InferCoordinates(ctx context.Context, title, subtitle, destination string) (float64, float64, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output; low temperature keeps coordinates stable.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetMaxOutputTokens(200)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(buildPlacePrompt(title, subtitle, destination)))
	if err != nil {
		return 0, 0, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, 0, fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return parseCoordinateJSON(content)
}
