package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlaceClient implements PlaceInferenceClient over the chat API.
type OpenAIPlaceClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlaceClient(apiKey, model string) PlaceInferenceClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlaceClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlaceClient) InferCoordinates(ctx context.Context, title, subtitle, destination string) (float64, float64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		MaxTokens:   200,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPlacePrompt(title, subtitle, destination),
			},
		},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, 0, fmt.Errorf("no content")
	}

	return parseCoordinateJSON(resp.Choices[0].Message.Content)
}
