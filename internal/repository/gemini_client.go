package repository

import (
	"context"
	"fmt"
	"strings"

	"deck-diff/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

const geminiModel = "gemini-2.0-flash-lite"

// GeminiClient implements domain.CompletionClient on top of Vertex AI.
type GeminiClient struct {
	client *genai.Client
	logger domain.Logger
}

// NewGeminiClient creates a Vertex AI client for the configured project.
func NewGeminiClient(projectID, location string, logger domain.Logger) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &GeminiClient{
		client: client,
		logger: logger,
	}, nil
}

// Complete sends a single prompt and returns the concatenated text reply.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(geminiModel)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
