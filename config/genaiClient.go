package config

import (
	"context"
	"fmt"
	"os"

	genai "google.golang.org/genai"
)

// NewGenAIClient builds a Gemini API client for a single call. Clients
// are created just in time so a changed GEMINI_API_KEY is picked up
// without a restart.
func NewGenAIClient(ctx context.Context) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return cli, nil
}

// GenAIKey returns the configured Gemini API key, which the video
// download URI needs appended.
func GenAIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
