// Package oracle implements the narrative oracle on Gemini. The caller owns
// prompt content and response validation; this client only moves text.
package oracle

import (
	"context"
	"fmt"

	"profile-stack/shared/config"

	"google.golang.org/genai"
)

type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGemini(ctx context.Context, cfg *config.AIConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}, nil
}

// Generate sends the payload under the given system instructions and returns
// the raw response text. An empty response is an error; there is nothing
// useful downstream can do with it.
func (g *Gemini) Generate(ctx context.Context, instructions, payload string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
		ResponseMIMEType:  "application/json",
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(payload), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return text, nil
}
