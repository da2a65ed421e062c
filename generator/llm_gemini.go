package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider implements ContentProvider on the Gemini API.
type GeminiProvider struct {
	Model string
}

func NewGeminiProvider(cfg ProviderSettings) (*GeminiProvider, error) {
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{Model: model}, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	if req.Credential == "" {
		return "", errors.New("gemini api key missing")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  req.Credential,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	result, err := client.Models.GenerateContent(ctx, g.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", errors.New("gemini: empty response")
	}
	return strings.TrimSpace(result.Text()), nil
}
