package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider implements ContentProvider using the official openai-go SDK (chat completions).
type OpenAIProvider struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAIProvider(cfg ProviderSettings) (*OpenAIProvider, error) {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	var opts []option.RequestOption
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIProvider{Model: model, Opts: opts}, nil
}

func (o *OpenAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	if req.Credential == "" {
		return "", errors.New("openai api key missing")
	}
	opts := append([]option.RequestOption{option.WithAPIKey(req.Credential)}, o.Opts...)
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(req.Prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
