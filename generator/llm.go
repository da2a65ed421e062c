package generator

import (
	"context"
	"fmt"
	"strings"
)

// ContentProvider 抽象外部文本生成服务，便于替换/Mock。
type ContentProvider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ProviderSettings 提供给具体实现的基础配置。凭证随每次请求传入。
type ProviderSettings struct {
	Name    string
	Model   string
	BaseURL string
}

const systemPrompt = "You are a professional content writer. Output Markdown only, with no extra explanation."

// NewProvider picks an adapter by name.
func NewProvider(cfg ProviderSettings) (ContentProvider, error) {
	switch strings.ToLower(cfg.Name) {
	case "", "mock":
		return MockProvider{}, nil
	case "openai":
		return NewOpenAIProvider(cfg)
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API and needs its own base_url.
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return NewOpenAIProvider(cfg)
	case "gemini":
		return NewGeminiProvider(cfg)
	default:
		return nil, fmt.Errorf("provider %s not supported", cfg.Name)
	}
}
