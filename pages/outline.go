package pages

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"ai_content_generator/generator"
	"ai_content_generator/handoff"
	"ai_content_generator/settings"
)

type OutlinePage struct {
	deps Deps
}

func NewOutlinePage(deps Deps) *OutlinePage {
	return &OutlinePage{deps: deps}
}

// OutlineView is one mounted outline page.
type OutlineView struct {
	page     *OutlinePage
	settings settings.Record

	mu      sync.Mutex
	outline string
}

func (p *OutlinePage) Activate(ctx context.Context) *OutlineView {
	return &OutlineView{page: p, settings: p.deps.Settings.Load(ctx)}
}

func (v *OutlineView) Settings() settings.Record { return v.settings }

// Outline returns the last generated outline, or "".
func (v *OutlineView) Outline() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.outline
}

// Generate asks the provider for an outline and publishes it for the article page.
func (v *OutlineView) Generate(ctx context.Context, topic string) (string, error) {
	if err := requireCredential(v.settings); err != nil {
		return "", err
	}
	if strings.TrimSpace(topic) == "" {
		return "", ErrNoTopic
	}

	req := generator.NewRequest(generator.TaskOutline, v.settings, generator.BuildOutlinePrompt(v.settings, topic), nil)
	text, err := generate(ctx, v.page.deps.Provider, req)
	if err != nil {
		return "", err
	}
	outline := strings.TrimSpace(text)
	if err := v.page.deps.Drafts.Publish(ctx, handoff.Outline, outline); err != nil {
		return "", fmt.Errorf("failed to keep outline: %w", err)
	}

	v.mu.Lock()
	v.outline = outline
	v.mu.Unlock()
	logrus.Infof("[OUTLINE] generated outline for topic %q (%d bytes)", topic, len(outline))
	return outline, nil
}
