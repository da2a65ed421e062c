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

type ArticlePage struct {
	deps Deps
}

func NewArticlePage(deps Deps) *ArticlePage {
	return &ArticlePage{deps: deps}
}

// ArticleInput is what the user submits on the article page.
type ArticleInput struct {
	Outline             string `json:"outline"`
	UseGeneratedOutline bool   `json:"useGeneratedOutline"`
	Keywords            string `json:"keywords"`
}

// ArticleView is one mounted article page.
type ArticleView struct {
	page             *ArticlePage
	settings         settings.Record
	generatedOutline string

	mu    sync.Mutex
	draft *generator.Draft
}

// Activate loads settings and the latest generated outline. The outline
// channel is persistent, so reading it here leaves it for later activations.
func (p *ArticlePage) Activate(ctx context.Context) *ArticleView {
	v := &ArticleView{page: p, settings: p.deps.Settings.Load(ctx)}
	outline, ok, err := p.deps.Drafts.Take(ctx, handoff.Outline)
	if err != nil {
		logrus.WithError(err).Warn("[ARTICLE] failed to read generated outline")
	}
	if ok {
		v.generatedOutline = outline
	}
	return v
}

func (v *ArticleView) Settings() settings.Record { return v.settings }

// GeneratedOutline is the outline handed over by the outline page, or "".
func (v *ArticleView) GeneratedOutline() string { return v.generatedOutline }

// Article returns the last generated article.
func (v *ArticleView) Article() (generator.Draft, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.draft == nil {
		return generator.Draft{}, false
	}
	return *v.draft, true
}

func (v *ArticleView) Generate(ctx context.Context, in ArticleInput) (generator.Draft, error) {
	if err := requireCredential(v.settings); err != nil {
		return generator.Draft{}, err
	}
	if in.UseGeneratedOutline && v.generatedOutline == "" {
		return generator.Draft{}, ErrNoGeneratedOutline
	}
	outline := in.Outline
	if in.UseGeneratedOutline {
		outline = v.generatedOutline
	}
	if strings.TrimSpace(outline) == "" {
		return generator.Draft{}, ErrNoOutline
	}

	prompt := generator.BuildArticlePrompt(v.settings, outline, in.Keywords)
	text, err := generate(ctx, v.page.deps.Provider, generator.NewRequest(generator.TaskArticle, v.settings, prompt, nil))
	if err != nil {
		return generator.Draft{}, err
	}
	draft, err := generator.PostProcess(text)
	if err != nil {
		return generator.Draft{}, ProviderError(err.Error())
	}

	v.mu.Lock()
	v.draft = &draft
	v.mu.Unlock()
	logrus.Infof("[ARTICLE] generated article %q (%d bytes)", draft.Title, len(draft.Markdown))
	return draft, nil
}

// TransferToTranslator hands the current article to the translator page and
// returns the route to navigate to.
func (v *ArticleView) TransferToTranslator(ctx context.Context) (string, error) {
	draft, ok := v.Article()
	if !ok {
		return "", ErrNoArticleGenerated
	}
	if err := v.page.deps.Drafts.Publish(ctx, handoff.Transfer, draft.Markdown); err != nil {
		return "", fmt.Errorf("failed to transfer article: %w", err)
	}
	return RouteTranslator, nil
}
