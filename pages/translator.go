package pages

import (
	"context"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"

	"ai_content_generator/generator"
	"ai_content_generator/handoff"
	"ai_content_generator/settings"
)

type TranslatorPage struct {
	deps Deps
}

func NewTranslatorPage(deps Deps) *TranslatorPage {
	return &TranslatorPage{deps: deps}
}

type TranslateInput struct {
	Article         string   `json:"article"`
	TargetLanguages []string `json:"targetLanguages"`
}

// TranslatorView is one mounted translator page.
type TranslatorView struct {
	page     *TranslatorPage
	settings settings.Record
	transfer *handoff.Receiver

	mu      sync.Mutex
	results map[string]string
}

// Activate consumes a transferred article, if any.
func (p *TranslatorPage) Activate(ctx context.Context) *TranslatorView {
	v := &TranslatorView{
		page:     p,
		settings: p.deps.Settings.Load(ctx),
		transfer: p.deps.Drafts.Receiver(handoff.Transfer),
	}
	v.TransferredArticle(ctx)
	return v
}

func (v *TranslatorView) Settings() settings.Record { return v.settings }

// TransferredArticle returns the article handed over at activation. It can be
// called on every render; the channel is read only once.
func (v *TranslatorView) TransferredArticle(ctx context.Context) (string, bool) {
	article, ok, err := v.transfer.Take(ctx)
	if err != nil {
		logrus.WithError(err).Warn("[TRANSLATOR] failed to read transferred article")
		return "", false
	}
	return article, ok
}

// Results returns a copy of the last translations keyed by language code.
func (v *TranslatorView) Results() map[string]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]string, len(v.results))
	for k, t := range v.results {
		out[k] = t
	}
	return out
}

func (v *TranslatorView) Translate(ctx context.Context, in TranslateInput) (map[string]string, error) {
	if err := requireCredential(v.settings); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Article) == "" {
		return nil, ErrNoArticle
	}
	langs := dedupe(in.TargetLanguages)
	if len(langs) == 0 {
		return nil, ErrNoTargetLanguages
	}
	err := validation.Validate(langs, validation.Each(validation.By(func(value interface{}) error {
		code, _ := value.(string)
		if !generator.IsTranslationLanguage(code) {
			return validation.NewError("validation_language", "unsupported language "+code)
		}
		return nil
	})))
	if err != nil {
		return nil, ValidationError(err.Error())
	}

	prompt := generator.BuildTranslationPrompt(in.Article, langs)
	text, err := generate(ctx, v.page.deps.Provider, generator.NewRequest(generator.TaskTranslation, v.settings, prompt, langs))
	if err != nil {
		return nil, err
	}
	results, err := generator.SplitTranslations(text, langs)
	if err != nil {
		return nil, ProviderError(err.Error())
	}

	v.mu.Lock()
	v.results = results
	v.mu.Unlock()
	logrus.Infof("[TRANSLATOR] translated article into %s", strings.Join(langs, ","))
	return results, nil
}

// ToggleLanguage adds code to selected or removes it if already there.
func ToggleLanguage(selected []string, code string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, c := range selected {
		if c == code {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		out = append(out, code)
	}
	return out
}

// ToggleAll clears the selection when every language is selected, otherwise
// selects them all.
func ToggleAll(selected []string) []string {
	if len(dedupe(selected)) == len(generator.TranslationLanguages) {
		return []string{}
	}
	return generator.AllLanguageCodes()
}

func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	var out []string
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
