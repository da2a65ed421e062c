package pages

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_content_generator/generator"
	"ai_content_generator/handoff"
	"ai_content_generator/settings"
	"ai_content_generator/storage"
)

// fakeProvider records every request it receives.
type fakeProvider struct {
	reqs []generator.Request
	text string
	err  error
}

func (f *fakeProvider) Generate(_ context.Context, req generator.Request) (string, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return "", f.err
	}
	if f.text != "" {
		return f.text, nil
	}
	return generator.MockProvider{}.Generate(context.Background(), req)
}

type fixture struct {
	deps     Deps
	provider *fakeProvider
}

func newFixture(t *testing.T, credential string) fixture {
	t.Helper()
	backend := storage.NewMemory()
	store := settings.NewStore(backend)
	rec := settings.Defaults()
	rec.Credential = credential
	require.NoError(t, store.Save(context.Background(), rec))

	p := &fakeProvider{}
	return fixture{
		deps:     Deps{Settings: store, Drafts: handoff.NewHub(backend), Provider: p},
		provider: p,
	}
}

func TestOutline_MissingCredentialNeverCallsProvider(t *testing.T) {
	f := newFixture(t, "")
	view := NewOutlinePage(f.deps).Activate(context.Background())

	_, err := view.Generate(context.Background(), "Go")
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Empty(t, f.provider.reqs)

	var cfgErr ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "CONFIGURATION_ERROR", cfgErr.ErrCode())
	assert.Equal(t, http.StatusUnprocessableEntity, cfgErr.StatusCode())
}

func TestOutline_GeneratePublishesForArticlePage(t *testing.T) {
	f := newFixture(t, "k123")
	ctx := context.Background()

	outline, err := NewOutlinePage(f.deps).Activate(ctx).Generate(ctx, "Go channels")
	require.NoError(t, err)
	require.Len(t, f.provider.reqs, 1)
	assert.Equal(t, generator.TaskOutline, f.provider.reqs[0].Task)
	assert.Equal(t, "k123", f.provider.reqs[0].Credential)

	// persistent channel: two article activations both see it
	for i := 0; i < 2; i++ {
		av := NewArticlePage(f.deps).Activate(ctx)
		assert.Equal(t, outline, av.GeneratedOutline())
	}
}

func TestOutline_EmptyTopic(t *testing.T) {
	f := newFixture(t, "k")
	_, err := NewOutlinePage(f.deps).Activate(context.Background()).Generate(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoTopic)
	assert.Empty(t, f.provider.reqs)
}

func TestArticle_UseGeneratedOutlineWithoutOne(t *testing.T) {
	f := newFixture(t, "k")
	view := NewArticlePage(f.deps).Activate(context.Background())

	_, err := view.Generate(context.Background(), ArticleInput{UseGeneratedOutline: true, Outline: "ignored"})
	require.ErrorIs(t, err, ErrNoGeneratedOutline)
	assert.Empty(t, f.provider.reqs)
	assert.Equal(t, "PRECONDITION_ERROR", ErrNoGeneratedOutline.ErrCode())
}

func TestArticle_CredentialCheckedBeforePrecondition(t *testing.T) {
	f := newFixture(t, "")
	view := NewArticlePage(f.deps).Activate(context.Background())
	_, err := view.Generate(context.Background(), ArticleInput{UseGeneratedOutline: true})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestArticle_GenerateFromManualOutline(t *testing.T) {
	f := newFixture(t, "k")
	ctx := context.Background()
	view := NewArticlePage(f.deps).Activate(ctx)

	draft, err := view.Generate(ctx, ArticleInput{Outline: "1. Intro\n2. Body", Keywords: "golang\nchannels"})
	require.NoError(t, err)
	assert.Equal(t, "Generated Article Title", draft.Title)

	require.Len(t, f.provider.reqs, 1)
	req := f.provider.reqs[0]
	assert.Equal(t, generator.TaskArticle, req.Task)
	assert.Equal(t, settings.ToneFormal, req.Tone)
	assert.Equal(t, 500, req.WordCount)
	assert.Contains(t, req.Prompt, "Outline:\n1. Intro\n2. Body")
	assert.Contains(t, req.Prompt, "golang\nchannels")

	got, ok := view.Article()
	require.True(t, ok)
	assert.Equal(t, draft, got)
}

func TestArticle_ProviderErrorShownVerbatim(t *testing.T) {
	f := newFixture(t, "k")
	f.provider.err = errors.New("invalid_api_key: Incorrect API key provided")
	ctx := context.Background()
	view := NewArticlePage(f.deps).Activate(ctx)

	_, err := view.Generate(ctx, ArticleInput{Outline: "x"})
	require.Error(t, err)
	assert.Equal(t, ProviderError("invalid_api_key: Incorrect API key provided"), err)
	assert.Len(t, f.provider.reqs, 1, "no retry")

	_, ok := view.Article()
	assert.False(t, ok, "no partial result")
	_, err = view.TransferToTranslator(ctx)
	assert.ErrorIs(t, err, ErrNoArticleGenerated)
}

func TestArticleToTranslator_SingleDelivery(t *testing.T) {
	f := newFixture(t, "k")
	ctx := context.Background()

	av := NewArticlePage(f.deps).Activate(ctx)
	draft, err := av.Generate(ctx, ArticleInput{Outline: "x"})
	require.NoError(t, err)
	route, err := av.TransferToTranslator(ctx)
	require.NoError(t, err)
	assert.Equal(t, RouteTranslator, route)

	tv := NewTranslatorPage(f.deps).Activate(ctx)
	for i := 0; i < 3; i++ {
		article, ok := tv.TransferredArticle(ctx)
		require.True(t, ok, "re-render %d keeps the article", i)
		assert.Equal(t, draft.Markdown, article)
	}

	// a second mount finds the channel empty
	tv2 := NewTranslatorPage(f.deps).Activate(ctx)
	_, ok := tv2.TransferredArticle(ctx)
	assert.False(t, ok)
}

func TestTranslator_Translate(t *testing.T) {
	f := newFixture(t, "k")
	ctx := context.Background()
	view := NewTranslatorPage(f.deps).Activate(ctx)

	got, err := view.Translate(ctx, TranslateInput{Article: "# Hi", TargetLanguages: []string{"de", "JA", "de"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"de": "Translated article in de will appear here.",
		"ja": "Translated article in ja will appear here.",
	}, got)
	require.Len(t, f.provider.reqs, 1, "one provider call for all languages")
	assert.Equal(t, []string{"de", "ja"}, f.provider.reqs[0].TargetLanguages)
	assert.Equal(t, got, view.Results())
}

func TestTranslator_Preconditions(t *testing.T) {
	f := newFixture(t, "k")
	ctx := context.Background()
	view := NewTranslatorPage(f.deps).Activate(ctx)

	_, err := view.Translate(ctx, TranslateInput{TargetLanguages: []string{"de"}})
	assert.ErrorIs(t, err, ErrNoArticle)

	_, err = view.Translate(ctx, TranslateInput{Article: "a"})
	assert.ErrorIs(t, err, ErrNoTargetLanguages)

	_, err = view.Translate(ctx, TranslateInput{Article: "a", TargetLanguages: []string{"de", "xx"}})
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "unsupported language xx")

	assert.Empty(t, f.provider.reqs)
}

func TestTranslator_IncompleteAnswerIsProviderError(t *testing.T) {
	f := newFixture(t, "k")
	f.provider.text = "=== de ===\nHallo"
	ctx := context.Background()
	view := NewTranslatorPage(f.deps).Activate(ctx)

	_, err := view.Translate(ctx, TranslateInput{Article: "a", TargetLanguages: []string{"de", "fr"}})
	assert.Equal(t, ProviderError("provider returned no translation for fr"), err)
	assert.Empty(t, view.Results())
}

func TestToggleLanguage(t *testing.T) {
	assert.Equal(t, []string{"de", "fr"}, ToggleLanguage([]string{"de"}, "fr"))
	assert.Equal(t, []string{"fr"}, ToggleLanguage([]string{"de", "fr"}, "de"))

	all := ToggleAll(nil)
	assert.Len(t, all, len(generator.TranslationLanguages))
	assert.Empty(t, ToggleAll(all))
}

func TestSettingsPage(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	page := NewSettingsPage(f.deps)

	rec := page.Activate(ctx)
	assert.Equal(t, settings.Defaults(), rec)

	rec.Credential = "k123"
	rec.WordCount = 800
	msg, err := page.Save(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, SavedMessage, msg)

	got := page.Activate(ctx)
	assert.Equal(t, 800, got.WordCount)
	assert.Equal(t, settings.ToneFormal, got.Tone)
	assert.Equal(t, 3, got.H2Count)

	rec.Tone = "angry"
	_, err = page.Save(ctx, rec)
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, http.StatusBadRequest, verr.StatusCode())
}

func TestActivation_SnapshotIsolation(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	view := NewOutlinePage(f.deps).Activate(ctx)

	rec := settings.Defaults()
	rec.Credential = "k"
	_, err := NewSettingsPage(f.deps).Save(ctx, rec)
	require.NoError(t, err)

	// the mounted view keeps the snapshot it was activated with
	_, err = view.Generate(ctx, "Go")
	assert.ErrorIs(t, err, ErrMissingCredential)

	_, err = NewOutlinePage(f.deps).Activate(ctx).Generate(ctx, "Go")
	assert.NoError(t, err)
}
