// Package pages holds the page controllers. Each Activate call takes its own
// settings snapshot, so no controller sees another one's in-memory state.
package pages

import (
	"context"

	"ai_content_generator/generator"
	"ai_content_generator/handoff"
	"ai_content_generator/settings"
)

// Deps are shared by every controller.
type Deps struct {
	Settings *settings.Store
	Drafts   *handoff.Hub
	Provider generator.ContentProvider
}

// Routes of the navigation shell.
const (
	RouteOutline    = "/"
	RouteArticle    = "/article-generator"
	RouteTranslator = "/article-translator"
	RouteSettings   = "/settings"
)

func requireCredential(rec settings.Record) error {
	if !rec.HasCredential() {
		return ErrMissingCredential
	}
	return nil
}

// generate runs one provider call and turns a failure into a ProviderError.
func generate(ctx context.Context, p generator.ContentProvider, req generator.Request) (string, error) {
	resp := generator.Invoke(ctx, p, req)
	if resp.Failed() {
		return "", ProviderError(resp.Error)
	}
	return resp.Text, nil
}
