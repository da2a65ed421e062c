package pages

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ai_content_generator/settings"
)

// SavedMessage confirms a durable settings write.
const SavedMessage = "Settings saved!"

type SettingsPage struct {
	deps Deps
}

func NewSettingsPage(deps Deps) *SettingsPage {
	return &SettingsPage{deps: deps}
}

func (p *SettingsPage) Activate(ctx context.Context) settings.Record {
	return p.deps.Settings.Load(ctx)
}

// Save writes the whole record and returns the confirmation shown to the user.
func (p *SettingsPage) Save(ctx context.Context, rec settings.Record) (string, error) {
	if err := p.deps.Settings.Save(ctx, rec); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return "", ValidationError(err.Error())
		}
		return "", err
	}
	return SavedMessage, nil
}
