package settings

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"ai_content_generator/storage"
)

// StorageKey is where the record lives in the backend.
const StorageKey = "aiContentGeneratorSettings"

// Store loads and saves the settings record. Each caller gets its own copy;
// nothing is cached between calls.
type Store struct {
	backend storage.Backend
	key     string
}

func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend, key: StorageKey}
}

// Load never fails: an absent, unreadable or corrupt record yields Defaults().
func (s *Store) Load(ctx context.Context) Record {
	raw, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		logrus.WithError(err).Warn("[SETTINGS] failed to read settings, using defaults")
		return Defaults()
	}
	if !ok {
		return Defaults()
	}
	rec, err := Decode([]byte(raw))
	if err != nil {
		logrus.WithError(err).Debug("[SETTINGS] stored settings unparsable, using defaults")
		return Defaults()
	}
	return rec
}

// Save replaces the stored record with r in a single write.
func (s *Store) Save(ctx context.Context, r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	data, err := Encode(r)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.backend.Put(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logrus.Infof("[SETTINGS] saved (tone=%s language=%s wordCount=%d)", r.Tone, r.Language, r.WordCount)
	return nil
}

// Reset removes the stored record; the next Load returns Defaults().
func (s *Store) Reset(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	return nil
}
