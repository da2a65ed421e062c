package cmd

import (
	"fmt"

	"ai_content_generator/config"
	"ai_content_generator/storage"
)

// openBackend opens the configured storage backend; callers close it.
func openBackend(cfg config.Config) (storage.Backend, error) {
	backend, err := storage.Open(cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	return backend, nil
}
