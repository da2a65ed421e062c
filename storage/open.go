package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Backend names accepted by Open.
const (
	KindMemory = "memory"
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindValkey = "valkey"
)

// Kinds lists the backend names in the order they are documented.
var Kinds = []string{KindMemory, KindFile, KindSQLite, KindValkey}

// Options selects and configures a backend.
type Options struct {
	Kind       string
	Dir        string
	SQLitePath string
	Valkey     ValkeyConfig
}

// Open builds the backend named by opts.Kind.
func Open(opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case KindMemory, "":
		return NewMemory(), nil
	case KindFile:
		return NewFile(opts.Dir)
	case KindSQLite:
		path := opts.SQLitePath
		if path == "" {
			path = filepath.Join(opts.Dir, "content.db")
		}
		return OpenSQLite(path)
	case KindValkey:
		return NewValkey(opts.Valkey)
	default:
		return nil, fmt.Errorf("storage backend %s not supported", opts.Kind)
	}
}
