package storage

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyKey is returned when a backend is asked to work on an empty key.
var ErrEmptyKey = errors.New("storage: empty key")

// Backend 是设置与草稿共用的键值存储介质。
// Get/Take 在键不存在时返回 ok=false 且 err=nil。
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	// Take returns the value and removes it in one step.
	Take(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
