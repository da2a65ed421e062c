package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	valkeylib "github.com/valkey-io/valkey-go"
)

// DefaultConnectTimeout bounds the initial PING.
const DefaultConnectTimeout = 5 * time.Second

// ValkeyConfig holds the connection settings for a Valkey backend.
type ValkeyConfig struct {
	Address        string
	Password       string
	DB             int
	KeyPrefix      string
	ConnectTimeout time.Duration
}

// Valkey stores keys in a Valkey (or Redis) server. Take uses GETDEL.
type Valkey struct {
	inner  valkeylib.Client
	prefix string
}

// NewValkey connects and pings the server; the caller owns Close.
func NewValkey(cfg ValkeyConfig) (*Valkey, error) {
	opts := valkeylib.ClientOption{
		InitAddress: []string{cfg.Address},
		SelectDB:    cfg.DB,
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	inner, err := valkeylib.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	timeout := cfg.ConnectTimeout
	if timeout == 0 {
		timeout = DefaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := inner.Do(ctx, inner.B().Ping().Build()).Error(); err != nil {
		inner.Close()
		return nil, fmt.Errorf("failed to ping valkey (timeout: %v): %w", timeout, err)
	}

	prefix := cfg.KeyPrefix
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &Valkey{inner: inner, prefix: prefix}, nil
}

func (v *Valkey) key(k string) string { return v.prefix + k }

func (v *Valkey) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	s, err := v.inner.Do(ctx, v.inner.B().Get().Key(v.key(key)).Build()).ToString()
	if valkeylib.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return s, true, nil
}

func (v *Valkey) Put(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := v.inner.Do(ctx, v.inner.B().Set().Key(v.key(key)).Value(value).Build()).Error(); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (v *Valkey) Take(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	s, err := v.inner.Do(ctx, v.inner.B().Getdel().Key(v.key(key)).Build()).ToString()
	if valkeylib.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to take %s: %w", key, err)
	}
	return s, true, nil
}

func (v *Valkey) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := v.inner.Do(ctx, v.inner.B().Del().Key(v.key(key)).Build()).Error(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (v *Valkey) Close() error {
	v.inner.Close()
	return nil
}
