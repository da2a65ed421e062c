package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"ai_content_generator/generator"
	"ai_content_generator/storage"
)

// EnvPrefix is prepended to every environment override, e.g. ACG_STORAGE_BACKEND.
const EnvPrefix = "ACG"

// Config holds process-level settings. User preferences (tone, credential...)
// live in the settings store, not here.
type Config struct {
	ServerAddr string         `mapstructure:"server_addr"`
	LogLevel   string         `mapstructure:"log_level"`
	LogFormat  string         `mapstructure:"log_format"`
	Storage    StorageConfig  `mapstructure:"storage"`
	Provider   ProviderConfig `mapstructure:"provider"`
}

type StorageConfig struct {
	Backend        string `mapstructure:"backend"`
	Dir            string `mapstructure:"dir"`
	SQLitePath     string `mapstructure:"sqlite_path"`
	ValkeyAddress  string `mapstructure:"valkey_address"`
	ValkeyPassword string `mapstructure:"valkey_password"`
	ValkeyDB       int    `mapstructure:"valkey_db"`
	KeyPrefix      string `mapstructure:"key_prefix"`
}

type ProviderConfig struct {
	Name    string        `mapstructure:"name"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("storage.backend", storage.KindFile)
	v.SetDefault("storage.dir", "storages")
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("storage.valkey_address", "localhost:6379")
	v.SetDefault("storage.valkey_password", "")
	v.SetDefault("storage.valkey_db", 0)
	v.SetDefault("storage.key_prefix", "acg")
	v.SetDefault("provider.name", "mock")
	v.SetDefault("provider.model", "")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.timeout", 60*time.Second)
}

// Load reads defaults, then the optional config file, then .env and ACG_*
// environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ServerAddr, validation.Required),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "warning", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.Storage),
		validation.Field(&c.Provider),
	)
}

func (s StorageConfig) Validate() error {
	kinds := make([]interface{}, len(storage.Kinds))
	for i, k := range storage.Kinds {
		kinds[i] = k
	}
	return validation.ValidateStruct(&s,
		validation.Field(&s.Backend, validation.Required, validation.In(kinds...)),
		validation.Field(&s.Dir, validation.When(s.Backend == storage.KindFile, validation.Required)),
		validation.Field(&s.ValkeyAddress, validation.When(s.Backend == storage.KindValkey, validation.Required)),
		validation.Field(&s.ValkeyDB, validation.Min(0)),
	)
}

func (p ProviderConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.In("mock", "openai", "deepseek", "gemini")),
		validation.Field(&p.BaseURL, validation.When(p.Name == "deepseek", validation.Required)),
		validation.Field(&p.Timeout, validation.Min(time.Duration(0))),
	)
}

// StorageOptions maps the storage section onto storage.Open.
func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Kind:       c.Storage.Backend,
		Dir:        c.Storage.Dir,
		SQLitePath: c.Storage.SQLitePath,
		Valkey: storage.ValkeyConfig{
			Address:   c.Storage.ValkeyAddress,
			Password:  c.Storage.ValkeyPassword,
			DB:        c.Storage.ValkeyDB,
			KeyPrefix: c.Storage.KeyPrefix,
		},
	}
}

// ProviderSettings maps the provider section onto generator.NewProvider.
func (c Config) ProviderSettings() generator.ProviderSettings {
	return generator.ProviderSettings{
		Name:    c.Provider.Name,
		Model:   c.Provider.Model,
		BaseURL: c.Provider.BaseURL,
	}
}
