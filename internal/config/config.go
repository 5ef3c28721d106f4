package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/mstolbov/ytstats"
	"github.com/mstolbov/ytstats/logger"
)

const (
	YOUTUBE_API_KEY       = "youtube.api_key"
	HTTP_PROXY            = "http.proxy"
	HTTP_TIMEOUT          = "http.timeout"
	LOGGING_LEVEL         = "logging.level"
	LOGGING_WRITE_IN_FILE = "logging.write_in_file"
	LOGGING_FILE_PATH     = "logging.file_path"
)

type Config struct {
	k *koanf.Koanf
}

// Load builds the configuration from defaults, an optional TOML file
// and the environment. A .env file in the working directory is loaded
// first, the way the upstream tooling expects YOUTUBE_API_KEY to be
// supplied.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	defaults := map[string]any{
		YOUTUBE_API_KEY:       "",
		HTTP_PROXY:            "",
		HTTP_TIMEOUT:          30 * time.Second,
		LOGGING_LEVEL:         "info",
		LOGGING_WRITE_IN_FILE: false,
		LOGGING_FILE_PATH:     "ytstats.log",
	}
	k.Load(confmap.Provider(defaults, "."), nil)

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config %s: %v", path, err)
		}
	}

	k.Load(env.Provider("YTSTATS_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "YTSTATS_")),
			"_", ".",
		)
	}), nil)

	// YOUTUBE_API_KEY is the one variable recognized without a prefix.
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		k.Load(confmap.Provider(map[string]any{YOUTUBE_API_KEY: key}, "."), nil)
	}

	return &Config{k: k}, nil
}

// APIKey returns the configured YouTube Data API key, failing with
// ytstats.ErrMissingAPIKey when none is set.
func (c *Config) APIKey() (string, error) {
	key := strings.TrimSpace(c.k.String(YOUTUBE_API_KEY))
	if key == "" {
		return "", fmt.Errorf("%w: set YOUTUBE_API_KEY", ytstats.ErrMissingAPIKey)
	}
	return key, nil
}

func (c *Config) HTTP() HTTPConfig {
	return HTTPConfig{
		Proxy:   c.k.String(HTTP_PROXY),
		Timeout: c.k.Duration(HTTP_TIMEOUT),
	}
}

func (c *Config) Logging() logger.Options {
	return logger.Options{
		Level:       strings.ToLower(c.k.String(LOGGING_LEVEL)),
		WriteInFile: c.k.Bool(LOGGING_WRITE_IN_FILE),
		FilePath:    c.k.String(LOGGING_FILE_PATH),
	}
}
