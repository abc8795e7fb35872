package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, parsed from the environment.
// main loads .env first (development convenience), then this.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string `env:"DB_PATH" envDefault:"data/app.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Challenge rollover and secret selection.
	ChallengeTZ   string `env:"CHALLENGE_TZ" envDefault:"America/Sao_Paulo"`
	ChallengeSalt string `env:"CHALLENGE_SALT" envDefault:"local_dev_salt"`

	// Word data. Empty paths fall back to the embedded defaults.
	DictionaryFile string `env:"DICTIONARY_FILE"`
	AnswersFile    string `env:"ANSWERS_FILE"`
	EmbeddingsFile string `env:"EMBEDDINGS_FILE"`

	// Session cookie.
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	CookieName    string        `env:"COOKIE_NAME" envDefault:"palavra_sessao"`
	CookieMaxAge  time.Duration `env:"COOKIE_MAX_AGE" envDefault:"720h"`
	Production    bool          `env:"PRODUCTION" envDefault:"false"`

	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
