// apps/solver/internal/config/config.go
//
// Runtime configuration for every command.
// Sources, lowest to highest precedence:
//   1. Built-in defaults (below).
//   2. A .env file in the working directory (godotenv; never overrides the real environment).
//   3. Environment variables with the WORDLE_ prefix, e.g. WORDLE_STRATEGY=naive.
//      The older unprefixed names LOG_LEVEL, PORT, DAILY_SALT, CLIENT_ORIGIN,
//      WORDS_DICTIONARY_FILE and WORDS_ANSWERS_FILE are still honoured.
//   4. Command-line flags bound by the CLI.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	redisstore "github.com/robalobadob/wordle/apps/solver/internal/store/redis"
)

// Store kinds.
const (
	StoreNone   = ""
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the flattened view of all settings.
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"` // console | json
	Output    string `mapstructure:"output"`     // text | json

	Strategy    string `mapstructure:"strategy"`
	Weighting   string `mapstructure:"weighting"`
	Exhaustive  bool   `mapstructure:"exhaustive"`
	Opener      string `mapstructure:"opener"`
	MaxAttempts int    `mapstructure:"attempts"`

	DictionaryFile string `mapstructure:"dictionary-file"`
	AnswersFile    string `mapstructure:"answers-file"`

	// Store, when set, loads the dictionary from a backend instead of DictionaryFile.
	Store      string `mapstructure:"store"`
	Dictionary string `mapstructure:"dictionary"`
	SQLitePath string `mapstructure:"sqlite-path"`
	RedisURL   string `mapstructure:"redis-url"`

	Addr         string `mapstructure:"addr"`
	ClientOrigin string `mapstructure:"client-origin"`
	DailySalt    string `mapstructure:"daily-salt"`
	Workers      int    `mapstructure:"workers"`
}

func defaults(v *viper.Viper) {
	sc := solver.DefaultConfig()
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "console")
	v.SetDefault("output", "text")
	v.SetDefault("strategy", string(sc.Strategy))
	v.SetDefault("weighting", string(sc.Weighting))
	v.SetDefault("exhaustive", false)
	v.SetDefault("opener", sc.Opener)
	v.SetDefault("attempts", game.DefaultMaxAttempts)
	v.SetDefault("dictionary-file", "")
	v.SetDefault("answers-file", "")
	v.SetDefault("store", StoreNone)
	v.SetDefault("dictionary", store.DefaultName)
	v.SetDefault("sqlite-path", "./data/solver.db")
	v.SetDefault("redis-url", redisstore.DefaultConfig().URL)
	v.SetDefault("addr", ":5175")
	v.SetDefault("client-origin", "http://localhost:5173")
	v.SetDefault("daily-salt", daily.DefaultSalt)
	v.SetDefault("workers", 0)
}

// Load resolves the configuration. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, legacy := range map[string]string{
		"log-level":       "LOG_LEVEL",
		"daily-salt":      "DAILY_SALT",
		"client-origin":   "CLIENT_ORIGIN",
		"dictionary-file": "WORDS_DICTIONARY_FILE",
		"answers-file":    "WORDS_ANSWERS_FILE",
	} {
		if err := v.BindEnv(key, "WORDLE_"+strings.ToUpper(strings.ReplaceAll(key, "-", "_")), legacy); err != nil {
			return nil, err
		}
	}
	if port := os.Getenv("PORT"); port != "" && os.Getenv("WORDLE_ADDR") == "" {
		v.SetDefault("addr", ":"+port)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output %q (want text or json)", ErrInvalidConfig, c.Output)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log-format %q (want console or json)", ErrInvalidConfig, c.LogFormat)
	}
	switch c.Store {
	case StoreNone, StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("%w: store %q", ErrInvalidConfig, c.Store)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: attempts %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Solver returns the guesser configuration.
func (c *Config) Solver() solver.Config {
	return solver.Config{
		Strategy:   solver.Strategy(c.Strategy),
		Weighting:  solver.Weighting(c.Weighting),
		Exhaustive: c.Exhaustive,
		Opener:     c.Opener,
	}
}

// Redis returns the Redis store configuration.
func (c *Config) Redis() redisstore.Config {
	rc := redisstore.DefaultConfig()
	rc.URL = c.RedisURL
	return rc
}

// SetupLogging configures the global zerolog logger.
func (c *Config) SetupLogging() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
