package runtimeconfig

import (
	"errors"
	"strings"
)

var (
	// ErrStorageDriverUnknown indicates an unsupported persistence driver.
	ErrStorageDriverUnknown = errors.New("wala config: storage driver is invalid")
	// ErrStorageDSNRequired indicates a durable driver without a data source.
	ErrStorageDSNRequired = errors.New("wala config: storage dsn is required for the sqlite driver")
	// ErrLoggingProviderUnknown indicates an unsupported logging provider.
	ErrLoggingProviderUnknown = errors.New("wala config: logging provider is invalid")
	// ErrLoggingLevelInvalid indicates an unknown logging level.
	ErrLoggingLevelInvalid = errors.New("wala config: logging level is invalid")
	// ErrLoggingFormatInvalid indicates an unknown logging format.
	ErrLoggingFormatInvalid = errors.New("wala config: logging format is invalid")
	// ErrSearchThresholdInvalid indicates a similarity threshold outside (0, 1].
	ErrSearchThresholdInvalid = errors.New("wala config: search threshold must be within (0, 1]")
	// ErrReadingPaceInvalid indicates a non-positive words-per-minute pace.
	ErrReadingPaceInvalid = errors.New("wala config: reading pace must be positive")
	// ErrReadingFloorInvalid indicates a non-positive reading-time floor.
	ErrReadingFloorInvalid = errors.New("wala config: reading minutes floor must be positive")
)

// Config aggregates adapter bindings and tuning knobs for the content core.
// Fields intentionally use simple types so host applications can extend them
// later.
type Config struct {
	Storage  StorageConfig
	Logging  LoggingConfig
	Markdown MarkdownConfig
	Search   SearchConfig
	Reading  ReadingConfig
	Review   ReviewConfig
	Glossary GlossaryConfig
}

// StorageConfig selects and configures the key-value persistence provider.
type StorageConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string
	// DSN is the sqlite data source; unused by the memory driver.
	DSN string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	// Provider is "noop", "console" or "gologger".
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// MarkdownConfig tunes the rendering pipeline.
type MarkdownConfig struct {
	Extensions []string
	HardWraps  bool
	Unsafe     bool
}

// SearchConfig tunes the fuzzy index.
type SearchConfig struct {
	// Threshold is the normalized edit-distance ceiling for a term to count
	// as a match; lower is stricter.
	Threshold float64
	// MaxResults caps ranked results; zero means unlimited.
	MaxResults int
}

// ReadingConfig tunes the reading-time estimator.
type ReadingConfig struct {
	WordsPerMinute int
	MinimumMinutes int
}

// ReviewConfig carries the shared static review credential and the hero
// image used for approved submissions that supplied no cover.
type ReviewConfig struct {
	Token           string
	PlaceholderHero string
}

// GlossaryConfig overrides or extends the built-in glossary term list.
type GlossaryConfig struct {
	Terms map[string]string
	// ReplaceDefaults drops the built-in archaeology glossary instead of
	// merging Terms over it.
	ReplaceDefaults bool
}

// DefaultConfig returns the configuration used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Driver: "memory"},
		Logging: LoggingConfig{Provider: "noop"},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "table", "strikethrough"},
		},
		Search:  SearchConfig{Threshold: 0.34},
		Reading: ReadingConfig{WordsPerMinute: 220, MinimumMinutes: 3},
		Review: ReviewConfig{
			PlaceholderHero: "/images/placeholder-hero.jpg",
		},
	}
}

// Validate checks the configuration for internally inconsistent values.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case "", "memory":
	case "sqlite":
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return ErrStorageDriverUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "noop", "console", "gologger":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	if c.Search.Threshold < 0 || c.Search.Threshold > 1 {
		return ErrSearchThresholdInvalid
	}

	if c.Reading.WordsPerMinute < 0 {
		return ErrReadingPaceInvalid
	}
	if c.Reading.MinimumMinutes < 0 {
		return ErrReadingFloorInvalid
	}

	return nil
}
