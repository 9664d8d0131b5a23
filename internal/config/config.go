package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Game    GameConfig
	Audio   AudioConfig
	Library LibraryConfig
	Logging LoggingConfig
}

// GameConfig holds round and session settings
type GameConfig struct {
	SentencesFile   string // imported before the first round when set
	CompletionDelay time.Duration
	Seed            int64 // 0 seeds from the clock
}

// AudioConfig holds cue and speech settings
type AudioConfig struct {
	Enabled    bool
	SpeechLang string
}

// LibraryConfig holds the optional deck library settings
type LibraryConfig struct {
	Path string // sqlite file; empty disables the library
	Deck string // deck loaded at start
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string
	File  string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Game: GameConfig{
			SentencesFile:   getEnv("WORDORDER_FILE", ""),
			CompletionDelay: getEnvDuration("WORDORDER_COMPLETE_DELAY", 3*time.Second),
			Seed:            getEnvInt64("WORDORDER_SEED", 0),
		},
		Audio: AudioConfig{
			Enabled:    getEnvBool("WORDORDER_AUDIO", true),
			SpeechLang: getEnv("WORDORDER_SPEECH_LANG", "en-US"),
		},
		Library: LibraryConfig{
			Path: getEnv("WORDORDER_LIBRARY", ""),
			Deck: getEnv("WORDORDER_DECK", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("WORDORDER_LOG_FILE", "wordorder.log"),
		},
	}
}

// LibraryEnabled reports whether a deck library path is configured
func (c *Config) LibraryEnabled() bool {
	return c.Library.Path != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
