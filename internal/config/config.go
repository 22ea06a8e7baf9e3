// Package config loads SentiBot's runtime settings. Values are resolved
// with viper in precedence order: environment variables (SENTIBOT_ prefix,
// optionally supplied through a local .env file) over an optional
// sentibot.yaml in the working directory over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"sentibot/internal/conversation"
	"sentibot/internal/sentiment"
)

// Settings holds every tunable of the chatbot. The classification and
// mood-shift thresholds default to the standard VADER cutoffs but are
// deliberately configuration, not literals.
type Settings struct {
	PositiveThreshold float64 `mapstructure:"positive_threshold"`
	NegativeThreshold float64 `mapstructure:"negative_threshold"`
	MoodShiftDelta    float64 `mapstructure:"mood_shift_delta"`
	Prompt            string  `mapstructure:"prompt"`
	EchoSentiment     bool    `mapstructure:"echo_sentiment"`
}

// Thresholds returns the scorer thresholds carried by these settings.
func (s *Settings) Thresholds() sentiment.Thresholds {
	return sentiment.Thresholds{Positive: s.PositiveThreshold, Negative: s.NegativeThreshold}
}

// Load resolves settings from the environment and an optional config file.
// A local .env file is applied first when present; a missing .env or
// missing sentibot.yaml is not an error.
func Load() (*Settings, error) {
	// Missing .env is the common case and not a failure.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("positive_threshold", sentiment.DefaultPositiveThreshold)
	v.SetDefault("negative_threshold", sentiment.DefaultNegativeThreshold)
	v.SetDefault("mood_shift_delta", conversation.DefaultMoodShiftDelta)
	v.SetDefault("prompt", "you> ")
	v.SetDefault("echo_sentiment", true)

	v.SetEnvPrefix("SENTIBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("sentibot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects threshold combinations the classifier cannot work with.
func (s *Settings) Validate() error {
	if s.PositiveThreshold <= 0 {
		return fmt.Errorf("positive_threshold must be > 0, got %v", s.PositiveThreshold)
	}
	if s.NegativeThreshold >= 0 {
		return fmt.Errorf("negative_threshold must be < 0, got %v", s.NegativeThreshold)
	}
	if s.MoodShiftDelta <= 0 {
		return fmt.Errorf("mood_shift_delta must be > 0, got %v", s.MoodShiftDelta)
	}
	if s.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	return nil
}
