package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Tutor    TutorConfig    `mapstructure:"tutor"`
	Vocab    VocabConfig    `mapstructure:"vocab"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	User     UserConfig     `mapstructure:"user"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty means the default XDG location.
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives the log stream; empty means stderr. The chat UI
	// owns the terminal, so logging there is off by default.
	File string `mapstructure:"file"`
}

// TutorConfig holds tutoring behavior settings.
type TutorConfig struct {
	// MaxAttempts bounds word-introduction retries; 0 retries forever.
	MaxAttempts     int     `mapstructure:"max_attempts"`
	QuizProbability float64 `mapstructure:"quiz_probability"`
	InitialRepeat   int     `mapstructure:"initial_repeat"`
	MaxTokens       int     `mapstructure:"max_tokens"`
	Temperature     float64 `mapstructure:"temperature"`
}

// VocabConfig holds vocabulary policy settings.
type VocabConfig struct {
	// AllowDuplicates tolerates repeated user+term entries. When false,
	// re-introducing a known term resets its repeat counter instead.
	AllowDuplicates bool `mapstructure:"allow_duplicates"`
}

// ReminderConfig holds the reminder sweep settings.
type ReminderConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// UserConfig identifies the local chat user.
type UserConfig struct {
	// ID is the stable identifier the terminal transport binds to.
	ID string `mapstructure:"id"`
}

// Load reads configuration from an optional config file and LINGVO_*
// environment variables, with defaults for everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("lingvo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/lingvo")

	setDefaults(v)

	v.SetEnvPrefix("LINGVO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("tutor.max_attempts", 5)
	v.SetDefault("tutor.quiz_probability", 0.5)
	v.SetDefault("tutor.initial_repeat", 2)
	v.SetDefault("tutor.max_tokens", 1024)
	v.SetDefault("tutor.temperature", 0.7)

	v.SetDefault("vocab.allow_duplicates", true)

	v.SetDefault("reminder.sweep_interval", 30*time.Second)

	v.SetDefault("user.id", "local")
}
