package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can use "90s" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds all client configuration.
type Config struct {
	DBPath  string        `yaml:"db_path"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// SessionConfig tunes the active-session orchestrator.
type SessionConfig struct {
	// MinWorkoutDuration rejects a finish whose elapsed time is below
	// this bound, guarding against accidental taps.
	MinWorkoutDuration Duration `yaml:"min_workout_duration"`
	// TickInterval is the display refresh period while a session runs.
	TickInterval Duration `yaml:"tick_interval"`
}

// LogConfig controls transition logging.
type LogConfig struct {
	Transitions bool `yaml:"transitions"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Session: SessionConfig{
			MinWorkoutDuration: Duration(time.Minute),
			TickInterval:       Duration(time.Second),
		},
	}
}

// Load reads config from an optional YAML file, then applies environment
// variable overrides. Env vars use the prefix LIFTLOG_:
//
//	LIFTLOG_DB, LIFTLOG_MIN_WORKOUT_DURATION,
//	LIFTLOG_TICK_INTERVAL, LIFTLOG_LOG_TRANSITIONS
//
// A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return cfg, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns ~/.liftlog/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".liftlog", "config.yaml")
}

// DefaultDBPath returns ~/.liftlog/liftlog.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".liftlog", "liftlog.db"), nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LIFTLOG_MIN_WORKOUT_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Session.MinWorkoutDuration = Duration(d)
		}
	}
	if v := os.Getenv("LIFTLOG_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Session.TickInterval = Duration(d)
		}
	}
	if v := os.Getenv("LIFTLOG_LOG_TRANSITIONS"); v != "" {
		cfg.Log.Transitions = v == "1" || v == "true"
	}
}

func (c Config) validate() error {
	if c.Session.MinWorkoutDuration < 0 {
		return fmt.Errorf("session.min_workout_duration must not be negative")
	}
	if c.Session.TickInterval <= 0 {
		return fmt.Errorf("session.tick_interval must be positive")
	}
	return nil
}
