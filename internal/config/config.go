// Package config loads viewer settings from defaults, an optional YAML
// file and LESSONBOOK_* environment variables. Command line flags are
// applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/lessonbook/internal/discovery"
	"github.com/abhisek/lessonbook/internal/llm"
	"github.com/abhisek/lessonbook/internal/report"
	"github.com/abhisek/lessonbook/internal/source"
)

// Config holds every runtime setting.
type Config struct {
	// Origin is the lesson location: a directory, a lesson_data.json file
	// or an http(s) URL. Empty means the current directory.
	Origin      string `yaml:"origin"`
	LessonPath  string `yaml:"lesson_path"`
	LibraryPath string `yaml:"library_path"`

	Probe  ProbeConfig  `yaml:"probe"`
	Report ReportConfig `yaml:"report"`

	Muted bool `yaml:"muted"`

	Log    LogConfig  `yaml:"log"`
	DBPath string     `yaml:"db_path"`
	LLM    llm.Config `yaml:"llm"`
}

type ProbeConfig struct {
	Max         int           `yaml:"max"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

type ReportConfig struct {
	SendDelay   time.Duration `yaml:"send_delay"`
	UnlockDelay time.Duration `yaml:"unlock_delay"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Default returns the built-in settings. Sound starts muted.
func Default() *Config {
	return &Config{
		LibraryPath: source.DefaultLibraryPath,
		Probe: ProbeConfig{
			Max:     discovery.DefaultMax,
			Timeout: 5 * time.Second,
		},
		Report: ReportConfig{
			SendDelay:   report.SendDelay,
			UnlockDelay: report.UnlockDelay,
		},
		Muted: true,
		Log:   LogConfig{Level: "info"},
		LLM:   llm.DefaultConfig(),
	}
}

// DefaultPath resolves the config file path:
// 1. $XDG_CONFIG_HOME/lessonbook/config.yaml
// 2. ~/.config/lessonbook/config.yaml
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "lessonbook", "config.yaml"), nil
}

// Load reads path over the defaults and applies environment overrides.
// An empty path uses DefaultPath, which may be absent; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays LESSONBOOK_* variables, then the LLM variables.
func (c *Config) ApplyEnv() error {
	str := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	str(&c.Origin, "LESSONBOOK_ORIGIN")
	str(&c.LessonPath, "LESSONBOOK_LESSON_PATH")
	str(&c.LibraryPath, "LESSONBOOK_LIBRARY_PATH")
	str(&c.Log.Level, "LESSONBOOK_LOG_LEVEL")
	str(&c.Log.Path, "LESSONBOOK_LOG_PATH")
	str(&c.DBPath, "LESSONBOOK_DB")

	var errs []error
	num := func(dst *int, key string) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	dur := func(dst *time.Duration, key string) {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	num(&c.Probe.Max, "LESSONBOOK_PROBE_MAX")
	num(&c.Probe.Concurrency, "LESSONBOOK_PROBE_CONCURRENCY")
	dur(&c.Probe.Timeout, "LESSONBOOK_PROBE_TIMEOUT")
	dur(&c.Report.SendDelay, "LESSONBOOK_SEND_DELAY")
	dur(&c.Report.UnlockDelay, "LESSONBOOK_UNLOCK_DELAY")
	if v := os.Getenv("LESSONBOOK_MUTED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LESSONBOOK_MUTED: %w", err))
		} else {
			c.Muted = b
		}
	}

	c.LLM.ApplyEnv()
	return errors.Join(errs...)
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Probe.Max < 1 {
		errs = append(errs, fmt.Errorf("probe.max must be at least 1, got %d", c.Probe.Max))
	}
	if c.Probe.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("probe.concurrency must not be negative, got %d", c.Probe.Concurrency))
	}
	if c.Probe.Timeout < 0 {
		errs = append(errs, fmt.Errorf("probe.timeout must not be negative"))
	}
	if c.Report.SendDelay < 0 || c.Report.UnlockDelay < 0 {
		errs = append(errs, fmt.Errorf("report delays must not be negative"))
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("llm: %w", err))
	}
	return errors.Join(errs...)
}

// YAML renders c as it would be written to a config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
