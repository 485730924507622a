package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envListenAddr = "SQLTUTOR_LISTEN_ADDR"
	envLogLevel   = "SQLTUTOR_LOG_LEVEL"
)

// config describes the sqltutord YAML configuration.
type config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Tutor struct {
		DelayMs        *int   `yaml:"delay_ms"`
		CurriculumPath string `yaml:"curriculum_path"`
	} `yaml:"tutor"`
	Practice struct {
		DBPath string `yaml:"db_path"`
	} `yaml:"practice"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// loadConfig reads the configuration file, applies environment overrides and
// defaults, and validates the result. An empty path uses defaults only.
func loadConfig(path string) (config, error) {
	var cfg config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if value := strings.TrimSpace(os.Getenv(envListenAddr)); value != "" {
		cfg.Server.ListenAddr = value
	}
	if value := strings.TrimSpace(os.Getenv(envLogLevel)); value != "" {
		cfg.Log.Level = value
	}

	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Tutor.DelayMs == nil {
		defaultDelay := 600
		cfg.Tutor.DelayMs = &defaultDelay
	}
	if *cfg.Tutor.DelayMs < 0 {
		return cfg, fmt.Errorf("tutor.delay_ms must be >= 0")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if _, err := levelOption(cfg.Log.Level); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadDotEnv loads variables from path when the file exists. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// delay converts the configured milliseconds into the service delay. Zero
// disables the pause.
func (cfg config) delay() time.Duration {
	if cfg.Tutor.DelayMs == nil {
		return 0
	}
	if *cfg.Tutor.DelayMs == 0 {
		return -1
	}
	return time.Duration(*cfg.Tutor.DelayMs) * time.Millisecond
}

// levelOption maps a level name onto a go-kit level filter.
func levelOption(name string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("log.level %q is invalid (expected debug|info|warn|error)", name)
	}
}
