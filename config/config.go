package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type SystemConfig struct {
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
}

type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type SessionConfig struct {
	CheckIntervalSeconds int `yaml:"check_interval_seconds"`
}

type NotifyConfig struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
}

type AppConfig struct {
	System  SystemConfig  `yaml:"system"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logger  LoggerConfig  `yaml:"logger"`
	Session SessionConfig `yaml:"session"`
	Notify  NotifyConfig  `yaml:"notify"`
}

func defaults() AppConfig {
	workdir := defaultWorkdir()
	return AppConfig{
		System: SystemConfig{
			Location: "Europe/Istanbul",
			Workdir:  workdir,
		},
		Server: ServerConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 10,
		},
		Storage: StorageConfig{
			Path: filepath.Join(workdir, "steelctl.db"),
		},
		Logger: LoggerConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   filepath.Join(workdir, "steelctl.log"),
		},
		Session: SessionConfig{CheckIntervalSeconds: 60},
		Notify:  NotifyConfig{PollIntervalSeconds: 30},
	}
}

func defaultWorkdir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".steelctl"
	}
	return filepath.Join(home, ".steelctl")
}

// Load reads the YAML config at path, falling back to defaults when the
// file is absent, then applies environment overrides.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// defaults apply
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.BaseURL = getenv("STEELCTL_BASE_URL", cfg.Server.BaseURL)
	cfg.Server.TimeoutSeconds = getenvInt("STEELCTL_TIMEOUT_SECONDS", cfg.Server.TimeoutSeconds)
	cfg.Storage.Path = getenv("STEELCTL_STORAGE_PATH", cfg.Storage.Path)
	cfg.Logger.Mode = getenv("STEELCTL_LOG_MODE", cfg.Logger.Mode)
	cfg.Logger.FileEnable = getenvBool("STEELCTL_LOG_FILE_ENABLE", cfg.Logger.FileEnable)
	cfg.Logger.Filename = getenv("STEELCTL_LOG_FILENAME", cfg.Logger.Filename)
	cfg.System.Location = getenv("STEELCTL_LOCATION", cfg.System.Location)
	cfg.System.Workdir = getenv("STEELCTL_WORKDIR", cfg.System.Workdir)
	cfg.Session.CheckIntervalSeconds = getenvInt("STEELCTL_SESSION_CHECK_SECONDS", cfg.Session.CheckIntervalSeconds)
	cfg.Notify.PollIntervalSeconds = getenvInt("STEELCTL_NOTIFY_POLL_SECONDS", cfg.Notify.PollIntervalSeconds)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		switch strings.TrimSpace(strings.ToLower(v)) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return fallback
}

// RequestTimeout returns the server timeout as a duration.
func (c *AppConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

// SessionCheckInterval returns the session monitor cadence.
func (c *AppConfig) SessionCheckInterval() time.Duration {
	return time.Duration(c.Session.CheckIntervalSeconds) * time.Second
}

// NotifyPollInterval returns the notification poll cadence.
func (c *AppConfig) NotifyPollInterval() time.Duration {
	return time.Duration(c.Notify.PollIntervalSeconds) * time.Second
}
