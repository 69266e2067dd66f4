// Package config loads runtime settings for the service. Configuration is
// resolved once at startup from defaults, an optional YAML file, and
// environment variables (in that order); the resulting Config is immutable
// and shared read-only by every request.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains all runtime settings. The fields are fixed after Load;
// in particular the external detector toggle is decided during startup
// (probe included) and never flipped at runtime.
type Config struct {
	BindAddr         string
	ShutdownTimeout  time.Duration
	MetricsNamespace string

	WhitelistPath string
	AuditLogPath  string

	LLMEnabled bool
	LLMBaseURL string
	LLMModel   string
	LLMTimeout time.Duration
}

// FileConfig is the on-disk YAML shape. Pointer fields distinguish "absent"
// from zero values so the file only overrides what it names.
type FileConfig struct {
	BindAddr         *string `yaml:"bind_addr"`
	MetricsNamespace *string `yaml:"metrics_namespace"`
	Whitelist        *string `yaml:"whitelist"`
	AuditLog         *string `yaml:"audit_log"`
	LLMEnabled       *bool   `yaml:"llm_enabled"`
	LLMBaseURL       *string `yaml:"llm_base_url"`
	LLMModel         *string `yaml:"llm_model"`
	LLMTimeout       *string `yaml:"llm_timeout"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// LoadLocal searches for a repo-local config file in the given root. It
// supports .piigate.yml/.yaml and piigate.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var fc FileConfig
	for _, name := range []string{".piigate.yml", ".piigate.yaml", "piigate.yml", "piigate.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return fc, errors.New("no local config")
}

// Load resolves the effective configuration: defaults, then the optional
// file, then environment variables. An empty filePath means "search the
// working directory"; a missing file there is not an error.
func Load(filePath string) (Config, error) {
	cfg := Config{
		BindAddr:         ":3000",
		ShutdownTimeout:  15 * time.Second,
		MetricsNamespace: "piigate",
		WhitelistPath:    "whitelist.yml",
		LLMEnabled:       false,
		LLMBaseURL:       "http://localhost:11434",
		LLMModel:         "gemma3:12b-it-qat",
		LLMTimeout:       30 * time.Second,
	}

	var fc FileConfig
	var err error
	if filePath != "" {
		if fc, err = LoadFile(filePath); err != nil {
			return Config{}, fmt.Errorf("loading config file: %w", err)
		}
	} else {
		fc, _ = LoadLocal(".")
	}
	if err := applyFile(&cfg, fc); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, fc FileConfig) error {
	if fc.BindAddr != nil {
		cfg.BindAddr = *fc.BindAddr
	}
	if fc.MetricsNamespace != nil {
		cfg.MetricsNamespace = *fc.MetricsNamespace
	}
	if fc.Whitelist != nil {
		cfg.WhitelistPath = *fc.Whitelist
	}
	if fc.AuditLog != nil {
		cfg.AuditLogPath = *fc.AuditLog
	}
	if fc.LLMEnabled != nil {
		cfg.LLMEnabled = *fc.LLMEnabled
	}
	if fc.LLMBaseURL != nil {
		cfg.LLMBaseURL = *fc.LLMBaseURL
	}
	if fc.LLMModel != nil {
		cfg.LLMModel = *fc.LLMModel
	}
	if fc.LLMTimeout != nil {
		d, err := time.ParseDuration(*fc.LLMTimeout)
		if err != nil {
			return fmt.Errorf("invalid llm_timeout: %w", err)
		}
		cfg.LLMTimeout = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.BindAddr = envOrDefault("PIIGATE_BIND_ADDR", cfg.BindAddr)
	cfg.MetricsNamespace = envOrDefault("PIIGATE_METRICS_NAMESPACE", cfg.MetricsNamespace)
	cfg.WhitelistPath = envOrDefault("PIIGATE_WHITELIST", cfg.WhitelistPath)
	cfg.AuditLogPath = envOrDefault("PIIGATE_AUDIT_LOG", cfg.AuditLogPath)
	cfg.LLMBaseURL = envOrDefault("PIIGATE_LLM_BASE_URL", cfg.LLMBaseURL)
	cfg.LLMModel = envOrDefault("PIIGATE_LLM_MODEL", cfg.LLMModel)

	if v := os.Getenv("PIIGATE_LLM_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PIIGATE_LLM_ENABLED: %w", err)
		}
		cfg.LLMEnabled = b
	}
	if v := os.Getenv("PIIGATE_LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PIIGATE_LLM_TIMEOUT: %w", err)
		}
		cfg.LLMTimeout = d
	}
	if v := os.Getenv("PIIGATE_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PIIGATE_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
