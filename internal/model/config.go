package model

import (
	"fmt"
	"strings"
	"time"
)

// Config is the complete labelguard configuration.
// Field tags serve both viper (mapstructure) and `config show` (yaml).
type Config struct {
	Classifier   ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
	Workflow     WorkflowConfig   `yaml:"workflow" mapstructure:"workflow"`
	Log          LogConfig        `yaml:"log" mapstructure:"log"`
	Cache        CacheConfig      `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig  `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	HTTP         HTTPConfig       `yaml:"http" mapstructure:"http"`
}

// ClassifierConfig selects and configures the remote classifier.
type ClassifierConfig struct {
	Provider string        `yaml:"provider" mapstructure:"provider"` // service, openai, anthropic, ollama
	Model    string        `yaml:"model,omitempty" mapstructure:"model"`
	APIKey   string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL  string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Labels   []string      `yaml:"labels" mapstructure:"labels"` // Output vocabulary
}

// WorkflowConfig controls the confidence gate.
type WorkflowConfig struct {
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	MaxTokens int     `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LogConfig controls the request log file.
type LogConfig struct {
	File   string `yaml:"file" mapstructure:"file"`
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // console or json
	Append bool   `yaml:"append" mapstructure:"append"`
}

// CacheConfig controls memoization of classifier results.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Dir     string        `yaml:"dir,omitempty" mapstructure:"dir"` // Empty = memory only
}

// RateLimitConfig throttles calls to the classifier endpoint.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// HTTPConfig holds transport settings shared by HTTP-based classifiers.
type HTTPConfig struct {
	UserAgent  string `yaml:"user_agent" mapstructure:"user_agent"`
	HTTPProxy  string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// DefaultLabels is the vocabulary of the default emotion classifier.
var DefaultLabels = []string{"anger", "disgust", "fear", "joy", "neutral", "sadness", "surprise"}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			Provider: "service",
			Timeout:  30 * time.Second,
			Labels:   append([]string(nil), DefaultLabels...),
		},
		Workflow: WorkflowConfig{
			Threshold: 0.80,
			MaxTokens: 512,
		},
		Log: LogConfig{
			File:   "app.log",
			Level:  "info",
			Format: "console",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		HTTP: HTTPConfig{
			UserAgent: "labelguard/0.1 (+https://github.com/ppiankov/labelguard)",
		},
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Workflow.Threshold <= 0 || c.Workflow.Threshold > 1 {
		return fmt.Errorf("workflow.threshold must be in (0, 1], got %v", c.Workflow.Threshold)
	}
	if c.Workflow.MaxTokens <= 0 {
		return fmt.Errorf("workflow.max_tokens must be positive, got %d", c.Workflow.MaxTokens)
	}
	if strings.TrimSpace(c.Classifier.Provider) == "" {
		return fmt.Errorf("classifier.provider is required")
	}
	if c.Classifier.Timeout <= 0 {
		return fmt.Errorf("classifier.timeout must be positive, got %v", c.Classifier.Timeout)
	}

	labels := NewLabelSet(c.Classifier.Labels...)
	if len(labels) == 0 {
		return fmt.Errorf("classifier.labels must name at least one label")
	}
	if len(labels) != len(c.Classifier.Labels) {
		return fmt.Errorf("classifier.labels contains blank or duplicate entries: %v", c.Classifier.Labels)
	}

	if c.Log.File == "" {
		return fmt.Errorf("log.file is required")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when the cache is enabled")
	}

	return nil
}

// LabelSet returns the configured label vocabulary.
func (c *Config) LabelSet() LabelSet {
	return NewLabelSet(c.Classifier.Labels...)
}
