package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ppiankov/labelguard/internal/classify"
	"github.com/ppiankov/labelguard/internal/model"
)

// bindEnv maps LABELGUARD_CLASSIFIER_PROVIDER to classifier.provider and so on.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("LABELGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// setDefaults registers every key so that AutomaticEnv can override nested
// values and Unmarshal sees them.
func setDefaults(v *viper.Viper, cfg *model.Config) {
	v.SetDefault("classifier.provider", cfg.Classifier.Provider)
	v.SetDefault("classifier.model", cfg.Classifier.Model)
	v.SetDefault("classifier.api_key", cfg.Classifier.APIKey)
	v.SetDefault("classifier.base_url", cfg.Classifier.BaseURL)
	v.SetDefault("classifier.timeout", cfg.Classifier.Timeout)
	v.SetDefault("classifier.labels", cfg.Classifier.Labels)

	v.SetDefault("workflow.threshold", cfg.Workflow.Threshold)
	v.SetDefault("workflow.max_tokens", cfg.Workflow.MaxTokens)

	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.append", cfg.Log.Append)

	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.ttl", cfg.Cache.TTL)
	v.SetDefault("cache.dir", cfg.Cache.Dir)

	v.SetDefault("rate_limiting.requests_per_second", cfg.RateLimiting.RequestsPerSecond)
	v.SetDefault("rate_limiting.burst_size", cfg.RateLimiting.BurstSize)

	v.SetDefault("http.user_agent", cfg.HTTP.UserAgent)
	v.SetDefault("http.http_proxy", cfg.HTTP.HTTPProxy)
	v.SetDefault("http.https_proxy", cfg.HTTP.HTTPSProxy)
	v.SetDefault("http.no_proxy", cfg.HTTP.NoProxy)
}

// loadConfig merges defaults, config file, environment and flags into a
// validated Config.
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	setDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	// Provider-conventional variables fill in what the LABELGUARD_* ones left empty.
	if cfg.Classifier.APIKey == "" {
		if env := classify.APIKeyEnv(cfg.Classifier.Provider); env != "" {
			cfg.Classifier.APIKey = os.Getenv(env)
		}
	}
	if strings.EqualFold(cfg.Classifier.Provider, "ollama") && cfg.Classifier.BaseURL == "" {
		cfg.Classifier.BaseURL = os.Getenv("OLLAMA_BASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
