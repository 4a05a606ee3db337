package classify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ppiankov/labelguard/internal/model"
)

var (
	// ErrInvalidResponse means the classifier answered with a label outside
	// the vocabulary or a confidence outside [0, 1].
	ErrInvalidResponse = errors.New("invalid classifier response")

	// ErrUnavailable means the classifier could not be reached at startup.
	ErrUnavailable = errors.New("classifier unavailable")
)

// Classifier turns text into a label and a confidence score
type Classifier interface {
	// Name returns the provider name
	Name() string

	// Classify predicts a label for req.Text drawn from req.Labels
	Classify(ctx context.Context, req Request) (*model.ClassificationResult, error)

	// IsAvailable checks if the classifier is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Request is the input for a single classification
type Request struct {
	// Text is the (already truncated) operator input
	Text string

	// RequestID correlates the call with the session log
	RequestID string

	// Labels is the vocabulary the prediction must come from
	Labels model.LabelSet
}

// Config holds classifier provider configuration
type Config struct {
	// Provider name: "service", "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL overrides the provider endpoint
	BaseURL string

	// Timeout for a single classifier call
	Timeout time.Duration

	UserAgent string

	// Proxy settings; empty values fall back to the environment
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider: "service",
		Timeout:  30 * time.Second,
	}
}

// ConfigFromModel converts the application config to a classifier config
func ConfigFromModel(cfg *model.Config) Config {
	return Config{
		Provider:   cfg.Classifier.Provider,
		Model:      cfg.Classifier.Model,
		APIKey:     cfg.Classifier.APIKey,
		BaseURL:    cfg.Classifier.BaseURL,
		Timeout:    cfg.Classifier.Timeout,
		UserAgent:  cfg.HTTP.UserAgent,
		HTTPProxy:  cfg.HTTP.HTTPProxy,
		HTTPSProxy: cfg.HTTP.HTTPSProxy,
		NoProxy:    cfg.HTTP.NoProxy,
	}
}

func (c Config) timeout(fallback time.Duration) time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return fallback
}

// normalize checks a raw answer against the vocabulary and returns the label
// in its configured casing.
func normalize(raw model.ClassificationResult, labels model.LabelSet) (*model.ClassificationResult, error) {
	label := strings.TrimSpace(raw.Label)
	if len(labels) > 0 {
		matched, ok := labels.Match(label)
		if !ok {
			return nil, fmt.Errorf("%w: label %q is not one of: %s", ErrInvalidResponse, raw.Label, labels)
		}
		label = matched
	}
	if label == "" {
		return nil, fmt.Errorf("%w: empty label", ErrInvalidResponse)
	}

	c := raw.Confidence
	if math.IsNaN(c) || c < 0 || c > 1 {
		return nil, fmt.Errorf("%w: confidence %v outside [0, 1]", ErrInvalidResponse, c)
	}

	return &model.ClassificationResult{Label: label, Confidence: c}, nil
}
