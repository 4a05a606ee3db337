package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/labelguard/internal/model"
)

const defaultServiceURL = "http://localhost:8000"

// serviceRequest is the body of POST /classify
type serviceRequest struct {
	Text      string   `json:"text"`
	RequestID string   `json:"request_id,omitempty"`
	Labels    []string `json:"labels,omitempty"`
}

// serviceResponse is the body returned by POST /classify
type serviceResponse struct {
	Label        string  `json:"label"`
	Confidence   float64 `json:"confidence"`
	ModelVersion string  `json:"model_version,omitempty"`
	RequestID    string  `json:"request_id,omitempty"`
}

// serviceHealth is the body returned by GET /health
type serviceHealth struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version"`
}

// ServiceClassifier calls a model-serving endpoint that hosts a fine-tuned
// sequence classifier. The service owns the model lifecycle; this client only
// sends text and reads back the top label and its softmax probability.
type ServiceClassifier struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

// NewServiceClassifier creates a new model-service client
func NewServiceClassifier(config Config) (*ServiceClassifier, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultServiceURL
	}

	return &ServiceClassifier{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newHTTPClient(config, 30*time.Second),
		config:     config,
	}, nil
}

// Name returns the provider name
func (c *ServiceClassifier) Name() string {
	return "service"
}

// IsAvailable reports whether the service is up and has its model loaded
func (c *ServiceClassifier) IsAvailable(ctx context.Context) bool {
	health, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Model service check failed (%s): %v\n", c.baseURL, err)
		return false
	}
	if !health.ModelLoaded {
		fmt.Fprintf(os.Stderr, "Model service at %s is up but has no model loaded (status %q)\n", c.baseURL, health.Status)
		return false
	}
	return true
}

// Health queries GET /health
func (c *ServiceClassifier) Health(ctx context.Context) (*serviceHealth, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	var health serviceHealth
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &health, nil
}

// Classify sends one text to POST /classify
func (c *ServiceClassifier) Classify(ctx context.Context, req Request) (*model.ClassificationResult, error) {
	body, err := json.Marshal(serviceRequest{
		Text:      req.Text,
		RequestID: req.RequestID,
		Labels:    req.Labels,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.RequestID != "" {
		httpReq.Header.Set("X-Request-ID", req.RequestID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil || len(respBody) == 0 {
			return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("model service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result serviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return normalize(model.ClassificationResult{
		Label:      result.Label,
		Confidence: result.Confidence,
	}, req.Labels)
}
