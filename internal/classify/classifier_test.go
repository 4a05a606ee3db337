package classify

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/ppiankov/labelguard/internal/model"
)

var testLabels = model.NewLabelSet("anger", "joy", "neutral")

// fakeClassifier implements Classifier for decorator tests
type fakeClassifier struct {
	mu        sync.Mutex
	calls     int
	result    *model.ClassificationResult
	err       error
	available bool
}

func (f *fakeClassifier) Name() string { return "fake" }

func (f *fakeClassifier) IsAvailable(ctx context.Context) bool { return f.available }

func (f *fakeClassifier) Classify(ctx context.Context, req Request) (*model.ClassificationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	res := *f.result
	return &res, nil
}

func (f *fakeClassifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		raw       model.ClassificationResult
		wantLabel string
		wantErr   bool
	}{
		{"exact", model.ClassificationResult{Label: "joy", Confidence: 0.95}, "joy", false},
		{"case folded", model.ClassificationResult{Label: " JOY ", Confidence: 0.5}, "joy", false},
		{"boundary zero", model.ClassificationResult{Label: "anger", Confidence: 0}, "anger", false},
		{"boundary one", model.ClassificationResult{Label: "anger", Confidence: 1}, "anger", false},
		{"unknown label", model.ClassificationResult{Label: "love", Confidence: 0.9}, "", true},
		{"negative confidence", model.ClassificationResult{Label: "joy", Confidence: -0.1}, "", true},
		{"confidence above one", model.ClassificationResult{Label: "joy", Confidence: 1.01}, "", true},
		{"NaN confidence", model.ClassificationResult{Label: "joy", Confidence: math.NaN()}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize(tt.raw, testLabels)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidResponse) {
					t.Fatalf("expected ErrInvalidResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("expected label %q, got %q", tt.wantLabel, got.Label)
			}
		})
	}
}

func TestNormalize_EmptyVocabularyAcceptsAnyLabel(t *testing.T) {
	got, err := normalize(model.ClassificationResult{Label: " custom ", Confidence: 0.3}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Label != "custom" {
		t.Errorf("expected trimmed label, got %q", got.Label)
	}

	if _, err := normalize(model.ClassificationResult{Label: "  "}, nil); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("expected empty label to be rejected, got %v", err)
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.ClassificationResult
		wantErr bool
	}{
		{"plain", `{"label":"joy","confidence":0.9}`, model.ClassificationResult{Label: "joy", Confidence: 0.9}, false},
		{"fenced", "```json\n{\"label\": \"anger\", \"confidence\": 0.4}\n```", model.ClassificationResult{Label: "anger", Confidence: 0.4}, false},
		{"prose around", `Sure! {"label":"neutral","confidence":0.61} Hope that helps.`, model.ClassificationResult{Label: "neutral", Confidence: 0.61}, false},
		{"no object", "joy", model.ClassificationResult{}, true},
		{"broken json", `{"label": joy}`, model.ClassificationResult{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswer(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidResponse) {
					t.Fatalf("expected ErrInvalidResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBuildPrompt_ListsLabelsAndText(t *testing.T) {
	prompt := BuildPrompt("I love this!", testLabels)

	for _, l := range testLabels {
		if !strings.Contains(prompt, "- "+l+"\n") {
			t.Errorf("prompt missing label %q", l)
		}
	}
	if !strings.Contains(prompt, "I love this!") {
		t.Error("prompt missing input text")
	}
	if !strings.Contains(prompt, `"confidence"`) {
		t.Error("prompt should ask for a confidence")
	}
}

func TestConfigFromModel(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Classifier.Provider = "openai"
	cfg.Classifier.Model = "gpt-4o-mini"
	cfg.HTTP.HTTPSProxy = "http://proxy:3128"

	got := ConfigFromModel(cfg)
	if got.Provider != "openai" || got.Model != "gpt-4o-mini" {
		t.Errorf("unexpected provider/model: %+v", got)
	}
	if got.HTTPSProxy != "http://proxy:3128" {
		t.Errorf("expected proxy to be carried over, got %q", got.HTTPSProxy)
	}
	if got.Timeout != cfg.Classifier.Timeout {
		t.Errorf("expected timeout %v, got %v", cfg.Classifier.Timeout, got.Timeout)
	}
}
