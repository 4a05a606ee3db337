package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	bindEnv(v)
	return v
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)

	assert.Equal(t, "service", cfg.Classifier.Provider)
	assert.Equal(t, 0.80, cfg.Workflow.Threshold)
	assert.Equal(t, 512, cfg.Workflow.MaxTokens)
	assert.Equal(t, "app.log", cfg.Log.File)
	assert.False(t, cfg.Log.Append)
	assert.Equal(t, 30*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, []string{"anger", "disgust", "fear", "joy", "neutral", "sadness", "surprise"}, cfg.Classifier.Labels)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `classifier:
  provider: ollama
  model: llama3.2
  timeout: 5s
  labels: [positive, negative]
workflow:
  threshold: 0.9
log:
  file: decisions.log
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := newTestViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Classifier.Provider)
	assert.Equal(t, "llama3.2", cfg.Classifier.Model)
	assert.Equal(t, 5*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, []string{"positive", "negative"}, cfg.Classifier.Labels)
	assert.Equal(t, 0.9, cfg.Workflow.Threshold)
	assert.Equal(t, 512, cfg.Workflow.MaxTokens)
	assert.Equal(t, "decisions.log", cfg.Log.File)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LABELGUARD_WORKFLOW_THRESHOLD", "0.5")
	t.Setenv("LABELGUARD_CLASSIFIER_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Workflow.Threshold)
	assert.Equal(t, "openai", cfg.Classifier.Provider)
	assert.Equal(t, "sk-test", cfg.Classifier.APIKey)
}

func TestLoadConfig_ExplicitKeyWins(t *testing.T) {
	t.Setenv("LABELGUARD_CLASSIFIER_PROVIDER", "anthropic")
	t.Setenv("LABELGUARD_CLASSIFIER_API_KEY", "from-labelguard")
	t.Setenv("ANTHROPIC_API_KEY", "from-provider")

	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)
	assert.Equal(t, "from-labelguard", cfg.Classifier.APIKey)
}

func TestLoadConfig_OllamaBaseURL(t *testing.T) {
	t.Setenv("LABELGUARD_CLASSIFIER_PROVIDER", "ollama")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama.internal:11434")

	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Classifier.BaseURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("LABELGUARD_WORKFLOW_THRESHOLD", "1.5")

	_, err := loadConfig(newTestViper(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workflow.threshold")
}
