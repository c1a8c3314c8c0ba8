package llm

import (
	"fmt"
	"strings"

	"github.com/clausematch/clausematch/internal/model"
)

// NewClassifier creates a classifier from configuration. An empty provider
// means semantic checking is disabled and returns (nil, nil).
func NewClassifier(config Config) (Classifier, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIClassifier(config)

	case "anthropic", "claude":
		return NewAnthropicClassifier(config)

	case "ollama":
		return NewOllamaClassifier(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config, carrying over the
// HTTP proxy settings shared with the fetcher.
func ConfigFromModel(modelConfig model.LLMConfig, httpConfig model.HTTPConfig) Config {
	return Config{
		Provider:   modelConfig.Provider,
		Model:      modelConfig.Model,
		APIKey:     modelConfig.APIKey,
		BaseURL:    modelConfig.BaseURL,
		Timeout:    modelConfig.Timeout,
		MaxTokens:  modelConfig.MaxTokens,
		HTTPProxy:  httpConfig.HTTPProxy,
		HTTPSProxy: httpConfig.HTTPSProxy,
		NoProxy:    httpConfig.NoProxy,
	}
}
