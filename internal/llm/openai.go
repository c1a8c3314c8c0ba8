package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClassifier implements the Classifier interface for OpenAI models.
type OpenAIClassifier struct {
	client *openai.Client
	config Config
}

// NewOpenAIClassifier creates a new OpenAI classifier.
func NewOpenAIClassifier(config Config) (*OpenAIClassifier, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name.
func (c *OpenAIClassifier) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured.
func (c *OpenAIClassifier) IsAvailable(ctx context.Context) bool {
	// Lightweight API call to verify credentials
	_, err := c.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Classify compares two clause texts using OpenAI's Chat Completions API.
func (c *OpenAIClassifier) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	model := c.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	maxTokens := c.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := time.Duration(c.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(req),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.0, // Deterministic classification output
	}

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	classification, err := ParseClassification(strings.TrimSpace(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, err
	}

	classification.Model = model
	classification.TokensUsed = resp.Usage.TotalTokens

	return classification, nil
}
