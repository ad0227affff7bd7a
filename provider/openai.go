package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/hanscan/hanscan"
)

// OpenAIProvider implements Provider using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

const systemPrompt = `# Role
You are a technical translator working on source code. The inputs are Chinese
phrases taken from code comments, docstrings, string literals, and identifiers.

# Task
Translate each phrase into concise technical English suitable for use in source
code. Prefer standard programming vocabulary ("config" over "configuration
document", "init" context words kept short).

# Rules
- Do NOT translate code fragments, URLs, or placeholders embedded in a phrase.
- Keep translations short; these replace text inline in code.
- Use lowercase unless the phrase is clearly a title or type name.

# Format
Return a valid JSON object mapping every input phrase to its English
translation, e.g. { "配置文件": "config file" }.
- Include every input phrase as a key, exactly as given.
- Do NOT wrap the JSON in Markdown code blocks.`

// TranslateBatch translates a batch of phrases using OpenAI. Phrases missing
// from the model's response are simply absent from the returned map.
func (p *OpenAIProvider) TranslateBatch(ctx context.Context, words []string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}

	payload, _ := json.Marshal(words)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &hanscan.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &hanscan.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content, words)
}

// parseResponse accepts either the requested object format or, as a
// fallback, a bare array aligned with the input order.
func (p *OpenAIProvider) parseResponse(content string, words []string) (map[string]string, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		// Models sometimes nest the mapping under a single key.
		if len(obj) == 1 {
			for _, v := range obj {
				if inner, ok := v.(map[string]interface{}); ok {
					obj = inner
				}
			}
		}
		result := make(map[string]string, len(obj))
		for k, v := range obj {
			if s, ok := v.(string); ok && s != "" {
				result[k] = s
			}
		}
		if len(result) > 0 {
			return result, nil
		}
	}

	var arr []interface{}
	if err := json.Unmarshal([]byte(content), &arr); err == nil {
		if len(arr) != len(words) {
			return nil, &hanscan.CountMismatchError{Expected: len(words), Got: len(arr)}
		}
		result := make(map[string]string, len(arr))
		for i, v := range arr {
			if s, ok := v.(string); ok && s != "" {
				result[words[i]] = s
			} else {
				result[words[i]] = fmt.Sprintf("%v", v)
			}
		}
		return result, nil
	}

	return nil, &hanscan.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
