// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package baseline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

const openAISystemPrompt = `You screen short messages for misinformation.
Classify the user's message as "fake" if it reads like a hoax, scam, or viral
rumour, and "real" if it reads like routine factual news.
Reply with a JSON object only: {"label": "fake" | "real", "confidence": <number between 0 and 1>}.`

// OpenAI asks a chat model for a fake/real label. The client is created
// once and never modified.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAI creates the classifier. An API key is required; BaseURL
// overrides the endpoint for compatible servers.
func NewOpenAI(cfg types.ClassifierConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &OpenAI{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}, nil
}

// Classify sends text to the model and validates the reply.
func (o *OpenAI) Classify(ctx context.Context, text string) (types.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens:   50,
		Temperature: 0,
	})
	if err != nil {
		return types.Classification{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return types.Classification{}, fmt.Errorf("no response from OpenAI")
	}

	return parseClassification(resp.Choices[0].Message.Content)
}

// parseClassification decodes the model's JSON reply, tolerating a
// surrounding Markdown code fence.
func parseClassification(content string) (types.Classification, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var reply struct {
		Label      string   `json:"label"`
		Confidence *float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &reply); err != nil {
		return types.Classification{}, fmt.Errorf("parsing classifier reply: %w", err)
	}
	if reply.Confidence == nil {
		return types.Classification{}, fmt.Errorf("classifier reply has no confidence")
	}

	c := types.Classification{
		Label:      types.BaselineLabel(strings.ToLower(strings.TrimSpace(reply.Label))),
		Confidence: *reply.Confidence,
	}
	if !c.Valid() {
		return types.Classification{}, fmt.Errorf("invalid classifier reply %q", content)
	}
	return c, nil
}
