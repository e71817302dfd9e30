package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sashabaranov/go-openai"

	"github.com/its-jojoo/camxuc/internal/core"
)

const openAIPrompt = `You classify the sentiment of Vietnamese sentences. The user message is one sentence, lowercased, with multi-syllable words joined by "_".
Respond with JSON only: {"label": "POS" | "NEG" | "NEU", "score": number between 0 and 1 giving your confidence}.`

// OpenAIConfig configures an OpenAI-compatible chat model used as a
// sentiment classifier.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &OpenAI{client: openai.NewClientWithConfig(oc), model: cfg.Model}, nil
}

func (c *OpenAI) Classify(ctx context.Context, text string) (core.Prediction, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAIPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return core.Prediction{}, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return core.Prediction{}, errors.New("openai: empty response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var p core.Prediction
	if err := sonic.UnmarshalString(content, &p); err != nil {
		return core.Prediction{}, fmt.Errorf("openai: decode %q: %w", truncate(content, 200), err)
	}
	if p.Score < 0 || p.Score > 1 {
		return core.Prediction{}, fmt.Errorf("openai: score %v out of range", p.Score)
	}
	return p, nil
}
