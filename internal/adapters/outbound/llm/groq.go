package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL  = "https://api.groq.com/openai/v1"
	defaultModel = "qwen-qwq-32b"
)

// Generation parameters for the review call. The response is parsed
// structurally, so a moderate temperature keeps the sections varied
// without losing the required headers.
const (
	temperature = 0.6
	maxTokens   = 4096
	topP        = 0.95
)

// GroqClient implements domain.ChatCompleter against Groq's
// OpenAI-compatible chat completions API.
type GroqClient struct {
	client *openai.Client
	model  string
}

func NewGroqClient(apiKey, model string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	if model == "" {
		model = defaultModel
	}
	return &GroqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete issues a single-shot completion with one user message. No
// retries and no backoff; a failure surfaces once to the caller.
func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
