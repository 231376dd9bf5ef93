package services

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// LLM generates a free-text reply from a system prompt and a user prompt.
// Provider errors are returned as-is; the dialogue layer decides what
// happens to the request.
type LLM interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.
// API credentials and the model name are loaded from environment variables.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed LLM client. It reads the API
// key and model name from the environment and falls back to a default model.
func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	c := openai.NewClient(apiKey)

	model := os.Getenv("OPENAI_MODEL_CHAT")
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	return &OpenAIClient{
		client: c,
		model:  model,
	}
}

// Complete sends the prompts to the chat completion API and returns the
// assistant's reply.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
