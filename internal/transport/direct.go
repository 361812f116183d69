package transport

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Direct talks straight to an OpenAI-compatible endpoint, for running without
// an agent server. Conversation history lives client-side, so Direct never
// returns a thread id and nothing is resumed across runs.
type Direct struct {
	client  *openai.Client
	model   string
	history []openai.ChatCompletionMessage
}

func NewDirect(apiKey, baseURL, model string) *Direct {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &Direct{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (d *Direct) Send(ctx context.Context, userMessage, threadID string) (Reply, error) {
	history := append(d.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    d.model,
		Messages: history,
	})
	if err != nil {
		return Reply{}, newError(fmt.Sprintf("LLM error: %v", err), err)
	}

	if len(resp.Choices) == 0 {
		return Reply{}, newError("LLM returned no choices", nil)
	}

	content := resp.Choices[0].Message.Content
	d.history = append(history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: content,
	})

	return Reply{Content: content}, nil
}
