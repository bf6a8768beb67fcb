package llm

import (
	"context"
	"fmt"
	"os"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client interface {
	// Chat sends the user's message with the running history and returns the
	// model's raw reply text, markers included.
	Chat(ctx context.Context, system string, history []Message, message string) (string, error)
}

// NewClientFromEnv picks the chat backend from LLM_PROVIDER
// ("gemini" or "openai", defaulting to gemini).
func NewClientFromEnv() (Client, error) {
	provider := os.Getenv("LLM_PROVIDER")
	switch provider {
	case "", "gemini":
		return NewGeminiClient(), nil
	case "openai":
		return NewOpenAIClient(), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}
