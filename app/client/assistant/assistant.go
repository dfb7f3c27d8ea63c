package assistant

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"

	"shopbot/app/config"
)

//go:embed system_prompt.txt
var salonSystemPrompt string

const (
	maxReplyTokens   = 400
	requestTimeout   = 30 * time.Second
	replyTemperature = 0.7

	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation handed to the model.
type Message struct {
	Role    string
	Content string
}

// Client talks to an OpenAI-compatible chat completion API with the salon
// persona baked in. When no credentials are configured the client is
// inert and callers fall back to the scripted engine.
type Client struct {
	cfg *config.Config
	api *openai.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	c := &Client{cfg: cfg}

	if cfg.Assistant.Token == "" {
		return c, nil
	}

	clientConfig := openai.DefaultConfig(cfg.Assistant.Token)
	if cfg.Assistant.BaseURL != "" {
		clientConfig.BaseURL = cfg.Assistant.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: requestTimeout,
	}
	c.api = openai.NewClientWithConfig(clientConfig)

	return c, nil
}

// Configured reports whether an upstream model is available. This is an
// explicit config decision, never an ambient environment lookup.
func (c *Client) Configured() bool {
	return c.api != nil
}

func (c *Client) Reply(ctx context.Context, messages []Message) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("no assistant model configured")
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: salonSystemPrompt,
	})
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	aiResponse, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:               c.cfg.Assistant.Model,
			Messages:            chatMessages,
			MaxCompletionTokens: maxReplyTokens,
			Temperature:         replyTemperature,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return strings.TrimSpace(aiResponse.Choices[0].Message.Content), nil
}
