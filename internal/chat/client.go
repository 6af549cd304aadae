package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/mkarvo/fitsoul/internal/profile"
)

// FallbackReply is shown when the upstream call fails or returns an empty
// completion.
const FallbackReply = "I apologize, but I couldn't process your request at the moment. Please try again later."

// ErrEmptyCompletion is returned when the API answered without any usable
// message content.
var ErrEmptyCompletion = errors.New("completion has no content")

// ErrNoAPIKey is returned when the client was constructed without an API key.
var ErrNoAPIKey = errors.New("no API key configured")

// Client sends persona chats to the OpenAI API.
//
// Every request gets its own deadline so a hung upstream never blocks the
// caller indefinitely.
type Client struct {
	api        openai.Client
	logger     *slog.Logger
	timeout    time.Duration
	configured bool
}

func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		api:        openai.NewClient(option.WithAPIKey(apiKey)),
		logger:     logger,
		timeout:    timeout,
		configured: apiKey != "",
	}
}

// Reply asks the persona to answer message, with prof rendered into the
// prompt when non-nil. On any upstream failure the error is returned
// together with FallbackReply so the caller can always render something.
func (c *Client) Reply(ctx context.Context, persona Persona, message string, prof *profile.Profile) (string, error) {
	if !c.configured {
		return FallbackReply, ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(persona)),
			openai.UserMessage(userPrompt(persona, message, prof)),
		},
		Temperature:         openai.Float(0.7),
		MaxCompletionTokens: openai.Int(1024),
	}

	start := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelError, "chat completion failed",
			slog.String("persona", string(persona)),
			slog.Any("error", err))
		return FallbackReply, fmt.Errorf("chat completion: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		c.logger.LogAttrs(ctx, slog.LevelError, "chat completion empty",
			slog.String("persona", string(persona)))
		return FallbackReply, ErrEmptyCompletion
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "chat completion",
		slog.String("persona", string(persona)),
		slog.Duration("duration", time.Since(start)),
		slog.Int64("totalTokens", completion.Usage.TotalTokens))
	return completion.Choices[0].Message.Content, nil
}
