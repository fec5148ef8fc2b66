package gitsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const maxMessageTokens = 200

const promptInstruction = `Generate a concise git commit message for the following changes.
Follow conventional commit format (e.g., feat:, fix:, docs:, refactor:, etc.).
Output a single line under 72 characters.
Only output the commit message, nothing else.

Changes:
`

// GeneratorConfig carries everything the generator needs. Nothing is read
// from the environment after construction.
type GeneratorConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// messageGenerator turns a change prompt into a commit message through an
// OpenAI-compatible chat completion endpoint.
type messageGenerator struct {
	logger *slog.Logger
	config GeneratorConfig
	client openai.Client
}

func newMessageGenerator(logger *slog.Logger, config GeneratorConfig) *messageGenerator {
	return &messageGenerator{
		logger: logger,
		config: config,
		client: openai.NewClient(
			option.WithAPIKey(config.APIKey),
			option.WithBaseURL(config.Endpoint),
			// a failed run is rerun by the user, never retried here
			option.WithMaxRetries(0),
		),
	}
}

// GenerateMessage issues exactly one chat completion request and normalizes
// the response to a single line.
func (g *messageGenerator) GenerateMessage(ctx context.Context, prompt ModelPrompt) (CommitMessage, error) {
	if g.config.APIKey == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY is not set: %w", ErrAuthentication)
	}

	requestCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	g.logger.DebugContext(ctx, "Requesting commit message",
		"model", g.config.Model,
		"prompt_bytes", len(prompt),
	)

	completion, err := g.client.Chat.Completions.New(requestCtx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(promptInstruction + string(prompt)),
		},
		Model:     openai.ChatModel(g.config.Model),
		MaxTokens: openai.Int(maxMessageTokens),
	})
	if err != nil {
		return "", g.classifyRequestError(err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices: %w", ErrGenerationService)
	}

	message, err := NormalizeMessage(completion.Choices[0].Message.Content)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "Commit message received", "message", message.String())

	return message, nil
}

func (g *messageGenerator) classifyRequestError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("no response within %s: %w", g.config.Timeout, ErrGenerationTimeout)
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("api key rejected: %w", ErrAuthentication)
		}
		return fmt.Errorf("request failed with status %d: %w", apiErr.StatusCode, ErrGenerationService)
	}
	return fmt.Errorf("request failed: %v: %w", err, ErrGenerationService)
}
