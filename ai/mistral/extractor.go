package mistral

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/ai"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
)

// EntityExtractor implements ai.EntityExtractor against the Mistral chat
// API. Mistral's chat endpoint is OpenAI-compatible, so the client also
// works against any other OpenAI-compatible service by changing the host.
type EntityExtractor struct {
	client       llms.Model
	systemPrompt string
	timeout      time.Duration
	logger       *slog.Logger
}

// newEntityExtractor is an internal constructor that returns the concrete
// type.
func newEntityExtractor(config *ai.Config) (*EntityExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &EntityExtractor{
		client:       client,
		systemPrompt: buildSystemPrompt(config.Schema),
		timeout:      config.Timeout,
		logger:       slog.Default().With("component", "mistral-extractor"),
	}, nil
}

// NewEntityExtractor creates an extraction client using the provided
// configuration.
//
// Returns the ai.EntityExtractor interface to enforce abstraction.
func NewEntityExtractor(config *ai.Config) (ai.EntityExtractor, error) {
	return newEntityExtractor(config)
}

// Extract sends one segment to the chat API and returns the verbatim
// response payload, trimmed. The call is bounded by the configured
// timeout; on expiry the error is returned like any other failure.
// Extract never retries and never validates the payload's structure.
func (e *EntityExtractor) Extract(ctx context.Context, segment core.Segment) (string, error) {
	if err := core.ValidateSegment(segment); err != nil {
		return "", err
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(e.systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSegmentPrompt(segment)),
			},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		e.logger.Error("extraction call failed",
			"segment", segment.Index,
			"total", segment.Total,
			"err", err)
		return "", fmt.Errorf("segment %d/%d: %w", segment.Index, segment.Total, err)
	}

	if len(response.Choices) < 1 {
		e.logger.Warn("no choices returned from model", "segment", segment.Index)
		return "", fmt.Errorf("segment %d/%d: %w", segment.Index, segment.Total, ErrEmptyResponse)
	}

	text := stripFences(response.Choices[0].Content)

	e.logger.Debug("segment extracted",
		"segment", segment.Index,
		"total", segment.Total,
		"chars", len(text),
		"elapsed", time.Since(start))

	return text, nil
}

// stripFences trims surrounding whitespace and removes markdown code
// fences some models wrap CSV output in despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```csv")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
