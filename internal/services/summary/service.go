package summary

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/eventbrief/internal/common"
	"github.com/ternarybob/eventbrief/internal/interfaces"
	"github.com/ternarybob/eventbrief/internal/models"
)

// Service runs the full pipeline for one event URL: assemble the record,
// format the prompt, call the generation service, and parse the two-line
// response back onto the record.
type Service struct {
	events interfaces.EventInfoService
	llm    interfaces.LLMService
	config *common.SummaryConfig
	logger arbor.ILogger
}

// NewService creates a new summary service
func NewService(
	events interfaces.EventInfoService,
	llm interfaces.LLMService,
	config *common.SummaryConfig,
	logger arbor.ILogger,
) *Service {
	return &Service{
		events: events,
		llm:    llm,
		config: config,
		logger: logger,
	}
}

// GetEventbriteSummary assembles the event record for eventURL and annotates
// it with a generated leader line and summary. An empty model and a negative
// temperature select the configured defaults; an explicit temperature of 0
// is passed through for deterministic generation. Assembly failure, prompt
// formatting failure, generation failure and response-shape violations are
// all fatal to this call.
func (s *Service) GetEventbriteSummary(ctx context.Context, eventURL string, promptTemplate string, model string, temperature float32) (*models.EventRecord, error) {
	record, err := s.events.GetFullEventInfo(ctx, eventURL)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble event record: %w", err)
	}

	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}

	prompt, err := FormatPrompt(promptTemplate, record)
	if err != nil {
		return nil, fmt.Errorf("failed to format prompt: %w", err)
	}

	if model == "" {
		model = s.config.Model
	}
	if temperature < 0 {
		temperature = s.config.Temperature
	}

	s.logger.Debug().
		Str("url", eventURL).
		Str("model", model).
		Float32("temperature", temperature).
		Int("prompt_length", len(prompt)).
		Msg("Requesting event summary")

	text, err := s.llm.Generate(ctx, prompt, interfaces.GenerateOptions{
		Model:       model,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	parsed, err := ParseSummary(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generation output: %w", err)
	}

	record.LeaderLine = parsed.LeaderLine
	record.Summary = parsed.Summary

	s.logger.Info().
		Str("url", eventURL).
		Str("leader", record.LeaderLine).
		Msg("Event summary generated")

	return record, nil
}
