package eventbrite

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/eventbrief/internal/common"
	"github.com/ternarybob/eventbrief/internal/interfaces"
	"github.com/ternarybob/eventbrief/internal/models"
)

// Service assembles normalized event records from event URLs. The top-level
// metadata fetch is the only fatal sub-operation; venue, ticket and
// description enrichment each degrade to their documented fallback and are
// reported to the log only.
type Service struct {
	client *Client
	config *common.EventbriteConfig
	logger arbor.ILogger
}

// NewService creates a new event info service
func NewService(config *common.EventbriteConfig, logger arbor.ILogger) interfaces.EventInfoService {
	return &Service{
		client: NewClient(config, logger),
		config: config,
		logger: logger,
	}
}

// GetFullEventInfo fetches event metadata, venue, ticket prices and the
// structured-content description for the event behind eventURL and merges
// them into one EventRecord. Sub-fetch failures degrade per-field; only a
// metadata fetch failure aborts, since there is no meaningful record without
// title and timing.
func (s *Service) GetFullEventInfo(ctx context.Context, eventURL string) (*models.EventRecord, error) {
	runID := common.NewRunID()
	eventID := ExtractEventID(eventURL)

	s.logger.Info().
		Str("run_id", runID).
		Str("event_id", eventID).
		Str("url", eventURL).
		Msg("Assembling event record")

	event, err := s.client.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event metadata fetch failed: %w", err)
	}

	record := &models.EventRecord{
		Title:     event.Name.Text,
		Subtitle:  event.Summary,
		URL:       event.URL,
		Timezone:  event.Start.Timezone,
		StartTime: event.Start.Local,
		EndTime:   event.End.Local,
	}
	if record.URL == "" {
		record.URL = eventURL
	}

	// Free flag and rendered tickets derive from the same aggregation pass.
	// An empty aggregation is recoverable: both fields fall back to the
	// platform-level defaults together, never to partially computed values.
	prices := AggregateTicketPrices(event.TicketClasses)
	if len(prices) == 0 {
		s.logger.Warn().
			Str("run_id", runID).
			Str("event_id", eventID).
			Int("ticket_classes", len(event.TicketClasses)).
			Msg("No ticket prices derivable; falling back to platform is_free flag")
		record.Free = event.IsFree
		record.Tickets = models.TicketsUnavailable
	} else {
		record.Free = IsFreeEvent(prices)
		record.Tickets = RenderTicketLines(prices)
	}

	venue := s.resolveVenue(ctx, runID, event.VenueID)
	record.VenueName = venue.Name
	record.VenueAddress = venue.Address

	record.Description, record.DescriptionMarkdown = s.resolveDescription(ctx, runID, eventID)

	s.logger.Info().
		Str("run_id", runID).
		Str("event_id", eventID).
		Str("title", record.Title).
		Bool("free", record.Free).
		Msg("Event record assembled")

	return record, nil
}

// resolveVenue looks up the venue enrichment. It never fails: an absent
// venue ID and a failed or malformed lookup both degrade to empty strings.
func (s *Service) resolveVenue(ctx context.Context, runID, venueID string) models.Venue {
	if venueID == "" {
		s.logger.Debug().
			Str("run_id", runID).
			Msg("Event has no venue; leaving venue fields empty")
		return models.Venue{}
	}

	venue, err := s.client.GetVenue(ctx, venueID)
	if err != nil {
		s.logger.Warn().
			Str("run_id", runID).
			Str("venue_id", venueID).
			Err(err).
			Msg("Venue lookup failed; leaving venue fields empty")
		return models.Venue{}
	}

	resolved := models.Venue{Name: venue.Name}
	if venue.Address != nil {
		resolved.Address = venue.Address.LocalizedAddressDisplay
	}
	return resolved
}

// resolveDescription fetches and extracts the structured-content
// description. Any failure degrades to empty strings.
func (s *Service) resolveDescription(ctx context.Context, runID, eventID string) (text string, markdown string) {
	doc, err := s.client.GetStructuredContent(ctx, eventID)
	if err != nil {
		s.logger.Warn().
			Str("run_id", runID).
			Str("event_id", eventID).
			Err(err).
			Msg("Structured content fetch failed; leaving description empty")
		return "", ""
	}

	text, err = ExtractDescription(doc)
	if err != nil {
		s.logger.Warn().
			Str("run_id", runID).
			Str("event_id", eventID).
			Err(err).
			Msg("Description extraction failed; leaving description empty")
		return "", ""
	}

	if s.config.MarkdownDescription {
		markdown, err = ExtractDescriptionMarkdown(doc)
		if err != nil {
			s.logger.Warn().
				Str("run_id", runID).
				Str("event_id", eventID).
				Err(err).
				Msg("Markdown conversion failed; leaving markdown description empty")
			markdown = ""
		}
	}

	return text, markdown
}
