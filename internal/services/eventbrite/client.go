package eventbrite

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/eventbrief/internal/common"
	"github.com/ternarybob/eventbrief/internal/httpclient"
)

// Client is a thin client for the three Eventbrite v3 endpoints the pipeline
// consumes. Authentication uses the bearer token from configuration; there
// are no retries and no caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
}

// NewClient creates an Eventbrite API client from configuration
func NewClient(config *common.EventbriteConfig, logger arbor.ILogger) *Client {
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		httpClient: httpclient.NewDefaultHTTPClient(timeout),
		logger:     logger,
	}
}

// GetEvent fetches event metadata with ticket classes expanded
func (c *Client) GetEvent(ctx context.Context, eventID string) (*EventResponse, error) {
	url := fmt.Sprintf("%s/events/%s/?expand=ticket_classes", c.baseURL, eventID)

	var event EventResponse
	if err := httpclient.GetJSON(ctx, c.httpClient, url, c.apiKey, &event); err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", eventID, err)
	}

	c.logger.Debug().
		Str("event_id", eventID).
		Str("title", event.Name.Text).
		Int("ticket_classes", len(event.TicketClasses)).
		Msg("Fetched event metadata")

	return &event, nil
}

// GetStructuredContent fetches the rich-content document for an event
func (c *Client) GetStructuredContent(ctx context.Context, eventID string) (*StructuredContentResponse, error) {
	url := fmt.Sprintf("%s/events/%s/structured_content/", c.baseURL, eventID)

	var content StructuredContentResponse
	if err := httpclient.GetJSON(ctx, c.httpClient, url, c.apiKey, &content); err != nil {
		return nil, fmt.Errorf("failed to fetch structured content for event %s: %w", eventID, err)
	}

	c.logger.Debug().
		Str("event_id", eventID).
		Int("modules", len(content.Modules)).
		Msg("Fetched structured content")

	return &content, nil
}

// GetVenue fetches venue metadata
func (c *Client) GetVenue(ctx context.Context, venueID string) (*VenueResponse, error) {
	url := fmt.Sprintf("%s/venues/%s/", c.baseURL, venueID)

	var venue VenueResponse
	if err := httpclient.GetJSON(ctx, c.httpClient, url, c.apiKey, &venue); err != nil {
		return nil, fmt.Errorf("failed to fetch venue %s: %w", venueID, err)
	}

	return &venue, nil
}
