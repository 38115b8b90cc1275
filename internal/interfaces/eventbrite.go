package interfaces

import (
	"context"

	"github.com/ternarybob/eventbrief/internal/models"
)

// EventInfoService assembles a normalized event record from an event URL.
// The record is complete except for the generated LeaderLine/Summary fields.
type EventInfoService interface {
	GetFullEventInfo(ctx context.Context, eventURL string) (*models.EventRecord, error)
}
