package eventbrite

import (
	"github.com/ternarybob/eventbrief/internal/models"
)

// EventResponse represents the Eventbrite v3 event metadata endpoint
// response, expanded with ticket classes.
type EventResponse struct {
	Name          TextField            `json:"name"`
	Summary       string               `json:"summary"`
	URL           string               `json:"url"`
	Start         DatetimeField        `json:"start"`
	End           DatetimeField        `json:"end"`
	IsFree        bool                 `json:"is_free"`
	VenueID       string               `json:"venue_id"`
	TicketClasses []models.TicketClass `json:"ticket_classes"`
}

// TextField is Eventbrite's text/html pair
type TextField struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

// DatetimeField is Eventbrite's timezone-qualified timestamp. Local and UTC
// are passed through as opaque strings; no time parsing happens downstream.
type DatetimeField struct {
	Timezone string `json:"timezone"`
	Local    string `json:"local"`
	UTC      string `json:"utc"`
}

// VenueResponse represents the venue metadata endpoint response
type VenueResponse struct {
	Name    string        `json:"name"`
	Address *VenueAddress `json:"address,omitempty"`
}

// VenueAddress is the venue's address object; only the localized display
// string is consumed.
type VenueAddress struct {
	LocalizedAddressDisplay string `json:"localized_address_display"`
}

// StructuredContentResponse represents the structured-content endpoint
// response: a module list whose first module's body carries the description
// as an HTML fragment.
type StructuredContentResponse struct {
	Modules []ContentModule `json:"modules"`
}

type ContentModule struct {
	Type string            `json:"type"`
	Data ContentModuleData `json:"data"`
}

type ContentModuleData struct {
	Body ContentBody `json:"body"`
}

type ContentBody struct {
	Type string `json:"type"`
	Text string `json:"text"` // HTML fragment, possibly BOM-prefixed
}
