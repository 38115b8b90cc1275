package models

import "strconv"

// TicketsUnavailable is the sentinel rendered into EventRecord.Tickets when
// no per-tier price could be derived from the platform's ticket classes.
const TicketsUnavailable = "Ticket information unavailable"

// EventRecord is the normalized view of one event listing. It is created
// fresh per input URL, populated exactly once per field (fetched value or
// documented fallback) and never mutated after assembly, except for the
// LeaderLine/Summary fields which are added by the generation step.
type EventRecord struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	URL          string `json:"url"`
	Timezone     string `json:"timezone"`
	StartTime    string `json:"start_time"` // Opaque local-time string, passed through unparsed
	EndTime      string `json:"end_time"`
	Free         bool   `json:"free"`
	Tickets      string `json:"tickets"` // Multi-line "<tier>: $<price>" rendering, or TicketsUnavailable
	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address"`
	Description  string `json:"description"`

	// DescriptionMarkdown is an optional enrichment: the same structured
	// content converted to markdown instead of plain text.
	DescriptionMarkdown string `json:"description_markdown,omitempty"`

	// Populated by the generation step only.
	LeaderLine string `json:"leader_line,omitempty"`
	Summary    string `json:"summary,omitempty"`
}

// PromptFields returns the record's assembled fields keyed by their prompt
// placeholder names. Rendering is driven by these names, never by struct
// field order. Generated fields are excluded: they do not exist at format
// time.
func (r *EventRecord) PromptFields() map[string]string {
	return map[string]string{
		"title":         r.Title,
		"subtitle":      r.Subtitle,
		"url":           r.URL,
		"timezone":      r.Timezone,
		"start_time":    r.StartTime,
		"end_time":      r.EndTime,
		"free":          strconv.FormatBool(r.Free),
		"tickets":       r.Tickets,
		"venue_name":    r.VenueName,
		"venue_address": r.VenueAddress,
		"description":   r.Description,
	}
}

// Complete reports whether the generation step has annotated the record.
func (r *EventRecord) Complete() bool {
	return r.LeaderLine != "" && r.Summary != ""
}

// TicketClass is one purchasable admission tier as reported by the platform.
type TicketClass struct {
	Name string      `json:"name"`
	Free bool        `json:"free"`
	Cost *TicketCost `json:"cost"` // nil when the platform reports no cost
}

// TicketCost is the platform's money object for a ticket tier.
type TicketCost struct {
	Display    string `json:"display"`
	Currency   string `json:"currency"`
	Value      int    `json:"value"`
	MajorValue string `json:"major_value"` // e.g. "50.00"
}

// TierPrice is one aggregated tier price. Order matches the source tier
// order, which the rendered ticket string must preserve.
type TierPrice struct {
	Name  string
	Price float64
}

// Venue is the resolved venue enrichment. Both fields degrade to "" when the
// venue is absent or its lookup fails.
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
