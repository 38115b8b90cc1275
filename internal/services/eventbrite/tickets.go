package eventbrite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ternarybob/eventbrief/internal/models"
)

// AggregateTicketPrices builds an ordered tier-name/price list from the
// platform's ticket classes. Free tiers contribute price 0. Tiers with no
// cost object are dropped from aggregation entirely, not treated as zero;
// the platform reports donation and externally-ticketed tiers this way, and
// the drop is deliberate. Tier order is preserved for rendering.
func AggregateTicketPrices(classes []models.TicketClass) []models.TierPrice {
	prices := make([]models.TierPrice, 0, len(classes))
	for _, tc := range classes {
		switch {
		case tc.Free:
			prices = append(prices, models.TierPrice{Name: tc.Name, Price: 0})
		case tc.Cost == nil:
			continue
		default:
			value, err := strconv.ParseFloat(tc.Cost.MajorValue, 64)
			if err != nil {
				// Unparseable cost is treated the same as a missing one.
				continue
			}
			prices = append(prices, models.TierPrice{Name: tc.Name, Price: value})
		}
	}
	return prices
}

// IsFreeEvent reports whether the minimum aggregated price is zero. It must
// only be called with a non-empty price list; the caller substitutes the
// platform's own is_free flag when aggregation produced nothing.
func IsFreeEvent(prices []models.TierPrice) bool {
	min := prices[0].Price
	for _, p := range prices[1:] {
		if p.Price < min {
			min = p.Price
		}
	}
	return min == 0
}

// RenderTicketLines renders the aggregated prices as one line per tier in
// source order, e.g. "GA: $0.00\nVIP: $50.00".
func RenderTicketLines(prices []models.TierPrice) string {
	var b strings.Builder
	for i, p := range prices {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: $%.2f", p.Name, p.Price)
	}
	return b.String()
}
