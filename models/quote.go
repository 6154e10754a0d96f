package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LineItem is one row of quoted work. Items are built fresh from each
// submission and are only persisted as part of a Quote's item list.
type LineItem struct {
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// TotalPrice prices the item at the unit rate in effect for the quote.
func (li LineItem) TotalPrice(unitPrice float64) float64 {
	return li.EstimatedHours * unitPrice
}

// Quote is the persisted quote record, keyed by QuoteNo.
type Quote struct {
	QuoteNo     string     `json:"quote_no"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	Rep         string     `json:"rep"`
	WorkOrder   string     `json:"work_order"`
	DueDate     string     `json:"due_date"`
	SubmittedOn string     `json:"submitted_on"`
	UnitPrice   float64    `json:"unit_price"`
	Items       []LineItem `json:"items"`
	Total       float64    `json:"total"`
}

func NewQuote() *Quote {
	return &Quote{}
}

// SumTotal recomputes the denormalized total from the item list.
func (q *Quote) SumTotal() float64 {
	var total float64
	for _, it := range q.Items {
		total += it.TotalPrice(q.UnitPrice)
	}
	return total
}

// ParseLineItems builds line items from the parallel description/hours form
// fields. Blank descriptions are dropped and unparsable hours default to 0;
// form input is never rejected here.
func ParseLineItems(descriptions, hours []string) []LineItem {
	items := make([]LineItem, 0, len(descriptions))
	for i, d := range descriptions {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}

		var hrs float64
		if i < len(hours) {
			h := strings.TrimSpace(hours[i])
			if h != "" {
				if v, err := strconv.ParseFloat(h, 64); err == nil {
					hrs = v
				}
			}
		}

		items = append(items, LineItem{Description: d, EstimatedHours: hrs})
	}
	return items
}

// FormatQuoteNo renders an issued counter value as the public quote number,
// e.g. 7 -> "S007". Values past 999 widen without truncation.
func FormatQuoteNo(n int64) string {
	return fmt.Sprintf("S%03d", n)
}

// Money formats a currency amount as $ with thousands grouping and exactly
// two decimals, e.g. 1234.5 -> "$1,234.50".
func Money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}

// Hours formats an hour quantity with trailing zeros suppressed and at
// most six significant digits: 2.0 -> "2", 2.5 -> "2.5".
func Hours(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
