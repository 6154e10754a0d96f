package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLineItems(t *testing.T) {
	tests := []struct {
		name         string
		descriptions []string
		hours        []string
		want         []LineItem
	}{
		{
			name:         "blank description dropped and bad hours default to zero",
			descriptions: []string{"Repair pump", "", "Inspection"},
			hours:        []string{"3", "5", "bad"},
			want: []LineItem{
				{Description: "Repair pump", EstimatedHours: 3},
				{Description: "Inspection", EstimatedHours: 0},
			},
		},
		{
			name:         "whitespace-only description dropped",
			descriptions: []string{"   ", "Clean filter"},
			hours:        []string{"1", "2.5"},
			want:         []LineItem{{Description: "Clean filter", EstimatedHours: 2.5}},
		},
		{
			name:         "missing hours entry defaults to zero",
			descriptions: []string{"Survey site"},
			hours:        nil,
			want:         []LineItem{{Description: "Survey site", EstimatedHours: 0}},
		},
		{
			name:         "description trimmed",
			descriptions: []string{"  Replace belt  "},
			hours:        []string{"4"},
			want:         []LineItem{{Description: "Replace belt", EstimatedHours: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLineItems(tt.descriptions, tt.hours)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected items (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatQuoteNo(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "S001"},
		{7, "S007"},
		{42, "S042"},
		{999, "S999"},
		{1000, "S1000"},
	}
	for _, tt := range tests {
		if got := FormatQuoteNo(tt.n); got != tt.want {
			t.Errorf("FormatQuoteNo(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "$0.00"},
		{120, "$120.00"},
		{1234.5, "$1,234.50"},
		{300, "$300.00"},
		{1000000, "$1,000,000.00"},
		{45.678, "$45.68"},
	}
	for _, tt := range tests {
		if got := Money(tt.v); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{2, "2"},
		{2.5, "2.5"},
		{0, "0"},
		{0.25, "0.25"},
		// Capped at six significant digits, like %g.
		{2.3333333333, "2.33333"},
		{0.1234567, "0.123457"},
	}
	for _, tt := range tests {
		if got := Hours(tt.v); got != tt.want {
			t.Errorf("Hours(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestQuoteSumTotal(t *testing.T) {
	q := &Quote{
		UnitPrice: 120,
		Items: []LineItem{
			{Description: "Repair pump", EstimatedHours: 3},
			{Description: "Inspection", EstimatedHours: 2.5},
		},
	}
	if got, want := q.SumTotal(), 660.0; got != want {
		t.Errorf("SumTotal() = %v, want %v", got, want)
	}
}

func TestQuoteItemsJSONRoundTrip(t *testing.T) {
	items := []LineItem{
		{Description: "Repair pump", EstimatedHours: 2.5},
		{Description: "Inspection", EstimatedHours: 0},
	}

	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got []LineItem
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("round trip changed items (-want +got):\n%s", diff)
	}
}
