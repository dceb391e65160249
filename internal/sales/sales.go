// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

/*
Package sales manages the daily sales ledger of registered stalls.

Each submission from the evening data-entry round becomes one immutable-ish
ledger entry: a date plus the line items sold. Submissions are never merged,
even for the same stall and date; the ledger keeps what was entered, when it
was entered.

# Core Responsibility

  - Scoping: Line items must come from the stall's REGISTERED inventory,
    not the global taxonomy. A stall cannot report selling what it never
    brought.
  - History: Entries are served newest-date first for the stall dashboard.
*/
package sales

// # Ledger Types

// Entry is one sales submission for a stall on a given date.
type Entry struct {
	ID           string `json:"id,omitempty"`
	ExhibitionID string `json:"exhibitionId"`
	StallID      string `json:"stallId"`

	// Date is an ISO yyyy-mm-dd string. Lexicographic order is
	// chronological order, which history sorting relies on.
	Date string `json:"date"`

	LineItems []LineItem `json:"products"`
}

// LineItem is one product sold within a submission.
type LineItem struct {
	ProductCategory string  `json:"productCategory"`
	ProductName     string  `json:"productName"`
	QuantitySold    int     `json:"quantitySold"`
	SalesValue      float64 `json:"salesValue"`
}

// TotalValue sums the sales value across all line items.
// It is derived on read and never stored.
func (entry Entry) TotalValue() float64 {
	var total float64
	for _, item := range entry.LineItems {
		total += item.SalesValue
	}
	return total
}
