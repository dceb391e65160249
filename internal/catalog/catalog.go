// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

/*
Package catalog serves the public product browse used by the kiosk pages.

Visitors browse by category; each category page lists the products stalls
have put on display, with a pointer back to the stall. The browse is
read-heavy and tolerant of short staleness, so responses are cached in
Redis with a bounded TTL.
*/
package catalog

// Product is one publicly browsable item.
type Product struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Price       float64 `json:"price"`
	StallID     string  `json:"stallId"`
}

// CategoryView is one entry of the browsable category list.
type CategoryView struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"productCount"`
}
