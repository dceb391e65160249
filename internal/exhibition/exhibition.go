// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

/*
Package exhibition manages the exhibitions (melas) themselves and the global
display settings shown on the public kiosk.

Settings live in a single well-known document so the kiosk frontend always
has something to render: missing settings resolve to defaults instead of
errors.
*/
package exhibition

// Exhibition is one mela season that stalls register into.
type Exhibition struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Year int    `json:"year"`

	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	Venue string `json:"venue,omitempty"`
}

// Settings is the kiosk display configuration.
//
// Pointer fields distinguish "not set" from explicit zero values so that
// partial documents written by older seasons still merge with defaults.
type Settings struct {
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle,omitempty"`
	Year     int     `json:"year"`

	MarqueeMessages []string `json:"marqueeMessages"`
	MarqueeSpeed    *int     `json:"marqueeSpeed,omitempty"`
	MarqueeColor    *string  `json:"marqueeColor,omitempty"`
}
