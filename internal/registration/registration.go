// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

/*
Package registration manages stall registrations, the central aggregate of
the exhibition backend.

A registration captures everything the on-site data entry team records for a
participating stall: where the entrepreneurs come from, who staffs the stall,
and what the stall has brought to sell. The inventory recorded here later
scopes what the sales ledger accepts for the stall.

# Core Responsibility

  - Identity: Stall number and exhibition binding.
  - Origin: [Location] as a structured Odisha path or free-text other-state entry.
  - People: [Participant] roster with contact details.
  - Catalogue: [InventoryItem] rows validated against the product taxonomy.

Registrations are stored as documents; the shape has grown organically across
exhibition seasons and the document model absorbs that drift.
*/
package registration

// # Registration Aggregate

// Registration is one stall's complete registration record.
type Registration struct {
	ID           string `json:"id,omitempty"`
	ExhibitionID string `json:"exhibitionId"`
	StallNumber  string `json:"stallNumber"`

	Location Location `json:"location"`

	// OrganizationType is one of the known sponsor-scheme organization kinds,
	// or "Others" with the free-text detail in OtherOrganization.
	OrganizationType  string `json:"organizationType"`
	OtherOrganization string `json:"otherOrganization,omitempty"`

	Sponsor      string `json:"sponsor,omitempty"`
	OtherSponsor string `json:"otherSponsor,omitempty"`

	AccommodationRequired bool `json:"accommodationRequired"`

	StallPhotos []string `json:"stallPhotos,omitempty"`

	Participants []Participant   `json:"participants"`
	Inventory    []InventoryItem `json:"inventory"`
}

// # Location Variants

// Location is a tagged variant: exactly one of the two pointers is set.
//
// Odisha stalls are located through the structured administrative cascade;
// stalls from other states record a free-text address instead.
type Location struct {
	Odisha *OdishaLocation `json:"odisha,omitempty"`
	Other  *OtherLocation  `json:"other,omitempty"`
}

// OdishaLocation is a structured path through the administrative hierarchy.
type OdishaLocation struct {
	District      string `json:"district"`
	Block         string `json:"block"`
	GramPanchayat string `json:"gramPanchayat,omitempty"`
}

// OtherLocation is a free-text origin for stalls from outside Odisha.
type OtherLocation struct {
	State   string `json:"state"`
	Address string `json:"address,omitempty"`
}

// # People & Inventory

// Participant is one person staffing the stall.
type Participant struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Gender       string `json:"gender,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// InventoryItem is one product line the stall has registered to sell.
// The (ProductCategory, ProductName) pair must exist in the global taxonomy.
type InventoryItem struct {
	ProductCategory string   `json:"productCategory"`
	ProductName     string   `json:"productName"`
	Quantity        int      `json:"quantity"`
	Value           float64  `json:"value"`
	Photos          []string `json:"photos,omitempty"`
}

// OtherMarker is the sentinel value that switches a dropdown field into
// free-text mode on the entry forms.
const OtherMarker = "Others"
