// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package registration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/melabook/melabook/internal/core/cascade"
	"github.com/melabook/melabook/internal/core/geography"
	"github.com/melabook/melabook/internal/core/taxonomy"
	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/validate"
)

// # Service Layer

// Service orchestrates business rules for stall registrations.
//
// It validates submissions against the administrative geography and the
// global product taxonomy before anything reaches storage.
type Service struct {
	repo   Repository
	geo    *geography.Resolver
	engine *cascade.Engine
	logger *slog.Logger
}

// NewService constructs a new registration [Service].
//
// The cascade engine must be built over the GLOBAL taxonomy: registration is
// where a stall declares what it sells, so the full catalogue is in scope.
func NewService(repo Repository, geo *geography.Resolver, global *taxonomy.Index, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		geo:    geo,
		engine: cascade.NewEngine(global),
		logger: logger,
	}
}

/*
Create validates and persists a new stall registration.

Description: Normalizes "Others" free-text fields, checks the location
variant against the administrative hierarchy, and checks every inventory row
against the global taxonomy.

Parameters:
  - context: context.Context
  - reg: Registration (raw submission)

Returns:
  - Registration: The stored aggregate with its generated ID
  - error: apperr.ValidationError on rule failures, storage errors otherwise
*/
func (service *Service) Create(context context.Context, reg Registration) (Registration, error) {
	reg = normalize(reg)

	if err := service.validateRegistration(reg); err != nil {
		return Registration{}, err
	}

	id, err := service.repo.Create(context, reg)
	if err != nil {
		return Registration{}, err
	}

	reg.ID = id
	service.logger.InfoContext(context, "registration_created",
		slog.String("registration_id", id),
		slog.String("exhibition_id", reg.ExhibitionID),
		slog.String("stall_number", reg.StallNumber),
	)

	return reg, nil
}

/*
Get retrieves a single registration by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - Registration: Hydrated aggregate
  - error: apperr.NotFound if missing
*/
func (service *Service) Get(context context.Context, id string) (Registration, error) {
	return service.repo.Get(context, id)
}

/*
ListByExhibition retrieves all registrations of one exhibition.

Parameters:
  - context: context.Context
  - exhibitionID: string

Returns:
  - []Registration: Matching registrations, oldest first
  - error: Storage failures
*/
func (service *Service) ListByExhibition(context context.Context, exhibitionID string) ([]Registration, error) {
	if strings.TrimSpace(exhibitionID) == "" {
		return nil, validate.RequiredError("exhibitionId", "This field is required")
	}
	return service.repo.ListByExhibition(context, exhibitionID)
}

/*
Update applies a partial update to an existing registration.

Description: Identity fields (id, stallNumber, exhibitionId) are stripped
from the partial; a stall cannot be renumbered or moved between exhibitions
through edits. Location and inventory, when present, are re-validated with
the same rules Create applies.

Parameters:
  - context: context.Context
  - id: string
  - partial: map[string]any (top-level fields to replace)

Returns:
  - error: apperr.NotFound, apperr.ValidationError, or storage failures
*/
func (service *Service) Update(context context.Context, id string, partial map[string]any) error {
	if strings.TrimSpace(id) == "" {
		return validate.RequiredError("id", "This field is required")
	}

	delete(partial, "id")
	delete(partial, "stallNumber")
	delete(partial, "exhibitionId")

	if len(partial) == 0 {
		return apperr.ValidationError("No editable fields in update")
	}

	if raw, ok := partial["location"]; ok {
		var loc Location
		if err := reencode(raw, &loc); err != nil {
			return validate.ErrInvalidJSON
		}

		v := &validate.Validator{}
		service.validateLocation(v, loc)
		if err := v.Err(); err != nil {
			return err
		}
	}

	if raw, ok := partial["inventory"]; ok {
		var items []InventoryItem
		if err := reencode(raw, &items); err != nil {
			return validate.ErrInvalidJSON
		}

		v := &validate.Validator{}
		service.validateInventory(v, items)
		if err := v.Err(); err != nil {
			return err
		}
	}

	return service.repo.Patch(context, id, partial)
}

// InventoryScope builds a taxonomy index over one stall's registered
// inventory. The sales ledger validates entries against this scope.
func (service *Service) InventoryScope(context context.Context, id string) (*taxonomy.Index, error) {
	reg, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	entries := make([]taxonomy.Entry, 0, len(reg.Inventory))
	for _, item := range reg.Inventory {
		entries = append(entries, taxonomy.Entry{
			Category: item.ProductCategory,
			Product:  item.ProductName,
		})
	}

	return taxonomy.NewIndex(entries), nil
}

// # Validation

func (service *Service) validateRegistration(reg Registration) error {
	v := &validate.Validator{}

	v.Required("exhibitionId", reg.ExhibitionID)
	v.Required("stallNumber", reg.StallNumber).MaxLen("stallNumber", reg.StallNumber, 20)

	service.validateLocation(v, reg.Location)

	v.Required("organizationType", reg.OrganizationType)
	if reg.OrganizationType == OtherMarker {
		v.Required("otherOrganization", reg.OtherOrganization)
	}
	if reg.Sponsor == OtherMarker {
		v.Required("otherSponsor", reg.OtherSponsor)
	}

	v.Custom("participants", len(reg.Participants) == 0, "At least one participant is required")
	for i, participant := range reg.Participants {
		v.Required(fmt.Sprintf("participants[%d].name", i), participant.Name)
		v.Required(fmt.Sprintf("participants[%d].phone", i), participant.Phone)
	}

	service.validateInventory(v, reg.Inventory)

	return v.Err()
}

// validateLocation enforces the variant rule: exactly one of the two forms,
// and a structured Odisha path must exist in the administrative hierarchy.
func (service *Service) validateLocation(v *validate.Validator, loc Location) {
	switch {
	case loc.Odisha == nil && loc.Other == nil:
		v.Custom("location", true, "A location is required")
		return
	case loc.Odisha != nil && loc.Other != nil:
		v.Custom("location", true, "Location must be either an Odisha path or an other-state entry, not both")
		return
	}

	if loc.Other != nil {
		v.Required("location.other.state", loc.Other.State)
		return
	}

	odisha := loc.Odisha
	v.Required("location.odisha.district", odisha.District)
	v.Required("location.odisha.block", odisha.Block)
	if v.HasErrors() {
		return
	}

	if !service.geo.HasDistrict("Odisha", odisha.District) {
		v.Custom("location.odisha.district", true, "Unknown district")
		return
	}
	if !service.geo.HasBlock("Odisha", odisha.District, odisha.Block) {
		v.Custom("location.odisha.block", true, "Unknown block for this district")
		return
	}
	if odisha.GramPanchayat != "" && !service.geo.HasGramPanchayat("Odisha", odisha.District, odisha.Block, odisha.GramPanchayat) {
		v.Custom("location.odisha.gramPanchayat", true, "Unknown gram panchayat for this block")
	}
}

func (service *Service) validateInventory(v *validate.Validator, items []InventoryItem) {
	v.Custom("inventory", len(items) == 0, "At least one inventory item is required")

	for i, item := range items {
		row := cascade.Row{Category: item.ProductCategory, Product: item.ProductName}
		v.Custom(fmt.Sprintf("inventory[%d]", i), !service.engine.Valid(row),
			"Product is not in the catalogue for this category")

		v.NonNegative(fmt.Sprintf("inventory[%d].quantity", i), item.Quantity)
		v.NonNegativeAmount(fmt.Sprintf("inventory[%d].value", i), item.Value)
	}
}

// # Helpers

// normalize trims identity fields and clears free-text companions whose
// dropdown is not set to the "Others" marker.
func normalize(reg Registration) Registration {
	reg.StallNumber = strings.TrimSpace(reg.StallNumber)
	reg.OrganizationType = strings.TrimSpace(reg.OrganizationType)
	reg.OtherOrganization = strings.TrimSpace(reg.OtherOrganization)
	reg.Sponsor = strings.TrimSpace(reg.Sponsor)
	reg.OtherSponsor = strings.TrimSpace(reg.OtherSponsor)

	if reg.OrganizationType != OtherMarker {
		reg.OtherOrganization = ""
	}
	if reg.Sponsor != OtherMarker {
		reg.OtherSponsor = ""
	}

	return reg
}

// reencode converts a decoded JSON value (map/slice) into a typed structure.
func reencode(raw any, target any) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, target)
}
