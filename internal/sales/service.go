// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package sales

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/melabook/melabook/internal/core/cascade"
	"github.com/melabook/melabook/internal/core/taxonomy"
	"github.com/melabook/melabook/internal/platform/validate"
)

// # Service Layer

// StallDirectory resolves a stall's registered inventory.
// Satisfied by the registration service.
type StallDirectory interface {
	InventoryScope(context context.Context, stallID string) (*taxonomy.Index, error)
}

// Service orchestrates business rules for the daily sales ledger.
type Service struct {
	repo   Repository
	stalls StallDirectory
	logger *slog.Logger
}

// NewService constructs a new sales [Service].
func NewService(repo Repository, stalls StallDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		stalls: stalls,
		logger: logger,
	}
}

/*
RecordSale validates and persists a new ledger entry.

Description: Resolves the stall's registered inventory and validates every
line item against that scope, not the global taxonomy. Each call appends a
new entry; a second submission for the same stall and date becomes a second
entry, never a merge.

Parameters:
  - context: context.Context
  - entry: Entry (raw submission)

Returns:
  - Entry: The stored entry with its generated ID
  - error: apperr.NotFound for unknown stalls, apperr.ValidationError on
    rule failures, storage errors otherwise
*/
func (service *Service) RecordSale(context context.Context, entry Entry) (Entry, error) {
	v := &validate.Validator{}
	v.Required("exhibitionId", entry.ExhibitionID)
	v.Required("stallId", entry.StallID)
	v.Required("date", entry.Date).ISODate("date", entry.Date)
	if err := v.Err(); err != nil {
		return Entry{}, err
	}

	// NotFound here also covers stalls that were never registered
	scope, err := service.stalls.InventoryScope(context, entry.StallID)
	if err != nil {
		return Entry{}, err
	}

	if err := service.validateLineItems(scope, entry.LineItems, true); err != nil {
		return Entry{}, err
	}

	id, err := service.repo.Create(context, entry)
	if err != nil {
		return Entry{}, err
	}

	entry.ID = id
	service.logger.InfoContext(context, "sale_recorded",
		slog.String("entry_id", id),
		slog.String("stall_id", entry.StallID),
		slog.String("date", entry.Date),
		slog.Float64("total_value", entry.TotalValue()),
	)

	return entry, nil
}

/*
ListHistory returns a stall's ledger entries, newest date first.

Parameters:
  - context: context.Context
  - stallID: string

Returns:
  - []Entry: Entries sorted by date descending
  - error: Storage failures
*/
func (service *Service) ListHistory(context context.Context, stallID string) ([]Entry, error) {
	if strings.TrimSpace(stallID) == "" {
		return nil, validate.RequiredError("stallId", "This field is required")
	}

	entries, err := service.repo.ListByStall(context, stallID)
	if err != nil {
		return nil, err
	}

	// ISO date strings sort lexicographically; stable keeps same-date
	// entries in submission order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

/*
Get retrieves a single ledger entry by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - Entry: Hydrated entry
  - error: apperr.NotFound if missing
*/
func (service *Service) Get(context context.Context, id string) (Entry, error) {
	return service.repo.Get(context, id)
}

/*
EditEntry replaces the line items of an existing ledger entry wholesale.

Description: The replacement items are checked for scope membership against
the stall's registered inventory, matching what RecordSale enforces.

Parameters:
  - context: context.Context
  - id: string
  - items: []LineItem (full replacement set)

Returns:
  - error: apperr.NotFound, apperr.ValidationError, or storage failures
*/
func (service *Service) EditEntry(context context.Context, id string, items []LineItem) error {
	entry, err := service.repo.Get(context, id)
	if err != nil {
		return err
	}

	scope, err := service.stalls.InventoryScope(context, entry.StallID)
	if err != nil {
		return err
	}

	// TODO: edits skip the positive quantity/value checks RecordSale applies,
	// because the edit form still sends zero-filled placeholder rows. Tighten
	// to full RecordSale validation once the form prunes empty rows.
	if err := service.validateLineItems(scope, items, false); err != nil {
		return err
	}

	return service.repo.ReplaceLineItems(context, id, items)
}

// # Validation

// validateLineItems checks scope membership for every line item, and the
// positive quantity/value rules when strict is set.
func (service *Service) validateLineItems(scope *taxonomy.Index, items []LineItem, strict bool) error {
	v := &validate.Validator{}
	v.Custom("products", len(items) == 0, "At least one product is required")

	engine := cascade.NewEngine(scope)
	for i, item := range items {
		row := cascade.Row{Category: item.ProductCategory, Product: item.ProductName}
		v.Custom(fmt.Sprintf("products[%d]", i), !engine.Valid(row),
			"Product is not in this stall's registered inventory")

		if strict {
			v.Positive(fmt.Sprintf("products[%d].quantitySold", i), item.QuantitySold)
			v.PositiveAmount(fmt.Sprintf("products[%d].salesValue", i), item.SalesValue)
		}
	}

	return v.Err()
}
