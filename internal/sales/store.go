// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package sales

import "context"

// # Ledger Data Access

// Repository defines the data access contract for the sales ledger.
type Repository interface {

	/*
		Create persists a new ledger entry and returns its generated ID.

		Parameters:
		  - context: context.Context
		  - entry: Entry (validated submission)

		Returns:
		  - string: Generated document ID
		  - error: Storage failures
	*/
	Create(context context.Context, entry Entry) (string, error)

	/*
		Get retrieves a single ledger entry by its ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - Entry: Hydrated entry
		  - error: apperr.NotFound if missing
	*/
	Get(context context.Context, id string) (Entry, error)

	/*
		ListByStall retrieves every ledger entry of one stall.

		Parameters:
		  - context: context.Context
		  - stallID: string

		Returns:
		  - []Entry: Matching entries in storage order
		  - error: Storage failures
	*/
	ListByStall(context context.Context, stallID string) ([]Entry, error)

	/*
		ReplaceLineItems replaces the line items of an existing entry wholesale.

		Parameters:
		  - context: context.Context
		  - id: string
		  - items: []LineItem (full replacement set)

		Returns:
		  - error: apperr.NotFound if missing, storage failures otherwise
	*/
	ReplaceLineItems(context context.Context, id string, items []LineItem) error
}
