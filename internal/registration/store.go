// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package registration

import "context"

// # Registration Data Access

// Repository defines the data access contract for stall registrations.
type Repository interface {

	/*
		Create persists a new registration and returns its generated ID.

		Parameters:
		  - context: context.Context
		  - reg: Registration (validated aggregate)

		Returns:
		  - string: Generated document ID
		  - error: Storage failures
	*/
	Create(context context.Context, reg Registration) (string, error)

	/*
		Get retrieves a single registration by its ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - Registration: Hydrated aggregate
		  - error: apperr.NotFound if missing
	*/
	Get(context context.Context, id string) (Registration, error)

	/*
		Patch applies a shallow partial update to an existing registration.

		Parameters:
		  - context: context.Context
		  - id: string
		  - partial: map[string]any (top-level fields to replace)

		Returns:
		  - error: apperr.NotFound if missing, storage failures otherwise
	*/
	Patch(context context.Context, id string, partial map[string]any) error

	/*
		ListByExhibition retrieves all registrations of one exhibition.

		Parameters:
		  - context: context.Context
		  - exhibitionID: string

		Returns:
		  - []Registration: Matching registrations, oldest first
		  - error: Storage failures
	*/
	ListByExhibition(context context.Context, exhibitionID string) ([]Registration, error)
}
