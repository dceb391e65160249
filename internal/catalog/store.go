// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package catalog

import "context"

// Repository defines the data access contract for catalog products.
type Repository interface {
	// Create persists a new product and returns its generated ID.
	Create(context context.Context, product Product) (string, error)

	// Get retrieves a single product by ID. Returns apperr.NotFound if missing.
	Get(context context.Context, id string) (Product, error)

	// List returns every product, oldest first.
	List(context context.Context) ([]Product, error)

	// ListByStall returns the products of one stall.
	ListByStall(context context.Context, stallID string) ([]Product, error)
}
