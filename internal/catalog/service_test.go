// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melabook/melabook/internal/catalog"
	"github.com/melabook/melabook/internal/core/taxonomy"
	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/docstore"
	"github.com/melabook/melabook/pkg/pagination"
)

func newTestService(t *testing.T) *catalog.Service {
	t.Helper()

	global := taxonomy.NewIndex([]taxonomy.Entry{
		{Category: "Handloom", Product: "Saree"},
		{Category: "Food Products", Product: "Pickles"},
	})

	repo := catalog.NewDocstoreRepository(docstore.NewMemory())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// nil cache client: the service must fall through to storage
	return catalog.NewService(repo, nil, global, logger)
}

func addProduct(t *testing.T, service *catalog.Service, name, category, stallID string, price float64) catalog.Product {
	t.Helper()
	created, err := service.AddProduct(context.Background(), catalog.Product{
		Name:     name,
		Category: category,
		StallID:  stallID,
		Price:    price,
	})
	require.NoError(t, err)
	return created
}

func TestService_AddProduct(t *testing.T) {
	service := newTestService(t)

	created := addProduct(t, service, "Sambalpuri Saree", "Handloom", "stall-1", 3200)
	assert.NotEmpty(t, created.ID)
}

func TestService_AddProduct_UnknownCategory(t *testing.T) {
	service := newTestService(t)

	_, err := service.AddProduct(context.Background(), catalog.Product{
		Name:     "Smartwatch",
		Category: "Electronics",
		StallID:  "stall-1",
		Price:    2000,
	})
	require.Error(t, err)
	assert.Equal(t, "category", apperr.As(err).Details[0].Field)
}

func TestService_Categories(t *testing.T) {
	service := newTestService(t)

	addProduct(t, service, "Sambalpuri Saree", "Handloom", "stall-1", 3200)
	addProduct(t, service, "Bomkai Saree", "Handloom", "stall-2", 4100)
	addProduct(t, service, "Mango Pickle", "Food Products", "stall-3", 150)

	categories, err := service.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// Sorted by name, slugged, counted
	assert.Equal(t, "Food Products", categories[0].Name)
	assert.Equal(t, "food-products", categories[0].Slug)
	assert.Equal(t, 1, categories[0].ProductCount)
	assert.Equal(t, "Handloom", categories[1].Name)
	assert.Equal(t, 2, categories[1].ProductCount)
}

func TestService_Categories_EmptyCatalog(t *testing.T) {
	service := newTestService(t)

	categories, err := service.Categories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestService_Browse(t *testing.T) {
	service := newTestService(t)

	addProduct(t, service, "Sambalpuri Saree", "Handloom", "stall-1", 3200)
	addProduct(t, service, "Bomkai Saree", "Handloom", "stall-2", 4100)
	addProduct(t, service, "Mango Pickle", "Food Products", "stall-3", 150)

	products, meta, err := service.Browse(context.Background(), "handloom", pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 2, meta.Total)
}

func TestService_Browse_Pagination(t *testing.T) {
	service := newTestService(t)

	addProduct(t, service, "Sambalpuri Saree", "Handloom", "stall-1", 3200)
	addProduct(t, service, "Bomkai Saree", "Handloom", "stall-2", 4100)
	addProduct(t, service, "Kotpad Shawl", "Handloom", "stall-3", 2800)

	page, meta, err := service.Browse(context.Background(), "handloom", pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestService_Browse_UnknownSlug(t *testing.T) {
	service := newTestService(t)

	_, _, err := service.Browse(context.Background(), "electronics", pagination.Params{Page: 1, Limit: 20})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_StallProducts(t *testing.T) {
	service := newTestService(t)

	addProduct(t, service, "Sambalpuri Saree", "Handloom", "stall-1", 3200)
	addProduct(t, service, "Mango Pickle", "Food Products", "stall-2", 150)

	products, err := service.StallProducts(context.Background(), "stall-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sambalpuri Saree", products[0].Name)
}
