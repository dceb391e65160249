// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/docstore"
)

type stallDoc struct {
	ExhibitionID string `json:"exhibitionId"`
	StallNumber  string `json:"stallNumber"`
	District     string `json:"district"`
}

/*
TestMemoryStore_InsertAndGet verifies the basic insert/read round-trip.
*/
func TestMemoryStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()

	id, err := store.Insert(ctx, "registrations", stallDoc{
		ExhibitionID: "mela-2024",
		StallNumber:  "A-101",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := store.Get(ctx, docstore.Ref{Collection: "registrations", ID: id})
	require.NoError(t, err)

	var decoded stallDoc
	require.NoError(t, doc.Decode(&decoded))
	assert.Equal(t, "A-101", decoded.StallNumber)
}

/*
TestMemoryStore_GetMissing verifies that missing documents map to NOT_FOUND.
*/
func TestMemoryStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()

	_, err := store.Get(ctx, docstore.Ref{Collection: "registrations", ID: "nope"})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

/*
TestMemoryStore_SetUpsert verifies Set creates then replaces a document.
*/
func TestMemoryStore_SetUpsert(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	ref := docstore.Ref{Collection: "settings", ID: "exhibition"}

	// 1. Create via Set (no prior Insert)
	require.NoError(t, store.Set(ctx, ref, map[string]any{"title": "Pallishree Mela"}))

	// 2. Replace wholesale
	require.NoError(t, store.Set(ctx, ref, map[string]any{"title": "Adivasi Mela", "year": 2024}))

	doc, err := store.Get(ctx, ref)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, doc.Decode(&decoded))
	assert.Equal(t, "Adivasi Mela", decoded["title"])
	assert.EqualValues(t, 2024, decoded["year"])
}

/*
TestMemoryStore_Patch verifies the shallow top-level merge semantics.
*/
func TestMemoryStore_Patch(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()

	id, err := store.Insert(ctx, "registrations", stallDoc{
		ExhibitionID: "mela-2024",
		StallNumber:  "A-101",
		District:     "Khordha",
	})
	require.NoError(t, err)

	ref := docstore.Ref{Collection: "registrations", ID: id}
	require.NoError(t, store.Patch(ctx, ref, map[string]any{"district": "Cuttack"}))

	doc, err := store.Get(ctx, ref)
	require.NoError(t, err)

	var decoded stallDoc
	require.NoError(t, doc.Decode(&decoded))

	// Patched key replaced, untouched keys preserved
	assert.Equal(t, "Cuttack", decoded.District)
	assert.Equal(t, "A-101", decoded.StallNumber)
}

/*
TestMemoryStore_PatchMissing verifies Patch refuses to create documents.
*/
func TestMemoryStore_PatchMissing(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()

	err := store.Patch(ctx, docstore.Ref{Collection: "registrations", ID: "ghost"}, map[string]any{"x": 1})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

/*
TestMemoryStore_QueryEquals verifies field equality filtering.
*/
func TestMemoryStore_QueryEquals(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()

	_, err := store.Insert(ctx, "registrations", stallDoc{ExhibitionID: "mela-2024", StallNumber: "A-101"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "registrations", stallDoc{ExhibitionID: "mela-2024", StallNumber: "A-102"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "registrations", stallDoc{ExhibitionID: "mela-2023", StallNumber: "B-001"})
	require.NoError(t, err)

	matched, err := store.QueryEquals(ctx, "registrations", "exhibitionId", "mela-2024")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	empty, err := store.QueryEquals(ctx, "registrations", "exhibitionId", "mela-2020")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

/*
TestMemoryStore_ListOrdered verifies List returns documents in ID order,
which for generated UUIDv7 IDs is insertion order.
*/
func TestMemoryStore_ListOrdered(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()

	first, err := store.Insert(ctx, "products", map[string]any{"name": "Sambalpuri Saree"})
	require.NoError(t, err)
	second, err := store.Insert(ctx, "products", map[string]any{"name": "Dokra Figurine"})
	require.NoError(t, err)

	documents, err := store.List(ctx, "products")
	require.NoError(t, err)
	require.Len(t, documents, 2)

	assert.Equal(t, first, documents[0].ID)
	assert.Equal(t, second, documents[1].ID)
}
