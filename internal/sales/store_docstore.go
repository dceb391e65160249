// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package sales

import (
	"context"
	"fmt"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/docstore"
)

// Collection is the document collection holding the daily sales ledger.
const Collection = "dailySales"

// DocstoreRepository implements [Repository] over the shared document store.
type DocstoreRepository struct {
	store docstore.Store
}

// NewDocstoreRepository constructs a sales ledger repository.
func NewDocstoreRepository(store docstore.Store) *DocstoreRepository {
	return &DocstoreRepository{store: store}
}

func (repository *DocstoreRepository) Create(context context.Context, entry Entry) (string, error) {
	entry.ID = ""
	return repository.store.Insert(context, Collection, entry)
}

func (repository *DocstoreRepository) Get(context context.Context, id string) (Entry, error) {
	doc, err := repository.store.Get(context, docstore.Ref{Collection: Collection, ID: id})
	if err != nil {
		return Entry{}, err
	}

	var entry Entry
	if err := doc.Decode(&entry); err != nil {
		return Entry{}, apperr.Internal(fmt.Errorf("sales: corrupt document %s: %w", id, err))
	}

	entry.ID = doc.ID
	return entry, nil
}

func (repository *DocstoreRepository) ListByStall(context context.Context, stallID string) ([]Entry, error) {
	documents, err := repository.store.QueryEquals(context, Collection, "stallId", stallID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(documents))
	for _, doc := range documents {
		var entry Entry
		if err := doc.Decode(&entry); err != nil {
			return nil, apperr.Internal(fmt.Errorf("sales: corrupt document %s: %w", doc.ID, err))
		}
		entry.ID = doc.ID
		entries = append(entries, entry)
	}

	return entries, nil
}

func (repository *DocstoreRepository) ReplaceLineItems(context context.Context, id string, items []LineItem) error {
	return repository.store.Patch(context, docstore.Ref{Collection: Collection, ID: id}, map[string]any{
		"products": items,
	})
}

// compile-time interface check
var _ Repository = (*DocstoreRepository)(nil)
