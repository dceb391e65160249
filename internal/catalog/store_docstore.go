// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package catalog

import (
	"context"
	"fmt"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/docstore"
)

// Collection is the document collection holding catalog products.
const Collection = "products"

// DocstoreRepository implements [Repository] over the shared document store.
type DocstoreRepository struct {
	store docstore.Store
}

// NewDocstoreRepository constructs a catalog repository.
func NewDocstoreRepository(store docstore.Store) *DocstoreRepository {
	return &DocstoreRepository{store: store}
}

func (repository *DocstoreRepository) Create(context context.Context, product Product) (string, error) {
	product.ID = ""
	return repository.store.Insert(context, Collection, product)
}

func (repository *DocstoreRepository) Get(context context.Context, id string) (Product, error) {
	doc, err := repository.store.Get(context, docstore.Ref{Collection: Collection, ID: id})
	if err != nil {
		return Product{}, err
	}

	var product Product
	if err := doc.Decode(&product); err != nil {
		return Product{}, apperr.Internal(fmt.Errorf("catalog: corrupt document %s: %w", id, err))
	}

	product.ID = doc.ID
	return product, nil
}

func (repository *DocstoreRepository) List(context context.Context) ([]Product, error) {
	documents, err := repository.store.List(context, Collection)
	if err != nil {
		return nil, err
	}
	return decodeAll(documents)
}

func (repository *DocstoreRepository) ListByStall(context context.Context, stallID string) ([]Product, error) {
	documents, err := repository.store.QueryEquals(context, Collection, "stallId", stallID)
	if err != nil {
		return nil, err
	}
	return decodeAll(documents)
}

func decodeAll(documents []docstore.Document) ([]Product, error) {
	products := make([]Product, 0, len(documents))
	for _, doc := range documents {
		var product Product
		if err := doc.Decode(&product); err != nil {
			return nil, apperr.Internal(fmt.Errorf("catalog: corrupt document %s: %w", doc.ID, err))
		}
		product.ID = doc.ID
		products = append(products, product)
	}
	return products, nil
}

// compile-time interface check
var _ Repository = (*DocstoreRepository)(nil)
