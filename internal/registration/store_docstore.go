// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package registration

import (
	"context"
	"fmt"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/docstore"
)

// Collection is the document collection holding stall registrations.
const Collection = "registrations"

// DocstoreRepository implements [Repository] over the shared document store.
type DocstoreRepository struct {
	store docstore.Store
}

// NewDocstoreRepository constructs a registration repository.
func NewDocstoreRepository(store docstore.Store) *DocstoreRepository {
	return &DocstoreRepository{store: store}
}

func (repository *DocstoreRepository) Create(context context.Context, reg Registration) (string, error) {
	// The ID lives in the document path, not the payload
	reg.ID = ""
	return repository.store.Insert(context, Collection, reg)
}

func (repository *DocstoreRepository) Get(context context.Context, id string) (Registration, error) {
	doc, err := repository.store.Get(context, docstore.Ref{Collection: Collection, ID: id})
	if err != nil {
		return Registration{}, err
	}

	var reg Registration
	if err := doc.Decode(&reg); err != nil {
		return Registration{}, apperr.Internal(fmt.Errorf("registration: corrupt document %s: %w", id, err))
	}

	reg.ID = doc.ID
	return reg, nil
}

func (repository *DocstoreRepository) Patch(context context.Context, id string, partial map[string]any) error {
	return repository.store.Patch(context, docstore.Ref{Collection: Collection, ID: id}, partial)
}

func (repository *DocstoreRepository) ListByExhibition(context context.Context, exhibitionID string) ([]Registration, error) {
	documents, err := repository.store.QueryEquals(context, Collection, "exhibitionId", exhibitionID)
	if err != nil {
		return nil, err
	}

	registrations := make([]Registration, 0, len(documents))
	for _, doc := range documents {
		var reg Registration
		if err := doc.Decode(&reg); err != nil {
			return nil, apperr.Internal(fmt.Errorf("registration: corrupt document %s: %w", doc.ID, err))
		}
		reg.ID = doc.ID
		registrations = append(registrations, reg)
	}

	return registrations, nil
}

// compile-time interface check
var _ Repository = (*DocstoreRepository)(nil)
