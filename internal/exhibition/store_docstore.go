// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package exhibition

import (
	"context"
	"fmt"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/docstore"
)

const (
	// Collection holds the exhibitions.
	Collection = "exhibitions"

	// settingsCollection holds exactly one document at settingsDocID.
	settingsCollection = "settings"
	settingsDocID      = "exhibition"
)

// DocstoreRepository implements [Repository] over the shared document store.
type DocstoreRepository struct {
	store docstore.Store
}

// NewDocstoreRepository constructs an exhibition repository.
func NewDocstoreRepository(store docstore.Store) *DocstoreRepository {
	return &DocstoreRepository{store: store}
}

func (repository *DocstoreRepository) ListExhibitions(context context.Context) ([]Exhibition, error) {
	documents, err := repository.store.List(context, Collection)
	if err != nil {
		return nil, err
	}

	exhibitions := make([]Exhibition, 0, len(documents))
	for _, doc := range documents {
		var ex Exhibition
		if err := doc.Decode(&ex); err != nil {
			return nil, apperr.Internal(fmt.Errorf("exhibition: corrupt document %s: %w", doc.ID, err))
		}
		ex.ID = doc.ID
		exhibitions = append(exhibitions, ex)
	}

	return exhibitions, nil
}

func (repository *DocstoreRepository) CreateExhibition(context context.Context, ex Exhibition) (string, error) {
	ex.ID = ""
	return repository.store.Insert(context, Collection, ex)
}

func (repository *DocstoreRepository) GetSettings(context context.Context) (Settings, error) {
	doc, err := repository.store.Get(context, docstore.Ref{Collection: settingsCollection, ID: settingsDocID})
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := doc.Decode(&settings); err != nil {
		return Settings{}, apperr.Internal(fmt.Errorf("exhibition: corrupt settings document: %w", err))
	}

	return settings, nil
}

func (repository *DocstoreRepository) SetSettings(context context.Context, settings Settings) error {
	return repository.store.Set(context, docstore.Ref{Collection: settingsCollection, ID: settingsDocID}, settings)
}

// compile-time interface check
var _ Repository = (*DocstoreRepository)(nil)
