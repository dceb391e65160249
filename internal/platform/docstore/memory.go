// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/pkg/uuidv7"
)

// MemoryStore implements [Store] with in-process maps.
//
// It exists for service-layer tests: same contract, no database. All
// operations are safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]json.RawMessage),
	}
}

// Get fetches a single document by reference.
func (store *MemoryStore) Get(_ context.Context, ref Ref) (Document, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	docs, ok := store.collections[ref.Collection]
	if !ok {
		return Document{}, apperr.NotFound(ref.Collection)
	}

	data, ok := docs[ref.ID]
	if !ok {
		return Document{}, apperr.NotFound(ref.Collection)
	}

	return Document{ID: ref.ID, Data: data}, nil
}

// Set writes the full document at ref, creating or replacing it.
func (store *MemoryStore) Set(_ context.Context, ref Ref, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return apperr.Internal(fmt.Errorf("docstore: marshal %s: %w", ref.Collection, err))
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.ensureCollection(ref.Collection)[ref.ID] = payload
	return nil
}

// Insert adds doc under a generated UUIDv7 ID and returns that ID.
func (store *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("docstore: marshal %s: %w", collection, err))
	}

	id := uuidv7.New()

	store.mu.Lock()
	defer store.mu.Unlock()

	store.ensureCollection(collection)[id] = payload
	return id, nil
}

// Patch merges partial into an existing document (shallow, top-level).
func (store *MemoryStore) Patch(_ context.Context, ref Ref, partial map[string]any) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	docs, ok := store.collections[ref.Collection]
	if !ok {
		return apperr.NotFound(ref.Collection)
	}

	existing, ok := docs[ref.ID]
	if !ok {
		return apperr.NotFound(ref.Collection)
	}

	var merged map[string]any
	if err := json.Unmarshal(existing, &merged); err != nil {
		return apperr.Internal(fmt.Errorf("docstore: corrupt document %s/%s: %w", ref.Collection, ref.ID, err))
	}

	for key, value := range partial {
		merged[key] = value
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return apperr.Internal(fmt.Errorf("docstore: marshal patch %s: %w", ref.Collection, err))
	}

	docs[ref.ID] = payload
	return nil
}

// List returns every document in the collection, ordered by ID.
func (store *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	docs := store.collections[collection]

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var documents []Document
	for _, id := range ids {
		documents = append(documents, Document{ID: id, Data: docs[id]})
	}

	return documents, nil
}

// QueryEquals returns documents whose top-level field equals value.
func (store *MemoryStore) QueryEquals(ctx context.Context, collection, field, value string) ([]Document, error) {
	all, err := store.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	var documents []Document
	for _, doc := range all {
		var fields map[string]any
		if err := json.Unmarshal(doc.Data, &fields); err != nil {
			return nil, apperr.Internal(fmt.Errorf("docstore: corrupt document %s/%s: %w", collection, doc.ID, err))
		}

		if stringifyField(fields[field]) == value {
			documents = append(documents, doc)
		}
	}

	return documents, nil
}

// ensureCollection returns the named collection map, creating it if needed.
// Caller must hold the write lock.
func (store *MemoryStore) ensureCollection(collection string) map[string]json.RawMessage {
	docs, ok := store.collections[collection]
	if !ok {
		docs = make(map[string]json.RawMessage)
		store.collections[collection] = docs
	}
	return docs
}

// stringifyField mirrors Postgres data->>field text extraction for the
// JSON scalar types that appear in query fields.
func stringifyField(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// compile-time interface check
var _ Store = (*MemoryStore)(nil)
