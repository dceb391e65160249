// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

/*
Package docstore provides a schemaless document store over named collections.

Registrations, sales ledgers, catalog products, and exhibition settings are
free-form JSON documents whose shape evolves between exhibition seasons.
Rather than migrating relational tables for every form change, domain
aggregates are persisted as documents addressed by (collection, id).

Contract:

  - Get/Set: Point reads and wholesale writes by [Ref].
  - Insert: Adds a document with a generated time-ordered ID.
  - Patch: Shallow top-level merge into an existing document.
  - List/QueryEquals: Collection scans, optionally filtered by one field.

Two implementations exist: [PostgresStore] (JSONB-backed, production) and
[MemoryStore] (map-backed, tests).
*/
package docstore

import (
	"context"
	"encoding/json"
)

// Document is a single stored record: its ID plus raw JSON payload.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Decode unmarshals the document payload into the target structure.
func (d Document) Decode(target any) error {
	return json.Unmarshal(d.Data, target)
}

// Ref addresses a single document inside a named collection.
type Ref struct {
	Collection string
	ID         string
}

// Store is the persistence contract shared by all domain repositories.
//
// # Patch Semantics
//
// Patch performs a SHALLOW merge: each top-level key in partial replaces the
// corresponding key in the stored document wholesale. Nested objects are not
// merged recursively. Callers that need to replace a nested structure must
// send the full replacement value under its top-level key.
type Store interface {
	// Get fetches a single document. Returns apperr.NotFound if absent.
	Get(ctx context.Context, ref Ref) (Document, error)

	// Set writes the full document at ref, creating or replacing it.
	Set(ctx context.Context, ref Ref, doc any) error

	// Insert adds doc to the collection under a generated ID and returns that ID.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Patch merges partial into an existing document (shallow, top-level).
	// Returns apperr.NotFound if the document does not exist.
	Patch(ctx context.Context, ref Ref, partial map[string]any) error

	// List returns every document in the collection, ordered by ID.
	// Generated IDs are time-ordered, so this is also insertion order.
	List(ctx context.Context, collection string) ([]Document, error)

	// QueryEquals returns documents whose top-level field equals value,
	// compared as strings, ordered by ID.
	QueryEquals(ctx context.Context, collection, field, value string) ([]Document, error)
}
