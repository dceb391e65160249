// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/dberr"
	"github.com/melabook/melabook/pkg/uuidv7"
)

// PostgresStore implements [Store] on a single JSONB-backed documents table.
//
// # Schema
//
// documents(collection text, id text, data jsonb, created_at, updated_at)
// with PRIMARY KEY (collection, id). Expression indexes on the hot query
// fields (exhibitionId, stallId, category) keep QueryEquals fast.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a document store backed by the given connection pool.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Get fetches a single document by reference.
func (store *PostgresStore) Get(ctx context.Context, ref Ref) (Document, error) {
	const query = `
		SELECT data
		FROM documents
		WHERE collection = $1 AND id = $2`

	var data json.RawMessage
	err := store.pool.QueryRow(ctx, query, ref.Collection, ref.ID).Scan(&data)
	if err != nil {
		return Document{}, dberr.Wrap(err, ref.Collection)
	}

	return Document{ID: ref.ID, Data: data}, nil
}

// Set writes the full document at ref, creating or replacing it.
func (store *PostgresStore) Set(ctx context.Context, ref Ref, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return apperr.Internal(fmt.Errorf("docstore: marshal %s: %w", ref.Collection, err))
	}

	const query = `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	if _, err := store.pool.Exec(ctx, query, ref.Collection, ref.ID, payload); err != nil {
		return dberr.Wrap(err, ref.Collection)
	}

	return nil
}

// Insert adds doc under a generated UUIDv7 ID and returns that ID.
func (store *PostgresStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("docstore: marshal %s: %w", collection, err))
	}

	id := uuidv7.New()

	const query = `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)`

	if _, err := store.pool.Exec(ctx, query, collection, id, payload); err != nil {
		return "", dberr.Wrap(err, collection)
	}

	return id, nil
}

// Patch merges partial into an existing document using JSONB concatenation.
// The || operator gives exactly the shallow top-level merge the contract requires.
func (store *PostgresStore) Patch(ctx context.Context, ref Ref, partial map[string]any) error {
	payload, err := json.Marshal(partial)
	if err != nil {
		return apperr.Internal(fmt.Errorf("docstore: marshal patch %s: %w", ref.Collection, err))
	}

	const query = `
		UPDATE documents
		SET data = data || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2`

	tag, err := store.pool.Exec(ctx, query, ref.Collection, ref.ID, payload)
	if err != nil {
		return dberr.Wrap(err, ref.Collection)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(ref.Collection)
	}

	return nil
}

// List returns every document in the collection, ordered by ID.
func (store *PostgresStore) List(ctx context.Context, collection string) ([]Document, error) {
	const query = `
		SELECT id, data
		FROM documents
		WHERE collection = $1
		ORDER BY id`

	rows, err := store.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, dberr.Wrap(err, collection)
	}
	defer rows.Close()

	var documents []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, dberr.Wrap(err, collection)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, collection)
	}

	return documents, nil
}

// QueryEquals returns documents whose top-level field equals value.
func (store *PostgresStore) QueryEquals(ctx context.Context, collection, field, value string) ([]Document, error) {
	const query = `
		SELECT id, data
		FROM documents
		WHERE collection = $1 AND data->>$2 = $3
		ORDER BY id`

	rows, err := store.pool.Query(ctx, query, collection, field, value)
	if err != nil {
		return nil, dberr.Wrap(err, collection)
	}
	defer rows.Close()

	var documents []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, dberr.Wrap(err, collection)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, collection)
	}

	return documents, nil
}

// compile-time interface check
var _ Store = (*PostgresStore)(nil)
