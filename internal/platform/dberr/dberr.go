// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

// Package dberr translates low-level database errors into application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/melabook/melabook/internal/platform/apperr"
)

/*
Wrap converts a raw database error into a standardized *apperr.AppError.

Parameters:
  - err: The raw error returned by the database driver
  - resource: Human-readable name of the entity involved (e.g. "registration")

Returns:
  - error: apperr.NotFound for missing rows, apperr.Internal otherwise
*/
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	return apperr.Internal(fmt.Errorf("%s: %w", resource, err))
}
