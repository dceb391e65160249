// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package exhibition

import "context"

// Repository defines the data access contract for exhibitions and settings.
type Repository interface {
	// ListExhibitions returns every exhibition, oldest first.
	ListExhibitions(context context.Context) ([]Exhibition, error)

	// CreateExhibition persists a new exhibition and returns its generated ID.
	CreateExhibition(context context.Context, ex Exhibition) (string, error)

	// GetSettings fetches the kiosk settings document.
	// Returns apperr.NotFound if none has ever been written.
	GetSettings(context context.Context) (Settings, error)

	// SetSettings writes the kiosk settings document wholesale.
	SetSettings(context context.Context, settings Settings) error
}
