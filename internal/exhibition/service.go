// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package exhibition

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/validate"
	"github.com/melabook/melabook/pkg/pointer"
)

// Service orchestrates exhibition lifecycle and kiosk settings.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new exhibition [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// DefaultSettings is what the kiosk renders before anyone has saved settings.
func DefaultSettings() Settings {
	return Settings{
		Title:           "Melabook",
		Subtitle:        pointer.To("Exhibition Stall Directory"),
		Year:            time.Now().Year(),
		MarqueeMessages: []string{"Welcome to the exhibition"},
		MarqueeSpeed:    pointer.To(50),
		MarqueeColor:    pointer.To("#b91c1c"),
	}
}

// List returns every exhibition, oldest first.
func (service *Service) List(context context.Context) ([]Exhibition, error) {
	return service.repo.ListExhibitions(context)
}

// Create validates and persists a new exhibition.
// Names are unique across seasons: "Adivasi Mela 2024" can exist only once.
func (service *Service) Create(context context.Context, ex Exhibition) (Exhibition, error) {
	ex.Name = strings.TrimSpace(ex.Name)

	v := &validate.Validator{}
	v.Required("name", ex.Name).MaxLen("name", ex.Name, 120)
	v.Positive("year", ex.Year)
	if err := v.Err(); err != nil {
		return Exhibition{}, err
	}

	existing, err := service.repo.ListExhibitions(context)
	if err != nil {
		return Exhibition{}, err
	}
	for _, other := range existing {
		if strings.EqualFold(other.Name, ex.Name) {
			return Exhibition{}, apperr.Conflict("An exhibition with this name already exists")
		}
	}

	id, err := service.repo.CreateExhibition(context, ex)
	if err != nil {
		return Exhibition{}, err
	}

	ex.ID = id
	service.logger.InfoContext(context, "exhibition_created",
		slog.String("exhibition_id", id),
		slog.String("name", ex.Name),
	)

	return ex, nil
}

// GetSettings returns the kiosk settings, falling back to defaults when no
// settings document has been written yet.
func (service *Service) GetSettings(context context.Context) (Settings, error) {
	settings, err := service.repo.GetSettings(context)
	if err != nil {
		if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}
	return settings, nil
}

// UpdateSettings validates and writes the kiosk settings wholesale.
func (service *Service) UpdateSettings(context context.Context, settings Settings) (Settings, error) {
	settings.Title = strings.TrimSpace(settings.Title)

	v := &validate.Validator{}
	v.Required("title", settings.Title)
	v.Positive("year", settings.Year)
	if settings.MarqueeSpeed != nil {
		v.Positive("marqueeSpeed", *settings.MarqueeSpeed)
	}
	if err := v.Err(); err != nil {
		return Settings{}, err
	}

	if err := service.repo.SetSettings(context, settings); err != nil {
		return Settings{}, err
	}

	service.logger.InfoContext(context, "settings_updated",
		slog.String("title", settings.Title),
		slog.Int("year", settings.Year),
	)

	return settings, nil
}
