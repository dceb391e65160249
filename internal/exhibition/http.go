// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package exhibition

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/melabook/melabook/internal/platform/request"
	"github.com/melabook/melabook/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listExhibitions)
	router.Post("/", handler.createExhibition)
	router.Get("/settings", handler.getSettings)
	router.Put("/settings", handler.updateSettings)
}

func (handler *Handler) listExhibitions(writer http.ResponseWriter, request *http.Request) {
	exhibitions, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exhibitions)
}

func (handler *Handler) createExhibition(writer http.ResponseWriter, request *http.Request) {
	var ex Exhibition
	if err := requestutil.DecodeJSON(request, &ex); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), ex)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) getSettings(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.service.GetSettings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}

func (handler *Handler) updateSettings(writer http.ResponseWriter, request *http.Request) {
	var settings Settings
	if err := requestutil.DecodeJSON(request, &settings); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateSettings(request.Context(), settings)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}
