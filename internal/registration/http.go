// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package registration

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
	router.Post("/", handler.createRegistration)
	router.Get("/", handler.listRegistrations)
	router.Get("/{id}", handler.getRegistration)
	router.Patch("/{id}", handler.updateRegistration)
}

func (handler *Handler) createRegistration(writer http.ResponseWriter, request *http.Request) {
	var reg Registration
	if err := requestutil.DecodeJSON(request, &reg); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), reg)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) listRegistrations(writer http.ResponseWriter, request *http.Request) {
	exhibitionID := requestutil.Query(request, "exhibitionId")

	registrations, err := handler.service.ListByExhibition(request.Context(), exhibitionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, registrations)
}

func (handler *Handler) getRegistration(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	reg, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reg)
}

func (handler *Handler) updateRegistration(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var partial map[string]any
	if err := requestutil.DecodeJSON(request, &partial); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), id, partial); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
