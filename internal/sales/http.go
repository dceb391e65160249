// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package sales

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
	router.Post("/", handler.recordSale)
	router.Get("/", handler.listHistory)
	router.Get("/{id}", handler.getEntry)
	router.Put("/{id}/products", handler.editEntry)
}

// entryResponse augments a ledger entry with its derived total.
type entryResponse struct {
	Entry
	TotalValue float64 `json:"totalValue"`
}

func toResponse(entry Entry) entryResponse {
	return entryResponse{Entry: entry, TotalValue: entry.TotalValue()}
}

func (handler *Handler) recordSale(writer http.ResponseWriter, request *http.Request) {
	var entry Entry
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.RecordSale(request.Context(), entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, toResponse(created))
}

func (handler *Handler) listHistory(writer http.ResponseWriter, request *http.Request) {
	stallID := requestutil.Query(request, "stallId")

	entries, err := handler.service.ListHistory(request.Context(), stallID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	responses := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	respond.OK(writer, responses)
}

func (handler *Handler) getEntry(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	entry, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toResponse(entry))
}

func (handler *Handler) editEntry(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var items []LineItem
	if err := requestutil.DecodeJSON(request, &items); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.EditEntry(request.Context(), id, items); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
