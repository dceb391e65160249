// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/melabook/melabook/internal/platform/request"
	"github.com/melabook/melabook/internal/platform/respond"
	"github.com/melabook/melabook/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/products", handler.addProduct)
	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{slug}/products", handler.browseCategory)
	router.Get("/stalls/{stallId}/products", handler.listStallProducts)
}

func (handler *Handler) addProduct(writer http.ResponseWriter, request *http.Request) {
	var product Product
	if err := requestutil.DecodeJSON(request, &product); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.AddProduct(request.Context(), product)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.Categories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) browseCategory(writer http.ResponseWriter, request *http.Request) {
	categorySlug := requestutil.Param(request, "slug")
	params := pagination.FromRequest(request)

	products, meta, err := handler.service.Browse(request.Context(), categorySlug, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, products, meta)
}

func (handler *Handler) listStallProducts(writer http.ResponseWriter, request *http.Request) {
	stallID := requestutil.ID(request, "stallId")

	products, err := handler.service.StallProducts(request.Context(), stallID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, products)
}
