package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/melabook/melabook/internal/platform/request"
	"github.com/melabook/melabook/internal/platform/respond"
)

type Handler struct {
	index *Index
}

func NewHandler(index *Index) *Handler {
	return &Handler{index: index}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/categories", handler.listCategories)
	router.Get("/products", handler.listProducts)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.index.Categories())
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.Query(request, "category")
	respond.OK(writer, handler.index.ProductsOf(category))
}
