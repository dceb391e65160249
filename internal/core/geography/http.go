package geography

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/melabook/melabook/internal/platform/request"
	"github.com/melabook/melabook/internal/platform/respond"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/states", handler.listStates)
	router.Get("/districts", handler.listDistricts)
	router.Get("/blocks", handler.listBlocks)
	router.Get("/gram-panchayats", handler.listGramPanchayats)
}

func (handler *Handler) listStates(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.resolver.States())
}

func (handler *Handler) listDistricts(writer http.ResponseWriter, request *http.Request) {
	state := requestutil.Query(request, "state")
	respond.OK(writer, handler.resolver.DistrictsOf(state))
}

func (handler *Handler) listBlocks(writer http.ResponseWriter, request *http.Request) {
	state := requestutil.Query(request, "state")
	district := requestutil.Query(request, "district")
	respond.OK(writer, handler.resolver.BlocksOf(state, district))
}

func (handler *Handler) listGramPanchayats(writer http.ResponseWriter, request *http.Request) {
	state := requestutil.Query(request, "state")
	district := requestutil.Query(request, "district")
	block := requestutil.Query(request, "block")
	respond.OK(writer, handler.resolver.GramPanchayatsOf(state, district, block))
}
