package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Cards  *CardHandler
}

// NewRouter registers the REST routes: health checks at the root and the
// file import under /api/v1. The rest of the API is served by GraphQL.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/cards/import", h.Cards.Import)

	return mux
}
