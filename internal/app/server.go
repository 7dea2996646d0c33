package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyquest-backend/internal/auth"
	"github.com/heartmarshall/studyquest-backend/internal/config"
	gqlpkg "github.com/heartmarshall/studyquest-backend/internal/transport/graphql"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/studyquest-backend/internal/transport/middleware"
	"github.com/heartmarshall/studyquest-backend/internal/transport/rest"
)

// NewHandler mounts GraphQL at /query next to the REST health and import
// routes, all behind the middleware chain: Recovery, RequestID, Logger,
// CORS, Auth, then rate limiting. A nil limiter disables rate limiting.
func NewHandler(
	cfg *config.Config,
	pool *pgxpool.Pool,
	svcs *Services,
	verifier *auth.JWTManager,
	limiter *middleware.RateLimiter,
	clock clockwork.Clock,
	logger *slog.Logger,
) http.Handler {
	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion(), clock),
		Cards:  rest.NewCardHandler(svcs.Study, logger),
	})

	res := resolver.NewResolver(logger, svcs.Study, svcs.Tasks, svcs.Game)
	gqlSrv := gqlpkg.NewServer(res, cfg.GraphQL, logger)
	graphqlHandler := dataloader.Middleware(&dataloader.Repos{Flashcard: svcs.Cards})(gqlSrv)

	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("GET /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", gqlpkg.PlaygroundHandler("/query"))
	}

	var limit middleware.Middleware
	if limiter != nil {
		limit = limiter.Limit(cfg.Server.RateLimit)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier),
		limit,
	)(mux)
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
