package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/studyquest-backend/internal/config"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

const (
	queryCacheSize = 1000
	apqCacheSize   = 100
)

// NewServer builds the gqlgen server for the schema. Introspection and the
// complexity limit follow cfg. Per-request dataloaders are installed by the
// caller's middleware chain.
func NewServer(res *resolver.Resolver, cfg config.GraphQLConfig, log *slog.Logger) *handler.Server {
	srv := handler.New(generated.NewExecutableSchema(generated.Config{Resolvers: res}))

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](queryCacheSize))

	if cfg.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}
	srv.Use(extension.AutomaticPersistedQuery{Cache: lru.New[string](apqCacheSize)})
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	srv.SetErrorPresenter(NewErrorPresenter(log))
	srv.SetRecoverFunc(func(ctx context.Context, v any) error {
		log.ErrorContext(ctx, "resolver panic",
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			slog.String("panic", fmt.Sprint(v)),
		)
		return errors.New("internal error")
	})

	return srv
}

// PlaygroundHandler serves the GraphQL playground pointed at endpoint.
func PlaygroundHandler(endpoint string) http.HandlerFunc {
	return playground.Handler("StudyQuest", endpoint)
}
