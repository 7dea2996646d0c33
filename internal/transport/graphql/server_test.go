package graphql

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/config"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/resolver"
)

type gqlResponse struct {
	Data   map[string]any `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func postQuery(t *testing.T, h http.Handler, query string) (int, gqlResponse) {
	t.Helper()

	body, err := json.Marshal(map[string]any{"query": query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func newTestServer(cfg config.GraphQLConfig) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(resolver.NewResolver(log, nil, nil, nil), cfg, log)
}

func TestServer_AnonymousRequestIsUnauthenticated(t *testing.T) {
	t.Parallel()

	srv := newTestServer(config.GraphQLConfig{ComplexityLimit: 300})
	_, resp := postQuery(t, srv, `{ gameProfile { totalPoints level } }`)

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "UNAUTHENTICATED", resp.Errors[0].Extensions["code"])
	assert.Nil(t, resp.Data)
}

func TestServer_ParseFailureKeepsGQLGenCode(t *testing.T) {
	t.Parallel()

	srv := newTestServer(config.GraphQLConfig{})
	status, resp := postQuery(t, srv, `{ gameProfile { `)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "GRAPHQL_PARSE_FAILED", resp.Errors[0].Extensions["code"])
}

func TestServer_UnknownEnumRejected(t *testing.T) {
	t.Parallel()

	srv := newTestServer(config.GraphQLConfig{})
	_, resp := postQuery(t, srv, `mutation { answerCard(sessionId: "00000000-0000-0000-0000-000000000001", quality: PERFECT) { skipped } }`)

	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "GRAPHQL_VALIDATION_FAILED", resp.Errors[0].Extensions["code"])
}

func TestServer_ComplexityLimit(t *testing.T) {
	t.Parallel()

	srv := newTestServer(config.GraphQLConfig{ComplexityLimit: 2})
	_, resp := postQuery(t, srv, `{ gameProfile { totalPoints level updatedAt combo { count multiplier } } }`)

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "COMPLEXITY_LIMIT_EXCEEDED", resp.Errors[0].Extensions["code"])
}

func TestServer_Introspection(t *testing.T) {
	t.Parallel()

	const query = `{ __schema { queryType { name } } }`

	_, resp := postQuery(t, newTestServer(config.GraphQLConfig{IntrospectionEnabled: true}), query)
	require.Empty(t, resp.Errors)
	schema, ok := resp.Data["__schema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "Query"}, schema["queryType"])

	_, resp = postQuery(t, newTestServer(config.GraphQLConfig{}), query)
	assert.NotEmpty(t, resp.Errors)
}

func TestPlaygroundHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	PlaygroundHandler("/query").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playground", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "StudyQuest")
}
