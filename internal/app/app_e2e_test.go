//go:build e2e

package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/studyquest-backend/internal/app"
	"github.com/heartmarshall/studyquest-backend/internal/auth"
	"github.com/heartmarshall/studyquest-backend/internal/config"
	"github.com/heartmarshall/studyquest-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// Test server
// ---------------------------------------------------------------------------

// testLogWriter routes slog output through t.Log.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

type testServer struct {
	URL    string
	Client *http.Client
	jwt    *auth.JWTManager
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV_FILE", "")
	t.Setenv("DATABASE_DSN", testhelper.DSN(t))
	t.Setenv("AUTH_JWT_SECRET", "test-secret-at-least-32-chars-long!!")
	t.Setenv("AUTH_JWT_ISSUER", "test-issuer")
	t.Setenv("JOBS_COMBO_SWEEP_ENABLED", "false")
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	clock := clockwork.NewRealClock()

	svcs := app.NewServices(pool, cfg, logger, clock)
	t.Cleanup(svcs.Game.Shutdown)

	limiter := middleware.NewRateLimiter(clock, time.Minute)
	t.Cleanup(limiter.Stop)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	srv := httptest.NewServer(app.NewHandler(cfg, pool, svcs, jwtMgr, limiter, clock, logger))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), jwt: jwtMgr}
}

// token mints an access token for a fresh user.
func (ts *testServer) token(t *testing.T) string {
	t.Helper()
	tok, err := ts.jwt.Issue(uuid.New())
	require.NoError(t, err)
	return tok
}

// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, gqlResponse) {
	t.Helper()

	raw, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out gqlResponse
	if resp.StatusCode != http.StatusUnauthorized {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// mustQuery runs query, requires it to succeed and decodes data into out.
func (ts *testServer) mustQuery(t *testing.T, query string, variables map[string]any, token string, out any) {
	t.Helper()

	status, resp := ts.graphqlQuery(t, query, variables, token)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, resp.Errors, "query failed: %s", query)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// errorCode runs query and returns the code of its first error.
func (ts *testServer) errorCode(t *testing.T, query string, variables map[string]any, token string) string {
	t.Helper()

	_, resp := ts.graphqlQuery(t, query, variables, token)
	require.NotEmpty(t, resp.Errors, "expected an error from: %s", query)
	code, _ := resp.Errors[0].Extensions["code"].(string)
	return code
}

// ---------------------------------------------------------------------------
// Response shapes
// ---------------------------------------------------------------------------

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

type cardJSON struct {
	ID           string  `json:"id"`
	Front        string  `json:"front"`
	ReviewCount  int     `json:"reviewCount"`
	CorrectCount int     `json:"correctCount"`
	MasteryLevel int     `json:"masteryLevel"`
	EaseFactor   float64 `json:"easeFactor"`
	IntervalDays int     `json:"intervalDays"`
	Repetitions  int     `json:"repetitions"`
}

type sessionJSON struct {
	ID            string     `json:"id"`
	Phase         string     `json:"phase"`
	CardIDs       []string   `json:"cardIds"`
	Remaining     int        `json:"remaining"`
	CurrentCardID *string    `json:"currentCardId"`
	Reviewed      int        `json:"reviewed"`
	Correct       int        `json:"correct"`
	CurrentCard   *cardJSON  `json:"currentCard"`
	Cards         []cardJSON `json:"cards"`
}

type profileJSON struct {
	TotalPoints int `json:"totalPoints"`
	Level       int `json:"level"`
	Combo       struct {
		Count      int     `json:"count"`
		Multiplier float64 `json:"multiplier"`
		IsActive   bool    `json:"isActive"`
	} `json:"combo"`
}

type achievementJSON struct {
	ID        string `json:"id"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
}

type completionJSON struct {
	Task struct {
		ID        string `json:"id"`
		Completed bool   `json:"completed"`
	} `json:"task"`
	Points       int               `json:"points"`
	Profile      profileJSON       `json:"profile"`
	Achievements []achievementJSON `json:"achievements"`
}

const sessionFields = `id phase cardIds remaining currentCardId reviewed correct`

// ---------------------------------------------------------------------------
// Flows
// ---------------------------------------------------------------------------

func TestE2E_Unauthenticated(t *testing.T) {
	ts := setupTestServer(t)

	const query = `{ cards { total } }`
	assert.Equal(t, "UNAUTHENTICATED", ts.errorCode(t, query, nil, ""))

	status, _ := ts.graphqlQuery(t, query, nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)

	resp, err := ts.Client.Get(ts.URL + "/live")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestE2E_StudyFlow(t *testing.T) {
	ts := setupTestServer(t)
	tok := ts.token(t)

	for i := range 3 {
		var created struct {
			CreateCard cardJSON `json:"createCard"`
		}
		ts.mustQuery(t, `mutation($input: CreateCardInput!) { createCard(input: $input) { id front } }`,
			map[string]any{"input": map[string]any{
				"front":   fmt.Sprintf("front %d", i),
				"back":    fmt.Sprintf("back %d", i),
				"subject": "go",
			}}, tok, &created)
		require.NotEmpty(t, created.CreateCard.ID)
	}

	var list struct {
		Cards struct {
			Total int `json:"total"`
		} `json:"cards"`
	}
	ts.mustQuery(t, `{ cards(filter: {subject: "go"}) { total } }`, nil, tok, &list)
	assert.Equal(t, 3, list.Cards.Total)

	// No session yet.
	var active struct {
		ActiveSession *sessionJSON `json:"activeSession"`
	}
	ts.mustQuery(t, `{ activeSession { id } }`, nil, tok, &active)
	assert.Nil(t, active.ActiveSession)

	var started struct {
		StartSession sessionJSON `json:"startSession"`
	}
	ts.mustQuery(t, `mutation { startSession(input: {mode: LEARN}) { `+sessionFields+` currentCard { id } cards { id front } } }`,
		nil, tok, &started)
	session := started.StartSession
	require.Len(t, session.CardIDs, 3)
	require.Len(t, session.Cards, 3)
	assert.Equal(t, "SHOWING_FRONT", session.Phase)
	require.NotNil(t, session.CurrentCard)
	assert.Equal(t, session.CardIDs[0], session.CurrentCard.ID)

	const answer = `mutation($id: UUID!, $q: Quality!) {
		answerCard(sessionId: $id, quality: $q) {
			skipped
			card { reviewCount correctCount repetitions intervalDays }
			session { ` + sessionFields + ` }
		}
	}`

	// Answering before reveal is rejected.
	assert.Equal(t, "CONFLICT", ts.errorCode(t, answer, map[string]any{"id": session.ID, "q": "GOOD"}, tok))

	for i := range 3 {
		var revealed struct {
			RevealCard sessionJSON `json:"revealCard"`
		}
		ts.mustQuery(t, `mutation($id: UUID!) { revealCard(sessionId: $id) { phase } }`,
			map[string]any{"id": session.ID}, tok, &revealed)
		assert.Equal(t, "SHOWING_BACK", revealed.RevealCard.Phase)

		var answered struct {
			AnswerCard struct {
				Skipped bool        `json:"skipped"`
				Card    cardJSON    `json:"card"`
				Session sessionJSON `json:"session"`
			} `json:"answerCard"`
		}
		ts.mustQuery(t, answer, map[string]any{"id": session.ID, "q": "GOOD"}, tok, &answered)

		res := answered.AnswerCard
		assert.False(t, res.Skipped)
		assert.Equal(t, 1, res.Card.ReviewCount)
		assert.Equal(t, 1, res.Card.CorrectCount)
		assert.Equal(t, 1, res.Card.Repetitions)
		assert.Equal(t, 1, res.Card.IntervalDays)
		assert.Equal(t, i+1, res.Session.Reviewed)
		session = res.Session
	}

	assert.Equal(t, "COMPLETE", session.Phase)
	assert.Equal(t, 3, session.Correct)
	assert.Equal(t, 0, session.Remaining)
	assert.Nil(t, session.CurrentCardID)

	ts.mustQuery(t, `{ activeSession { id } }`, nil, tok, &active)
	assert.Nil(t, active.ActiveSession)

	// Reviewed cards are no longer new, so learn mode has nothing due today.
	var queue struct {
		StudyQueue []cardJSON `json:"studyQueue"`
	}
	ts.mustQuery(t, `{ studyQueue(input: {mode: LEARN}) { id } }`, nil, tok, &queue)
	assert.Empty(t, queue.StudyQueue)
}

func TestE2E_DeletedCardIsSkipped(t *testing.T) {
	ts := setupTestServer(t)
	tok := ts.token(t)

	for i := range 2 {
		var created struct {
			CreateCard cardJSON `json:"createCard"`
		}
		ts.mustQuery(t, `mutation($input: CreateCardInput!) { createCard(input: $input) { id } }`,
			map[string]any{"input": map[string]any{"front": fmt.Sprintf("f%d", i), "back": "b"}}, tok, &created)
	}

	var started struct {
		StartSession sessionJSON `json:"startSession"`
	}
	ts.mustQuery(t, `mutation { startSession(input: {mode: LEARN}) { id cardIds } }`, nil, tok, &started)
	session := started.StartSession
	require.Len(t, session.CardIDs, 2)

	var deleted struct {
		DeleteCard bool `json:"deleteCard"`
	}
	ts.mustQuery(t, `mutation($id: UUID!) { deleteCard(id: $id) }`, map[string]any{"id": session.CardIDs[0]}, tok, &deleted)
	require.True(t, deleted.DeleteCard)

	ts.mustQuery(t, `mutation($id: UUID!) { revealCard(sessionId: $id) { phase } }`,
		map[string]any{"id": session.ID}, tok, &struct{}{})

	var answered struct {
		AnswerCard struct {
			Skipped bool        `json:"skipped"`
			Card    *cardJSON   `json:"card"`
			Session sessionJSON `json:"session"`
		} `json:"answerCard"`
	}
	ts.mustQuery(t, `mutation($id: UUID!) { answerCard(sessionId: $id, quality: GOOD) { skipped card { id } session { `+sessionFields+` cards { id } } } }`,
		map[string]any{"id": session.ID}, tok, &answered)

	res := answered.AnswerCard
	assert.True(t, res.Skipped)
	assert.Nil(t, res.Card)
	assert.Equal(t, 0, res.Session.Reviewed)
	assert.Equal(t, 1, res.Session.Remaining)
	assert.Len(t, res.Session.Cards, 1, "deleted card is left out of the session cards")
}

func TestE2E_AbandonSession(t *testing.T) {
	ts := setupTestServer(t)
	tok := ts.token(t)

	ts.mustQuery(t, `mutation { createCard(input: {front: "f", back: "b"}) { id } }`, nil, tok, &struct{}{})

	const start = `mutation { startSession(input: {mode: LEARN}) { id } }`
	var first, replacement struct {
		StartSession sessionJSON `json:"startSession"`
	}
	ts.mustQuery(t, start, nil, tok, &first)

	// Starting again replaces the unfinished session.
	ts.mustQuery(t, start, nil, tok, &replacement)
	assert.NotEqual(t, first.StartSession.ID, replacement.StartSession.ID)

	const get = `query($id: UUID!) { session(id: $id) { phase } }`
	var got struct {
		Session sessionJSON `json:"session"`
	}
	ts.mustQuery(t, get, map[string]any{"id": first.StartSession.ID}, tok, &got)
	assert.Equal(t, "ABANDONED", got.Session.Phase)

	var abandoned struct {
		AbandonSession bool `json:"abandonSession"`
	}
	ts.mustQuery(t, `mutation { abandonSession }`, nil, tok, &abandoned)
	assert.True(t, abandoned.AbandonSession)

	var active struct {
		ActiveSession *sessionJSON `json:"activeSession"`
	}
	ts.mustQuery(t, `{ activeSession { id } }`, nil, tok, &active)
	assert.Nil(t, active.ActiveSession)

	// Sessions are private to their owner.
	assert.Equal(t, "NOT_FOUND", ts.errorCode(t, get, map[string]any{"id": first.StartSession.ID}, ts.token(t)))
}

func TestE2E_TaskCompletionScoring(t *testing.T) {
	ts := setupTestServer(t)
	tok := ts.token(t)

	var profile struct {
		GameProfile profileJSON `json:"gameProfile"`
	}
	ts.mustQuery(t, `{ gameProfile { totalPoints level combo { count multiplier isActive } } }`, nil, tok, &profile)
	assert.Equal(t, 0, profile.GameProfile.TotalPoints)
	assert.Equal(t, 1, profile.GameProfile.Level)

	ids := make([]string, 2)
	for i, difficulty := range []string{"MEDIUM", "HARD"} {
		var created struct {
			CreateTask struct {
				ID string `json:"id"`
			} `json:"createTask"`
		}
		ts.mustQuery(t, `mutation($input: CreateTaskInput!) { createTask(input: $input) { id } }`,
			map[string]any{"input": map[string]any{"title": "task " + difficulty, "difficulty": difficulty}}, tok, &created)
		ids[i] = created.CreateTask.ID
	}

	const complete = `mutation($id: UUID!) {
		completeTask(id: $id) {
			task { id completed }
			points
			profile { totalPoints level combo { count multiplier isActive } }
			achievements { id progress completed }
		}
	}`

	var first struct {
		CompleteTask completionJSON `json:"completeTask"`
	}
	ts.mustQuery(t, complete, map[string]any{"id": ids[0]}, tok, &first)
	assert.True(t, first.CompleteTask.Task.Completed)
	assert.Equal(t, 20, first.CompleteTask.Points)
	assert.Equal(t, 1, first.CompleteTask.Profile.Combo.Count)
	assert.True(t, first.CompleteTask.Profile.Combo.IsActive)

	// Second completion inside the window gets the 1.2x multiplier.
	var second struct {
		CompleteTask completionJSON `json:"completeTask"`
	}
	ts.mustQuery(t, complete, map[string]any{"id": ids[1]}, tok, &second)
	assert.Equal(t, 36, second.CompleteTask.Points)
	assert.Equal(t, 2, second.CompleteTask.Profile.Combo.Count)
	assert.Equal(t, 56, second.CompleteTask.Profile.TotalPoints)

	assert.Equal(t, "CONFLICT", ts.errorCode(t, complete, map[string]any{"id": ids[0]}, tok))

	var achievements struct {
		Achievements []achievementJSON `json:"achievements"`
	}
	ts.mustQuery(t, `{ achievements { id progress completed } }`, nil, tok, &achievements)
	byID := make(map[string]achievementJSON, len(achievements.Achievements))
	for _, a := range achievements.Achievements {
		byID[a.ID] = a
	}
	assert.True(t, byID["first_task"].Completed)
	assert.Equal(t, 2, byID["task_apprentice"].Progress)
	assert.False(t, byID["task_apprentice"].Completed)

	var tasks struct {
		Tasks struct {
			Total int `json:"total"`
		} `json:"tasks"`
	}
	ts.mustQuery(t, `{ tasks(completed: true) { total } }`, nil, tok, &tasks)
	assert.Equal(t, 2, tasks.Tasks.Total)
}

func TestE2E_ImportCSV(t *testing.T) {
	ts := setupTestServer(t)
	tok := ts.token(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cards.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("front,back,subject\nuno,one,es\n,missing,es\ndos,two,es\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/cards/import", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var imported struct {
		Imported int `json:"imported"`
		Skipped  []struct {
			Row int `json:"row"`
		} `json:"skipped"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&imported))
	assert.Equal(t, 2, imported.Imported)
	require.Len(t, imported.Skipped, 1)

	var list struct {
		Cards struct {
			Total int `json:"total"`
		} `json:"cards"`
	}
	ts.mustQuery(t, `{ cards(filter: {subject: "es"}) { total } }`, nil, tok, &list)
	assert.Equal(t, 2, list.Cards.Total)
}
