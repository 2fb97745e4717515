//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	achievementrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/achievement"
	goalrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/goal"
	"github.com/goaly/goaly-backend/internal/adapter/postgres/testhelper"
	unlockrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/unlock"
	userrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/user"
	"github.com/goaly/goaly-backend/internal/config"
	achievementsvc "github.com/goaly/goaly-backend/internal/service/achievement"
	goalsvc "github.com/goaly/goaly-backend/internal/service/goal"
	"github.com/goaly/goaly-backend/internal/transport/middleware"
	"github.com/goaly/goaly-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	goals := goalrepo.New(pool)
	achievements := achievementrepo.New(pool)
	unlocks := unlockrepo.New(pool)
	users := userrepo.New(pool)

	registry := achievementsvc.NewRegistry()

	goalService := goalsvc.NewService(logger, goals, users, config.GoalsConfig{
		MaxGoalsPerUser:    10000,
		UpcomingWindowDays: 7,
	})
	achievementService := achievementsvc.NewService(logger, achievements, unlocks, goals, users, registry)

	router := rest.NewRouter(rest.Handlers{
		Goals:        rest.NewGoalHandler(goalService, logger),
		Achievements: rest.NewAchievementHandler(achievementService, logger),
		Health:       rest.NewHealthHandler(pool, "e2e-test"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*"}),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into out (skipped when out is nil or the body is empty).
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}

	return resp.StatusCode
}
