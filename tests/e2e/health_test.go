//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Liveness(t *testing.T) {
	ts := setupTestServer(t)

	var body map[string]any
	status := ts.doJSON(t, http.MethodGet, "/healthz", nil, &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestE2E_Readiness(t *testing.T) {
	ts := setupTestServer(t)

	var body map[string]any
	status := ts.doJSON(t, http.MethodGet, "/readyz", nil, &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestE2E_Health(t *testing.T) {
	ts := setupTestServer(t)

	var body map[string]any
	status := ts.doJSON(t, http.MethodGet, "/health", nil, &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "e2e-test", body["version"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok, "expected components object")

	db, ok := components["database"].(map[string]any)
	require.True(t, ok, "expected database component")
	assert.Equal(t, "ok", db["status"])
}
