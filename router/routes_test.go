package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopostr/gopos/handler"
	_ "github.com/gopostr/gopos/pos/estpos"
	_ "github.com/gopostr/gopos/pos/tosla"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	Register(r, handler.NewCallbackHandler(nil), Options{Version: "test", OpenSearchEnabled: false})
	return r
}

func TestRegister_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "test", data["version"])
	assert.Equal(t, false, data["opensearch_enabled"])
}

func TestRegister_GatewayListing(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/gateways", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	list, ok := body["data"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, list)

	byName := make(map[string]bool, len(list))
	for _, item := range list {
		entry := item.(map[string]any)
		byName[entry["name"].(string)] = entry["callback_verification"].(bool)
	}
	verifies, registered := byName["estpos"]
	require.True(t, registered)
	assert.True(t, verifies)
	verifies, registered = byName["tosla"]
	require.True(t, registered)
	assert.False(t, verifies)
}

func TestRegister_CallbackRouted(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/callback/nosuchbank", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
