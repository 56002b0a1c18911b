package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopostr/gopos/pos"
	_ "github.com/gopostr/gopos/pos/estpos"
	_ "github.com/gopostr/gopos/pos/tosla"
)

type recordingAudit struct {
	mu      sync.Mutex
	gateway string
	orderID string
	ok      bool
}

func (a *recordingAudit) HashVerification(ctx context.Context, gateway, orderID string, ok bool, provided, computed string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gateway, a.orderID, a.ok = gateway, orderID, ok
}

func newCallbackRouter(h *CallbackHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/v1/callback/{gateway}", h.Handle)
	return r
}

func fixedAccounts(account pos.Account) func(string) pos.Account {
	return func(string) pos.Account { return account }
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCallbackHandler_UnknownGateway(t *testing.T) {
	h := NewCallbackHandler(nil)
	rec := postForm(t, newCallbackRouter(h), "/v1/callback/nosuchbank", url.Values{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCallbackHandler_GatewayWithoutCallbackHash(t *testing.T) {
	h := NewCallbackHandler(nil)
	rec := postForm(t, newCallbackRouter(h), "/v1/callback/tosla", url.Values{})

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestCallbackHandler_UnconfiguredAccount(t *testing.T) {
	h := NewCallbackHandler(nil)
	h.Accounts = fixedAccounts(pos.Account{})
	rec := postForm(t, newCallbackRouter(h), "/v1/callback/estpos", url.Values{"oid": {"order-9"}})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCallbackHandler_ValidHash(t *testing.T) {
	audit := &recordingAudit{}
	h := NewCallbackHandler(audit)
	h.Accounts = fixedAccounts(pos.Account{ClientID: "CL1", StoreKey: "sk-test"})

	form := url.Values{
		"clientid":   {"CL1"},
		"oid":        {"order-9"},
		"mdStatus":   {"1"},
		"HASHPARAMS": {"clientid:oid:mdStatus:"},
		"HASH":       {"WxqgcLTJTwPI4MWQJOHD7YE5aYM="},
		"AuthCode":   {"A1B2C3"},
	}
	rec := postForm(t, newCallbackRouter(h), "/v1/callback/estpos", form)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["hash_valid"])

	result, ok := data["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, pos.StatusApproved, result["status"])
	assert.Equal(t, "order-9", result["order_id"])
	assert.Equal(t, "A1B2C3", result["auth_code"])
	assert.Equal(t, "1", result["md_status"])

	assert.Equal(t, "estpos", audit.gateway)
	assert.Equal(t, "order-9", audit.orderID)
	assert.True(t, audit.ok)
}

func TestCallbackHandler_TamperedHash(t *testing.T) {
	audit := &recordingAudit{}
	h := NewCallbackHandler(audit)
	h.Accounts = fixedAccounts(pos.Account{ClientID: "CL1", StoreKey: "sk-test"})

	form := url.Values{
		"clientid":   {"CL1"},
		"oid":        {"order-9"},
		"mdStatus":   {"0"},
		"HASHPARAMS": {"clientid:oid:mdStatus:"},
		"HASH":       {"WxqgcLTJTwPI4MWQJOHD7YE5aYM="},
	}
	rec := postForm(t, newCallbackRouter(h), "/v1/callback/estpos", form)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["hash_valid"])

	result := data["result"].(map[string]any)
	assert.Equal(t, pos.StatusDeclined, result["status"])
	assert.False(t, audit.ok)
}

func TestCallbackHandler_JSONBody(t *testing.T) {
	h := NewCallbackHandler(nil)
	h.Accounts = fixedAccounts(pos.Account{ClientID: "CL1", StoreKey: "sk-test"})

	payload := `{"clientid":"CL1","oid":"order-9","mdStatus":"1","HASHPARAMS":"clientid:oid:mdStatus:","HASH":"WxqgcLTJTwPI4MWQJOHD7YE5aYM="}`
	req := httptest.NewRequest(http.MethodPost, "/v1/callback/estpos", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newCallbackRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, true, data["hash_valid"])
}
