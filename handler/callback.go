package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gopostr/gopos/infra/config"
	"github.com/gopostr/gopos/infra/logger"
	"github.com/gopostr/gopos/infra/response"
	"github.com/gopostr/gopos/pos"
)

// CallbackHandler verifies the hash of 3-D Secure callbacks posted back
// by the banks' MPI pages and returns a normalized verdict. It never
// completes the payment itself; that stays with the caller.
type CallbackHandler struct {
	Audit pos.AuditSink
	// Accounts resolves merchant credentials per gateway. Defaults to
	// environment lookup so tests can inject fixed accounts.
	Accounts func(gateway string) pos.Account
}

func NewCallbackHandler(audit pos.AuditSink) *CallbackHandler {
	return &CallbackHandler{
		Audit:    audit,
		Accounts: config.AccountFromEnv,
	}
}

// Handle serves POST /v1/callback/{gateway}.
func (h *CallbackHandler) Handle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "gateway")

	bundle, err := pos.Resolve(pos.Gateway(name))
	if err != nil {
		response.Error(w, http.StatusNotFound, "unknown gateway", err)
		return
	}
	if bundle.NewVerifier == nil {
		response.Error(w, http.StatusNotImplemented, "gateway callback carries no verifiable hash", nil)
		return
	}

	data, err := parseCallbackBody(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid callback body", err)
		return
	}

	account := h.Accounts(name)
	if account.ClientID == "" {
		response.Error(w, http.StatusServiceUnavailable, "gateway is not configured", nil)
		return
	}

	verifier := bundle.NewVerifier(logger.ForGateway(name), h.Audit)
	ok := verifier.Check3DHash(r.Context(), account, data)

	result := normalizeCallback(data, ok)
	message := "callback hash verified"
	if !ok {
		message = "callback hash mismatch"
	}
	response.Success(w, http.StatusOK, message, map[string]any{
		"hash_valid": ok,
		"result":     result,
	})
}

// parseCallbackBody accepts either the form post the bank browsers send
// or a JSON relay from an upstream service.
func parseCallbackBody(r *http.Request) (map[string]any, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		data := make(map[string]any)
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			return nil, err
		}
		return data, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	data := make(map[string]any, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}
	return data, nil
}

// normalizeCallback lifts the callback fields shared across gateways
// into the common response shape. Field names differ per bank, so each
// slot probes the known aliases in order.
func normalizeCallback(data map[string]any, hashOK bool) pos.NormalizedResponse {
	status := pos.StatusDeclined
	if hashOK {
		status = pos.StatusApproved
	}
	return pos.NormalizedResponse{
		Status:         status,
		OrderID:        firstStr(data, "oid", "OrderId", "orderId", "MerchantOrderId", "ReturnOid", "Xid"),
		AuthCode:       firstStr(data, "AuthCode", "authCode", "auth_code"),
		RefRetNum:      firstStr(data, "HostRefNum", "hostRefNum", "RetrefNum"),
		ProcReturnCode: firstStr(data, "ProcReturnCode", "procreturncode", "Response"),
		ErrorCode:      firstStr(data, "ErrCode", "ErrorCode", "mderrormessage"),
		ErrorMessage:   firstStr(data, "ErrMsg", "ErrorMessage", "errmsg"),
		MDStatus:       firstStr(data, "mdStatus", "MdStatus", "mdstatus"),
	}
}

func firstStr(data map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := pos.Str(data, key); v != "" {
			return v
		}
	}
	return ""
}
