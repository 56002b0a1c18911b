package handler

import (
	"net/http"

	"github.com/gopostr/gopos/infra/response"
	"github.com/gopostr/gopos/pos"
)

// ListGateways reports the gateways registered in this build and whether
// each one supports 3-D callback hash verification.
func ListGateways(w http.ResponseWriter, r *http.Request) {
	gateways := pos.Gateways()
	list := make([]map[string]any, 0, len(gateways))
	for _, gw := range gateways {
		bundle, err := pos.Resolve(gw)
		if err != nil {
			continue
		}
		list = append(list, map[string]any{
			"name":                  string(gw),
			"callback_verification": bundle.NewVerifier != nil,
		})
	}
	response.Success(w, http.StatusOK, "registered gateways", list)
}
