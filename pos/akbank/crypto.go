package akbank

import (
	"context"
	"strings"

	"github.com/gopostr/gopos/pos"
)

// Crypt signs request bodies and verifies 3-D callbacks. Both directions
// use HMAC-SHA512 keyed with the store key.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// CreateAuthHash computes the auth-hash request header over the exact
// serialized body bytes. Hashing anything but the bytes put on the wire
// breaks verification bank-side.
func (Crypt) CreateAuthHash(account pos.Account, body []byte) string {
	return pos.HMACSHA512Base64([]byte(account.StoreKey), body)
}

// Check3DHash verifies a 3-D callback. The bank lists the hashed field
// names plus-separated inside the response ("hashParams"); their values
// are concatenated in the stated order and MACed with the store key.
func (c Crypt) Check3DHash(ctx context.Context, account pos.Account, data map[string]any) bool {
	list := pos.Str(data, "hashParams")
	var sb strings.Builder
	for _, name := range strings.Split(list, "+") {
		if name == "" {
			continue
		}
		sb.WriteString(pos.Str(data, name))
	}
	computed := pos.HMACSHA512Base64([]byte(account.StoreKey), []byte(sb.String()))
	provided := pos.Str(data, "hash")
	return pos.VerifyHash(ctx, c.Logger, c.Audit, string(pos.GatewayAkbank), pos.Str(data, "orderId"), provided, computed)
}
