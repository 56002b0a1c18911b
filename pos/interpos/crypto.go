package interpos

import (
	"context"

	"github.com/gopostr/gopos/pos"
)

// Crypt computes InterPos security hashes: SHA-1 rendered as base64, the
// shop code leading and the merchant pass trailing the concatenation.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// Create3DHash computes the hash posted with a 3-D enrollment form.
// Field order is fixed by the bank.
func (Crypt) Create3DHash(account pos.Account, orderID, amount, okURL, failURL, txToken, installment, rnd string) string {
	return pos.HashBase64(pos.SHA1,
		account.ClientID+orderID+amount+okURL+failURL+txToken+installment+rnd+account.StoreKey)
}

// Check3DHash verifies a 3-D callback through the HASHPARAMS pattern:
// the bank lists the hashed field names colon-separated inside the
// callback itself.
func (c Crypt) Check3DHash(ctx context.Context, account pos.Account, data map[string]any) bool {
	computed := pos.HashFromParams(pos.SHA1, account.StoreKey, data, "HASHPARAMS", ":")
	provided := pos.Str(data, "HASH")
	return pos.VerifyHash(ctx, c.Logger, c.Audit, string(pos.GatewayInterPos), pos.Str(data, "OrderId"), provided, computed)
}
