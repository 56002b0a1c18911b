package payfor

import (
	"context"

	"github.com/gopostr/gopos/pos"
)

// Crypt computes PayFor security hashes. Both directions are a plain
// concatenation digested with SHA-1 and rendered as base64; the merchant
// pass is appended last.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// Create3DHash computes the hash posted with a 3-D enrollment form.
// Field order is fixed by the bank.
func (Crypt) Create3DHash(account pos.Account, orderID, amount, okURL, failURL, txToken, installment, rnd string) string {
	return pos.HashBase64(pos.SHA1,
		MbrID+orderID+amount+okURL+failURL+txToken+installment+rnd+account.StoreKey)
}

// Check3DHash verifies a 3-D callback against the response hash the bank
// computes over its own random value and the transaction identity.
func (c Crypt) Check3DHash(ctx context.Context, account pos.Account, data map[string]any) bool {
	computed := pos.HashBase64(pos.SHA1,
		pos.Str(data, "ResponseRnd")+
			account.ClientID+
			pos.Str(data, "OrderId")+
			pos.Str(data, "ProcReturnCode")+
			pos.Str(data, "3DStatus")+
			account.StoreKey)
	provided := pos.Str(data, "ResponseHash")
	return pos.VerifyHash(ctx, c.Logger, c.Audit, string(pos.GatewayPayFor), pos.Str(data, "OrderId"), provided, computed)
}
