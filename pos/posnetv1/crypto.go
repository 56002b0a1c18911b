package posnetv1

import (
	"context"

	"github.com/gopostr/gopos/pos"
)

// Crypt computes the JSON API MAC values. The construction is the chained
// base64(sha256) scheme of the classic PosNet service with the JSON
// field casing.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

func hashChain(parts ...string) string {
	data := ""
	for i, p := range parts {
		if i > 0 {
			data += ";"
		}
		data += p
	}
	return pos.HashBase64(pos.SHA256, data)
}

// TerminalMac is the inner digest shared by every MAC computation.
func (Crypt) TerminalMac(account pos.Account) string {
	return hashChain(account.StoreKey, account.TerminalID)
}

// MacData computes the request MAC for a payment.
func (c Crypt) MacData(account pos.Account, orderID, amount, currency string) string {
	return hashChain(orderID, amount, currency, account.ClientID, c.TerminalMac(account))
}

// Check3DHash verifies the MAC of a resolved 3-D payment.
func (c Crypt) Check3DHash(ctx context.Context, account pos.Account, data map[string]any) bool {
	computed := hashChain(
		pos.Str(data, "MdStatus"),
		pos.Str(data, "OrderId"),
		pos.Str(data, "Amount"),
		pos.Str(data, "Currency"),
		account.ClientID,
		c.TerminalMac(account),
	)
	provided := pos.Str(data, "Mac")
	return pos.VerifyHash(ctx, c.Logger, c.Audit, string(pos.GatewayPosNetV1), pos.Str(data, "OrderId"), provided, computed)
}
