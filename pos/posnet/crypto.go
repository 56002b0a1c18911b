package posnet

import (
	"context"

	"github.com/gopostr/gopos/pos"
)

// Crypt computes PosNet MAC values. Every MAC is a chained construction:
// an inner digest binds the store key to the terminal, an outer digest
// binds the transaction fields to that inner value. Both stages are
// base64(sha256).
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

// MacData computes the request MAC over the 3-D resolve parameters.
func (c Crypt) MacData(account pos.Account, xid, amount, currency string) string {
	return hashChain(xid, amount, currency, account.ClientID, c.TerminalMac(account))
}

// Check3DHash verifies the MAC of a resolved 3-D payment. The bank binds
// mdStatus into the response MAC so a tampered enrollment result cannot
// reuse the request MAC.
func (c Crypt) Check3DHash(ctx context.Context, account pos.Account, data map[string]any) bool {
	computed := hashChain(
		pos.Str(data, "mdStatus"),
		pos.Str(data, "xid"),
		pos.Str(data, "amount"),
		pos.Str(data, "currency"),
		account.ClientID,
		c.TerminalMac(account),
	)
	provided := pos.Str(data, "mac")
	return pos.VerifyHash(ctx, c.Logger, c.Audit, string(pos.GatewayPosNet), pos.Str(data, "xid"), provided, computed)
}
