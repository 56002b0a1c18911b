package garanti

import (
	"context"

	"github.com/gopostr/gopos/pos"
)

// Crypt computes GVPS security hashes. The outer digest is SHA-512
// rendered as uppercase hex; the provisioning password is folded in as an
// inner SHA-1 hash keyed with the zero-padded terminal id.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// HashedPassword is upper(hex(sha1(password + terminal id padded to 9))).
func (Crypt) HashedPassword(account pos.Account) string {
	return pos.HashHexUpper(pos.SHA1, account.Password+pos.PadLeftZero(account.TerminalID, 9))
}

// CreateHash computes the HashData value of an API request.
func (c Crypt) CreateHash(account pos.Account, orderID, amount, currency string) string {
	return pos.HashHexUpper(pos.SHA512,
		orderID+account.TerminalID+amount+currency+c.HashedPassword(account))
}

// Create3DHash computes the secure3dhash posted with a 3-D enrollment
// form. Field order is fixed by the bank.
func (c Crypt) Create3DHash(account pos.Account, orderID, amount, currency, txToken, installment, okURL, failURL string) string {
	return pos.HashHexUpper(pos.SHA512,
		account.TerminalID+orderID+amount+currency+okURL+failURL+txToken+installment+
			account.StoreKey+c.HashedPassword(account))
}

// Check3DHash verifies a 3-D callback using the hashparams field list the
// bank echoes back (colon-separated names, store key appended, SHA-1,
// base64).
func (c Crypt) Check3DHash(ctx context.Context, account pos.Account, data map[string]any) bool {
	computed := pos.HashFromParams(pos.SHA1, account.StoreKey, data, "hashparams", ":")
	provided := pos.Str(data, "hash")
	return pos.VerifyHash(ctx, c.Logger, c.Audit, string(pos.GatewayGaranti), pos.Str(data, "oid"), provided, computed)
}
