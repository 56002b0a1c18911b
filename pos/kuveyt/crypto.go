package kuveyt

import (
	"github.com/gopostr/gopos/pos"
)

// Crypt computes Kuveyt Turk request hashes. The provisioning password
// is folded in as base64(sha1); the outer request digest is
// base64(sha256).
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// HashedPassword is base64(sha1(password)).
func (Crypt) HashedPassword(account pos.Account) string {
	return pos.HashBase64(pos.SHA1, account.Password)
}

// CreateHash computes the HashData element of a payment request.
func (c Crypt) CreateHash(account pos.Account, merchantOrderID, amount, okURL, failURL string) string {
	return pos.HashBase64(pos.SHA256,
		account.ClientID+merchantOrderID+amount+okURL+failURL+account.Username+c.HashedPassword(account))
}

// CreateStatusHash computes the HashData element of the follow-up
// operations that carry no amount or return URLs.
func (c Crypt) CreateStatusHash(account pos.Account, merchantOrderID string) string {
	return pos.HashBase64(pos.SHA256,
		account.ClientID+merchantOrderID+account.Username+c.HashedPassword(account))
}
