package vakifkatilim

import (
	"github.com/gopostr/gopos/pos"
)

// Crypt computes Vakif Katilim request hashes, the Kuveyt family scheme:
// base64(sha1) password folded into a base64(sha256) request digest.
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

// CreateStatusHash computes the HashData element of the follow-up and
// reporting operations that carry no amount or return URLs.
func (c Crypt) CreateStatusHash(account pos.Account, merchantOrderID string) string {
	return pos.HashBase64(pos.SHA256,
		account.ClientID+merchantOrderID+account.Username+c.HashedPassword(account))
}
