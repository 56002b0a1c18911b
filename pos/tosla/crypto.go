package tosla

import (
	"github.com/gopostr/gopos/pos"
)

// Crypt computes the request hash Tosla expects in every call. The hash
// binds the API credentials to a caller-chosen timestamp and nonce; the
// same timeSpan and rnd values must be sent alongside it in the body.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// CreateHash is base64(sha512(apiUser + apiPass + clientId + timeSpan +
// rnd)). timeSpan is the second-resolution timestamp produced by the
// formatter's "timeSpan" field.
func (Crypt) CreateHash(account pos.Account, timeSpan, rnd string) string {
	return pos.HashBase64(pos.SHA512, account.Username+account.Password+account.ClientID+timeSpan+rnd)
}
