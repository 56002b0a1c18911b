package parampos

import (
	"github.com/gopostr/gopos/pos"
)

// Crypt computes the TurkPos transaction hash. The service offers a SOAP
// method to obtain it, but the value is a plain base64(sha1) over the
// merchant credentials and transaction identity, so it is computed
// locally and spared a network round trip.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// CreateHash computes the Islem_Hash value of a payment request. The
// merchant GUID is carried in the account's store key slot.
func (Crypt) CreateHash(account pos.Account, installment, amount, totalAmount, orderID string) string {
	return pos.HashBase64(pos.SHA1,
		account.ClientID+account.StoreKey+installment+amount+totalAmount+orderID)
}
