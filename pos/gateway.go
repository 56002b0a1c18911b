package pos

import (
	"context"
	"time"
)

// ValueMapper translates the gateway-neutral vocabulary into one bank's
// request wire tokens. A gateway either maps a value or returns a typed
// error; an empty token is never silently treated as success.
type ValueMapper interface {
	// MapTxType resolves the bank token for a transaction. Some banks
	// encode (txType, paymentModel) pairs, and some inspect the order
	// context (original transaction type, order currency) before the
	// static table applies, so both are passed in. order may be nil.
	MapTxType(tx TxType, model PaymentModel, order *Order) (string, error)

	MapCurrency(currency Currency) (string, error)

	// MapLang degrades gracefully: an unknown language maps to the
	// bank's Turkish default instead of failing.
	MapLang(lang Lang) string

	MapSecureType(model PaymentModel) (string, error)
	MapCardType(cardType CardType) (string, error)
	MapRecurringFrequency(frequency RecurringFrequency) (string, error)
}

// ResponseValueMapper translates a bank's response vocabulary back into
// the neutral one. Tables are maintained independently from the request
// direction; they are not derived by flipping, because several banks use
// asymmetric response vocabularies.
type ResponseValueMapper interface {
	TxTypeFromBank(token string) (TxType, error)
	CurrencyFromBank(code string) (Currency, error)
	SecureTypeFromBank(token string) (PaymentModel, error)

	// OrderStatusFromBank maps a bank status token. Tokens the bank left
	// undocumented are surfaced raw inside the returned error so callers
	// can flag them for manual confirmation.
	OrderStatusFromBank(token string) (OrderStatus, error)
}

// ValueFormatter renders typed domain values into the exact string shape
// one bank's API demands.
type ValueFormatter interface {
	// FormatAmount renders the amount for the given transaction type.
	// Banks using integer minor units return the scaled value in decimal
	// notation without a separator.
	FormatAmount(amount float64, tx TxType) string

	// FormatInstallment normalizes 0 and 1 to the bank's "no
	// installment" sentinel and renders higher counts verbatim, possibly
	// zero-padded.
	FormatInstallment(count int) string

	// FormatCardExpiry renders a card expiry for the named wire field.
	// Unrecognized field names return ErrUnsupportedField.
	FormatCardExpiry(t time.Time, field string) (string, error)

	// FormatDateTime renders a timestamp for the named wire field.
	FormatDateTime(t time.Time, field string) (string, error)
}

// Serializer encodes a field list into the bank's wire body and decodes a
// raw bank response body back into a map. Both directions may apply
// per-transaction-type exceptions.
type Serializer interface {
	Encode(fields Fields, tx TxType) (EncodedData, error)
	Decode(raw []byte, tx TxType) (map[string]any, error)
}

// Client sends an encoded request to the bank endpoint resolved for the
// transaction and returns the decoded response body. URL, headers,
// content type and failure classification are bank-specific. Transport
// errors propagate unmodified; bank business failures come back as
// *BankError.
type Client interface {
	Request(ctx context.Context, tx TxType, model PaymentModel, data Fields, order *Order) (map[string]any, error)
}

// Logger is the narrow observability sink handed to gateway components.
// It is never used for control flow.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// NopLogger discards everything. Components fall back to it when no
// logger is supplied.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]any) {}
func (NopLogger) Error(string, map[string]any) {}

// AuditSink records security-relevant outcomes, most importantly hash
// verification results for 3-D callbacks. A mismatch is an expected
// outcome, so it is recorded rather than raised.
type AuditSink interface {
	HashVerification(ctx context.Context, gateway, orderID string, ok bool, provided, computed string)
}

// CallbackVerifier checks the bank hash of a 3-D callback. The result is
// a boolean, never an error; a mismatch is logged and audited by the
// implementation. Gateways whose callback carries no hash do not provide
// one.
type CallbackVerifier interface {
	Check3DHash(ctx context.Context, account Account, data map[string]any) bool
}

// HashAudit is a single recorded verification outcome.
type HashAudit struct {
	Gateway  string    `json:"gateway"`
	OrderID  string    `json:"order_id"`
	OK       bool      `json:"ok"`
	Provided string    `json:"provided"`
	Computed string    `json:"computed"`
	At       time.Time `json:"at"`
}
