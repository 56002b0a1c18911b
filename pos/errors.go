package pos

import (
	"errors"
	"fmt"
)

// Sentinel errors of the translation layer. They are raised before any
// network traffic; a caller can always tell them apart from transient
// transport failures with errors.Is.
var (
	// ErrUnsupportedTransaction means the (txType, paymentModel)
	// combination is genuinely not offered by the bank.
	ErrUnsupportedTransaction = errors.New("transaction type is not supported by this gateway")

	// ErrMappingNotSupported means a whole mapping category (card type,
	// recurring frequency, ...) is unused by the bank. Hitting it is a
	// programming error, not a runtime condition.
	ErrMappingNotSupported = errors.New("mapping is not supported by this gateway")

	// ErrNotFoundInMapping means the mapping table exists but the given
	// value has no entry in it.
	ErrNotFoundInMapping = errors.New("value not found in gateway mapping")

	// ErrUnsupportedField is raised by date/expiry formatters for a wire
	// field name they do not recognise, instead of guessing a format.
	ErrUnsupportedField = errors.New("unsupported field name")
)

// ValidationError is a locally detected malformed input: order id too
// long, missing account credential, and the like. It always fails fast,
// before a network call is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %q: %s", e.Field, e.Reason)
}

// BankError is a well-formed bank response whose content signals failure:
// a non-success status field, a SOAP fault, or an HTTP 4xx with a
// decodable error body. The bank's own code and message are carried
// verbatim so the merchant can reconcile with the bank's logs.
type BankError struct {
	Gateway    string
	Code       string
	Message    string
	HTTPStatus int
}

func (e *BankError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: bank declined request, code %s", e.Gateway, e.Code)
	}
	return fmt.Sprintf("%s: bank declined request, code %s: %s", e.Gateway, e.Code, e.Message)
}

// TransportError wraps a network or gateway-infrastructure level failure:
// connection errors, unexpected HTML error pages, empty SOAP results. The
// underlying error is preserved unmodified.
type TransportError struct {
	Gateway string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Gateway, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
