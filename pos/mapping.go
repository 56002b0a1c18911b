package pos

import "fmt"

// TxTable is a request-direction transaction token table. A plain token
// maps the transaction for every payment model; a ModelTokens value maps
// it per model.
type TxTable map[TxType]any

// ModelTokens maps payment models to bank tokens for one transaction type.
type ModelTokens map[PaymentModel]string

// LookupTx resolves a transaction token from a TxTable, distinguishing
// "bank does not offer this transaction" from "bank does not offer this
// transaction over this channel". Both surface as ErrUnsupportedTransaction
// so callers fail before any network traffic.
func LookupTx(table TxTable, tx TxType, model PaymentModel) (string, error) {
	entry, ok := table[tx]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedTransaction, tx)
	}
	switch v := entry.(type) {
	case string:
		return v, nil
	case ModelTokens:
		token, ok := v[model]
		if !ok {
			return "", fmt.Errorf("%w: %s over %s", ErrUnsupportedTransaction, tx, model)
		}
		return token, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedTransaction, tx)
	}
}

// Lookup resolves a token from a static table. A nil or empty table means
// the whole mapping category is unused by the bank (ErrMappingNotSupported);
// a populated table without the key is ErrNotFoundInMapping.
func Lookup[K comparable](table map[K]string, key K) (string, error) {
	if len(table) == 0 {
		return "", ErrMappingNotSupported
	}
	token, ok := table[key]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrNotFoundInMapping, key)
	}
	return token, nil
}

// LookupReverse resolves a neutral value from a response-direction table
// with the same absence semantics as Lookup.
func LookupReverse[V comparable](table map[string]V, token string) (V, error) {
	var zero V
	if len(table) == 0 {
		return zero, ErrMappingNotSupported
	}
	v, ok := table[token]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotFoundInMapping, token)
	}
	return v, nil
}
