// Package tosla integrates the Tosla (AkOde) JSON POS API. The API has
// no transaction-type field on the wire; the operation is selected by
// the endpoint path alone, so the transaction token and the endpoint
// suffix are the same table.
package tosla

import (
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

type endpointKey struct {
	tx    pos.TxType
	model pos.PaymentModel
}

var endpointTable = map[endpointKey]string{
	{pos.TxPayAuth, pos.ModelNonSecure}:       "Payment",
	{pos.TxPayAuth, pos.Model3DPay}:           "threeDPayment",
	{pos.TxPayAuth, pos.Model3DHost}:          "threeDHost",
	{pos.TxPayPreAuth, pos.Model3DPay}:        "threeDPreAuth",
	{pos.TxPayPostAuth, pos.ModelNonSecure}:   "postAuth",
	{pos.TxCancel, pos.ModelNonSecure}:        "cancel",
	{pos.TxRefund, pos.ModelNonSecure}:        "refund",
	{pos.TxRefundPartial, pos.ModelNonSecure}: "refund",
	{pos.TxStatus, pos.ModelNonSecure}:        "inquiry",
	{pos.TxOrderHistory, pos.ModelNonSecure}:  "history",
}

// Mapper translates the neutral vocabulary into Tosla tokens.
type Mapper struct{}

// MapTxType resolves the operation token for a transaction. Follow-up
// and reporting operations only exist over the non-secure channel.
func (Mapper) MapTxType(tx pos.TxType, model pos.PaymentModel, _ *pos.Order) (string, error) {
	token, ok := endpointTable[endpointKey{tx, model}]
	if !ok {
		return "", pos.ErrUnsupportedTransaction
	}
	return token, nil
}

var currencyTable = map[pos.Currency]string{
	pos.CurrencyTRY: "949",
	pos.CurrencyUSD: "840",
	pos.CurrencyEUR: "978",
	pos.CurrencyGBP: "826",
}

var langTable = map[pos.Lang]string{
	pos.LangTR: "tr",
	pos.LangEN: "en",
}

func (Mapper) MapCurrency(c pos.Currency) (string, error) { return pos.Lookup(currencyTable, c) }

func (Mapper) MapLang(l pos.Lang) string {
	if token, ok := langTable[l]; ok {
		return token
	}
	return langTable[pos.LangTR]
}

// MapSecureType is unused by this bank; the channel is implied by the
// endpoint.
func (Mapper) MapSecureType(pos.PaymentModel) (string, error) {
	return "", pos.ErrMappingNotSupported
}

// MapCardType is unused by this bank.
func (Mapper) MapCardType(pos.CardType) (string, error) {
	return "", pos.ErrMappingNotSupported
}

// MapRecurringFrequency is unused by this bank.
func (Mapper) MapRecurringFrequency(pos.RecurringFrequency) (string, error) {
	return "", pos.ErrMappingNotSupported
}

// ResponseMapper translates Tosla response tokens.
type ResponseMapper struct{}

var currencyFromBank = map[string]pos.Currency{
	"949": pos.CurrencyTRY,
	"840": pos.CurrencyUSD,
	"978": pos.CurrencyEUR,
	"826": pos.CurrencyGBP,
}

var orderStatusFromBank = map[string]pos.OrderStatus{
	"0": pos.OrderStatusError,
	"1": pos.OrderStatusApproved,
	"2": pos.OrderStatusCancelled,
	"3": pos.OrderStatusFullyRefunded,
	"4": pos.OrderStatusPartiallyRefunded,
}

// TxTypeFromBank has no request-side table to invert; responses name no
// transaction type.
func (ResponseMapper) TxTypeFromBank(string) (pos.TxType, error) {
	return "", pos.ErrMappingNotSupported
}

func (ResponseMapper) CurrencyFromBank(code string) (pos.Currency, error) {
	return pos.LookupReverse(currencyFromBank, code)
}

// SecureTypeFromBank is not part of this bank's response vocabulary.
func (ResponseMapper) SecureTypeFromBank(string) (pos.PaymentModel, error) {
	return "", pos.ErrMappingNotSupported
}

func (ResponseMapper) OrderStatusFromBank(token string) (pos.OrderStatus, error) {
	return pos.LookupReverse(orderStatusFromBank, token)
}

// Formatter renders typed values into Tosla wire shapes.
type Formatter struct{}

// FormatAmount is the amount in integer minor units.
func (Formatter) FormatAmount(amount float64, _ pos.TxType) string {
	return strconv.FormatInt(pos.AmountMinorUnits(amount), 10)
}

// FormatInstallment renders 0 for no installment, the plain count
// otherwise.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return "0"
}

// FormatCardExpiry is MMYY for the single expiry field of this API.
func (Formatter) FormatCardExpiry(t time.Time, field string) (string, error) {
	switch field {
	case "expireDate":
		return t.Format("0106"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}

// FormatDateTime renders compact dates for inquiry and report fields and
// the second-resolution timestamp that feeds the request hash.
func (Formatter) FormatDateTime(t time.Time, field string) (string, error) {
	switch field {
	case "transactionDate":
		return t.Format("20060102"), nil
	case "timeSpan":
		return t.Format("20060102150405"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}
