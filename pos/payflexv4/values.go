// Package payflexv4 integrates VakifBank's PayFlex V4 virtual POS. The
// request is serialized as XML first and then wrapped as the single
// prmstr form field of a form-urlencoded POST; this two-layer envelope
// is the bank's own contract.
package payflexv4

import (
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

// Mapper translates the neutral vocabulary into PayFlex V4 tokens.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth:       "Sale",
	pos.TxPayPreAuth:    "Auth",
	pos.TxPayPostAuth:   "Capture",
	pos.TxCancel:        "Cancel",
	pos.TxRefund:        "Refund",
	pos.TxRefundPartial: "Refund",
	pos.TxStatus:        "status",
}

var currencyTable = map[pos.Currency]string{
	pos.CurrencyTRY: "949",
	pos.CurrencyUSD: "840",
	pos.CurrencyEUR: "978",
	pos.CurrencyGBP: "826",
	pos.CurrencyJPY: "392",
	pos.CurrencyRUB: "643",
}

var langTable = map[pos.Lang]string{
	pos.LangTR: "tr-TR",
	pos.LangEN: "en-US",
}

var cardTypeTable = map[pos.CardType]string{
	pos.CardTypeVisa:       "100",
	pos.CardTypeMasterCard: "200",
	pos.CardTypeTroy:       "300",
	pos.CardTypeAmex:       "400",
}

var frequencyTable = map[pos.RecurringFrequency]string{
	pos.FrequencyDay:   "Day",
	pos.FrequencyMonth: "Month",
	pos.FrequencyYear:  "Year",
}

func (Mapper) MapTxType(tx pos.TxType, model pos.PaymentModel, _ *pos.Order) (string, error) {
	return pos.LookupTx(txTable, tx, model)
}

func (Mapper) MapCurrency(c pos.Currency) (string, error) { return pos.Lookup(currencyTable, c) }

func (Mapper) MapLang(l pos.Lang) string {
	if token, ok := langTable[l]; ok {
		return token
	}
	return langTable[pos.LangTR]
}

// MapSecureType is unused; 3-D flows run through the MPI enrollment
// service, not a mode token.
func (Mapper) MapSecureType(pos.PaymentModel) (string, error) {
	return "", pos.ErrMappingNotSupported
}

func (Mapper) MapCardType(ct pos.CardType) (string, error) {
	return pos.Lookup(cardTypeTable, ct)
}

func (Mapper) MapRecurringFrequency(f pos.RecurringFrequency) (string, error) {
	return pos.Lookup(frequencyTable, f)
}

// ResponseMapper translates PayFlex V4 response tokens.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"Sale":    pos.TxPayAuth,
	"Auth":    pos.TxPayPreAuth,
	"Capture": pos.TxPayPostAuth,
	"Cancel":  pos.TxCancel,
	"Refund":  pos.TxRefund,
	"status":  pos.TxStatus,
}

var currencyFromBank = map[string]pos.Currency{
	"949": pos.CurrencyTRY,
	"840": pos.CurrencyUSD,
	"978": pos.CurrencyEUR,
	"826": pos.CurrencyGBP,
	"392": pos.CurrencyJPY,
	"643": pos.CurrencyRUB,
}

func (ResponseMapper) TxTypeFromBank(token string) (pos.TxType, error) {
	return pos.LookupReverse(txFromBank, token)
}

func (ResponseMapper) CurrencyFromBank(code string) (pos.Currency, error) {
	return pos.LookupReverse(currencyFromBank, code)
}

func (ResponseMapper) SecureTypeFromBank(string) (pos.PaymentModel, error) {
	return "", pos.ErrMappingNotSupported
}

func (ResponseMapper) OrderStatusFromBank(string) (pos.OrderStatus, error) {
	return "", pos.ErrMappingNotSupported
}

// Formatter renders typed values into PayFlex V4 wire shapes.
type Formatter struct{}

// FormatAmount is a fixed two-decimal dotted string.
func (Formatter) FormatAmount(amount float64, _ pos.TxType) string {
	return pos.FormatAmountDot2(amount)
}

// FormatInstallment renders an empty string for no installment, the
// plain count otherwise.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return ""
}

// FormatCardExpiry is YYYYMM for every expiry-bearing field of this API.
func (Formatter) FormatCardExpiry(t time.Time, _ string) (string, error) {
	return t.Format("200601"), nil
}

// FormatDateTime is not part of this bank's request vocabulary.
func (Formatter) FormatDateTime(time.Time, string) (string, error) {
	return "", pos.ErrUnsupportedField
}
