// Package payflexcp integrates VakifBank's PayFlex Common Payment
// gateway. The wire is form-urlencoded; the gateway is fronted by a web
// tier that answers HTML error pages instead of XML when something is
// wrong upstream, and those pages must surface as transport errors.
package payflexcp

import (
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

// Mapper translates the neutral vocabulary into Common Payment tokens.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth:       "Sale",
	pos.TxPayPreAuth:    "Auth",
	pos.TxPayPostAuth:   "Capture",
	pos.TxCancel:        "Cancel",
	pos.TxRefund:        "Refund",
	pos.TxRefundPartial: "Refund",
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

var secureTypeTable = map[pos.PaymentModel]string{
	pos.ModelNonSecure: "NonSecure",
	pos.Model3DSecure:  "3D",
	pos.Model3DPay:     "3D",
	pos.Model3DHost:    "3D",
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

func (Mapper) MapSecureType(m pos.PaymentModel) (string, error) {
	return pos.Lookup(secureTypeTable, m)
}

// MapCardType is unused by this bank.
func (Mapper) MapCardType(pos.CardType) (string, error) {
	return "", pos.ErrMappingNotSupported
}

// MapRecurringFrequency is unused by this bank.
func (Mapper) MapRecurringFrequency(pos.RecurringFrequency) (string, error) {
	return "", pos.ErrMappingNotSupported
}

// ResponseMapper translates Common Payment response tokens.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"Sale":    pos.TxPayAuth,
	"Auth":    pos.TxPayPreAuth,
	"Capture": pos.TxPayPostAuth,
	"Cancel":  pos.TxCancel,
	"Refund":  pos.TxRefund,
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

// Formatter renders typed values into Common Payment wire shapes.
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

// FormatCardExpiry is YYYYMM like the PayFlex V4 service.
func (Formatter) FormatCardExpiry(t time.Time, _ string) (string, error) {
	return t.Format("200601"), nil
}

// FormatDateTime is not part of this bank's request vocabulary.
func (Formatter) FormatDateTime(time.Time, string) (string, error) {
	return "", pos.ErrUnsupportedField
}
