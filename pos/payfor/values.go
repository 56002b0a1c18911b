// Package payfor integrates QNB Finansbank's PayFor virtual POS.
// Requests are UTF-8 XML under a PayforRequest root and every request
// carries the fixed MbrId of the PayFor platform.
package payfor

import (
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

// MbrID is the constant member id of the PayFor platform itself, not a
// merchant credential.
const MbrID = "5"

// Mapper translates the neutral vocabulary into PayFor tokens.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth:       "Auth",
	pos.TxPayPreAuth:    "PreAuth",
	pos.TxPayPostAuth:   "PostAuth",
	pos.TxCancel:        "Void",
	pos.TxRefund:        "Refund",
	pos.TxRefundPartial: "Refund",
	pos.TxStatus:        "OrderInquiry",
	pos.TxHistory:       "TxnHistory",
	pos.TxOrderHistory:  "TxnHistory",
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
	pos.LangTR: "TR",
	pos.LangEN: "EN",
}

var secureTypeTable = map[pos.PaymentModel]string{
	pos.ModelNonSecure: "NonSecure",
	pos.Model3DSecure:  "3DModel",
	pos.Model3DPay:     "3DPay",
	pos.Model3DHost:    "3DHost",
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

// ResponseMapper translates PayFor response tokens.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"Auth":         pos.TxPayAuth,
	"PreAuth":      pos.TxPayPreAuth,
	"PostAuth":     pos.TxPayPostAuth,
	"Void":         pos.TxCancel,
	"Refund":       pos.TxRefund,
	"OrderInquiry": pos.TxStatus,
	"TxnHistory":   pos.TxHistory,
}

var currencyFromBank = map[string]pos.Currency{
	"949": pos.CurrencyTRY,
	"840": pos.CurrencyUSD,
	"978": pos.CurrencyEUR,
	"826": pos.CurrencyGBP,
	"392": pos.CurrencyJPY,
	"643": pos.CurrencyRUB,
}

var secureTypeFromBank = map[string]pos.PaymentModel{
	"NonSecure": pos.ModelNonSecure,
	"3DModel":   pos.Model3DSecure,
	"3DPay":     pos.Model3DPay,
	"3DHost":    pos.Model3DHost,
}

var orderStatusFromBank = map[string]pos.OrderStatus{
	"Succeeded": pos.OrderStatusApproved,
	"Failed":    pos.OrderStatusDeclined,
	"Voided":    pos.OrderStatusCancelled,
	"Refunded":  pos.OrderStatusFullyRefunded,
}

func (ResponseMapper) TxTypeFromBank(token string) (pos.TxType, error) {
	return pos.LookupReverse(txFromBank, token)
}

func (ResponseMapper) CurrencyFromBank(code string) (pos.Currency, error) {
	return pos.LookupReverse(currencyFromBank, code)
}

func (ResponseMapper) SecureTypeFromBank(token string) (pos.PaymentModel, error) {
	return pos.LookupReverse(secureTypeFromBank, token)
}

// OrderStatusFromBank maps the documented status wording and surfaces
// everything else raw. The bank's full status vocabulary is not
// published, so an unknown string is still information for the caller.
func (ResponseMapper) OrderStatusFromBank(token string) (pos.OrderStatus, error) {
	if status, ok := orderStatusFromBank[token]; ok {
		return status, nil
	}
	return pos.OrderStatus(token), nil
}

// Formatter renders typed values into PayFor wire shapes.
type Formatter struct{}

// FormatAmount is a fixed two-decimal dotted string.
func (Formatter) FormatAmount(amount float64, _ pos.TxType) string {
	return pos.FormatAmountDot2(amount)
}

// FormatInstallment renders 0 for no installment, the plain count
// otherwise.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return "0"
}

// FormatCardExpiry is MMYY for every expiry-bearing field of this API.
func (Formatter) FormatCardExpiry(t time.Time, _ string) (string, error) {
	return t.Format("0106"), nil
}

// FormatDateTime renders the history report date.
func (Formatter) FormatDateTime(t time.Time, field string) (string, error) {
	switch field {
	case "ReqDate":
		return t.Format("20060102"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}
