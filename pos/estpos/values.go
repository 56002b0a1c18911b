// Package estpos integrates the Asseco/EST virtual POS family used by a
// number of Turkish banks. The API speaks ISO-8859-9 XML; the 3-D gate is
// driven with form posts and SHA-512 "ver3" hashes.
package estpos

import (
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

// Mapper translates the neutral vocabulary into EST wire tokens.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth:       "Auth",
	pos.TxPayPreAuth:    "PreAuth",
	pos.TxPayPostAuth:   "PostAuth",
	pos.TxCancel:        "Void",
	pos.TxRefund:        "Credit",
	pos.TxRefundPartial: "Credit",
	pos.TxStatus:        "ORDERSTATUS",
	pos.TxOrderHistory:  "ORDERHISTORY",
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
	pos.LangTR: "tr",
	pos.LangEN: "en",
}

var secureTypeTable = map[pos.PaymentModel]string{
	pos.ModelNonSecure:    "regular",
	pos.Model3DSecure:     "3d",
	pos.Model3DPay:        "3d_pay",
	pos.Model3DPayHosting: "3d_pay_hosting",
	pos.Model3DHost:       "3d_host",
}

var cardTypeTable = map[pos.CardType]string{
	pos.CardTypeVisa:       "1",
	pos.CardTypeMasterCard: "2",
}

var frequencyTable = map[pos.RecurringFrequency]string{
	pos.FrequencyDay:   "D",
	pos.FrequencyMonth: "M",
	pos.FrequencyYear:  "Y",
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

func (Mapper) MapCardType(ct pos.CardType) (string, error) { return pos.Lookup(cardTypeTable, ct) }

func (Mapper) MapRecurringFrequency(f pos.RecurringFrequency) (string, error) {
	return pos.Lookup(frequencyTable, f)
}

// ResponseMapper translates EST response tokens back. The tables are kept
// independent of the request direction on purpose.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"Auth":         pos.TxPayAuth,
	"PreAuth":      pos.TxPayPreAuth,
	"PostAuth":     pos.TxPayPostAuth,
	"Void":         pos.TxCancel,
	"Credit":       pos.TxRefund,
	"ORDERSTATUS":  pos.TxStatus,
	"ORDERHISTORY": pos.TxOrderHistory,
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
	"regular":        pos.ModelNonSecure,
	"3d":             pos.Model3DSecure,
	"3d_pay":         pos.Model3DPay,
	"3d_pay_hosting": pos.Model3DPayHosting,
	"3d_host":        pos.Model3DHost,
}

var orderStatusFromBank = map[string]pos.OrderStatus{
	"S": pos.OrderStatusApproved,
	"D": pos.OrderStatusDeclined,
	"V": pos.OrderStatusCancelled,
	"C": pos.OrderStatusFullyRefunded,
	"E": pos.OrderStatusError,
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

func (ResponseMapper) OrderStatusFromBank(token string) (pos.OrderStatus, error) {
	return pos.LookupReverse(orderStatusFromBank, token)
}

// Formatter renders typed values into EST wire shapes.
type Formatter struct{}

// FormatAmount renders a fixed two-decimal dotted amount for every
// transaction type.
func (Formatter) FormatAmount(amount float64, _ pos.TxType) string {
	return pos.FormatAmountDot2(amount)
}

// FormatInstallment normalizes 0/1 to the empty-string sentinel.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return ""
}

// FormatCardExpiry dispatches on the wire field name: the gate form takes
// split month/year fields, the API takes a combined "Expires" value.
func (Formatter) FormatCardExpiry(t time.Time, field string) (string, error) {
	switch field {
	case "Expires":
		return t.Format("01/06"), nil
	case "Ecom_Payment_Card_ExpDate_Month":
		return t.Format("01"), nil
	case "Ecom_Payment_Card_ExpDate_Year":
		return t.Format("06"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}

// FormatDateTime has no recognized fields on this gateway.
func (Formatter) FormatDateTime(_ time.Time, field string) (string, error) {
	return "", pos.ErrUnsupportedField
}
