// Package akbank integrates Akbank's JSON POS API. Requests are signed
// with an auth-hash header computed over the exact serialized body.
package akbank

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

// Mapper translates the neutral vocabulary into Akbank txn codes. Payment
// transactions carry channel-dependent codes: the same intent has a
// different code over 3-D flows.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth: pos.ModelTokens{
		pos.ModelNonSecure: "1000",
		pos.Model3DSecure:  "3000",
		pos.Model3DPay:     "3000",
		pos.Model3DHost:    "3000",
	},
	pos.TxPayPreAuth: pos.ModelTokens{
		pos.ModelNonSecure: "1004",
		pos.Model3DSecure:  "3004",
		pos.Model3DPay:     "3004",
		pos.Model3DHost:    "3004",
	},
	pos.TxPayPostAuth:   "1005",
	pos.TxRefund:        "1002",
	pos.TxRefundPartial: "1002",
	pos.TxCancel:        "1003",
	pos.TxHistory:       "1009",
	pos.TxOrderHistory:  "1010",
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
	pos.ModelNonSecure: "paygate",
	pos.Model3DSecure:  "3D",
	pos.Model3DPay:     "3D_PAY",
	pos.Model3DHost:    "3D_PAY_HOSTING",
}

var frequencyTable = map[pos.RecurringFrequency]string{
	pos.FrequencyDay:   "D",
	pos.FrequencyWeek:  "W",
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

// MapCardType is unused by this bank.
func (Mapper) MapCardType(pos.CardType) (string, error) {
	return "", pos.ErrMappingNotSupported
}

func (Mapper) MapRecurringFrequency(f pos.RecurringFrequency) (string, error) {
	return pos.Lookup(frequencyTable, f)
}

// ResponseMapper translates Akbank response tokens.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"1000": pos.TxPayAuth,
	"3000": pos.TxPayAuth,
	"1004": pos.TxPayPreAuth,
	"3004": pos.TxPayPreAuth,
	"1005": pos.TxPayPostAuth,
	"1002": pos.TxRefund,
	"1003": pos.TxCancel,
	"1009": pos.TxHistory,
	"1010": pos.TxOrderHistory,
}

var currencyFromBank = map[string]pos.Currency{
	"949": pos.CurrencyTRY,
	"840": pos.CurrencyUSD,
	"978": pos.CurrencyEUR,
	"826": pos.CurrencyGBP,
	"392": pos.CurrencyJPY,
	"643": pos.CurrencyRUB,
}

var orderStatusFromBank = map[string]pos.OrderStatus{
	"S": pos.OrderStatusApproved,
	"V": pos.OrderStatusCancelled,
	"R": pos.OrderStatusFullyRefunded,
	"E": pos.OrderStatusError,
}

func (ResponseMapper) TxTypeFromBank(token string) (pos.TxType, error) {
	return pos.LookupReverse(txFromBank, token)
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

// Formatter renders typed values into Akbank wire shapes.
type Formatter struct{}

// FormatAmount is a fixed two-decimal dotted string for every transaction
// type.
func (Formatter) FormatAmount(amount float64, _ pos.TxType) string {
	return pos.FormatAmountDot2(amount)
}

// FormatInstallment renders 1 for no installment, the plain count
// otherwise.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return "1"
}

// FormatCardExpiry is MMYY for every expiry-bearing field of this API.
func (Formatter) FormatCardExpiry(t time.Time, _ string) (string, error) {
	return t.Format("0106"), nil
}

// FormatDateTime renders ISO-8601 with millisecond precision for request
// and report range fields.
func (Formatter) FormatDateTime(t time.Time, field string) (string, error) {
	switch field {
	case "requestDateTime", "startDateTime", "endDateTime":
		return t.Format("2006-01-02T15:04:05.") + fmt.Sprintf("%03d", t.Nanosecond()/1e6), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}
