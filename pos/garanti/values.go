// Package garanti integrates the Garanti BBVA GVPS virtual POS. Requests
// are UTF-8 XML under a GVPSRequest root; amounts travel as integer minor
// units and security hashes are uppercase hex SHA-512.
package garanti

import (
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

// Mapper translates the neutral vocabulary into GVPS tokens.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth:       "sales",
	pos.TxPayPreAuth:    "preauth",
	pos.TxPayPostAuth:   "postauth",
	pos.TxCancel:        "void",
	pos.TxRefund:        "refund",
	pos.TxRefundPartial: "refund",
	pos.TxStatus:        "orderinq",
	pos.TxHistory:       "orderhistoryinq",
	pos.TxOrderHistory:  "orderhistoryinq",
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
	pos.ModelNonSecure: "regular",
	pos.Model3DSecure:  "3D",
	pos.Model3DPay:     "3D_PAY",
	pos.Model3DHost:    "3D_OOS_PAY",
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

// ResponseMapper translates GVPS response tokens. Order and history
// status come back as natural-language Turkish strings rather than codes.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"sales":           pos.TxPayAuth,
	"preauth":         pos.TxPayPreAuth,
	"postauth":        pos.TxPayPostAuth,
	"void":            pos.TxCancel,
	"refund":          pos.TxRefund,
	"orderinq":        pos.TxStatus,
	"orderhistoryinq": pos.TxHistory,
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
	"Basarili":      pos.OrderStatusApproved,
	"Onaylandi":     pos.OrderStatusApproved,
	"Iptal":         pos.OrderStatusCancelled,
	"Iptal Edilmis": pos.OrderStatusCancelled,
	"Iade":          pos.OrderStatusFullyRefunded,
	"Iade Edilmis":  pos.OrderStatusFullyRefunded,
	"Basarisiz":     pos.OrderStatusDeclined,
	"Onaylanmadi":   pos.OrderStatusDeclined,
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

// OrderStatusFromBank maps the known Turkish status strings and surfaces
// everything else raw. The bank's status wording is not exhaustively
// documented, so an unknown string is still information for the caller.
func (ResponseMapper) OrderStatusFromBank(token string) (pos.OrderStatus, error) {
	if status, ok := orderStatusFromBank[token]; ok {
		return status, nil
	}
	return pos.OrderStatus(token), nil
}

// Formatter renders typed values into GVPS wire shapes.
type Formatter struct{}

// FormatAmount is integer minor units: 1.10 TRY goes out as "110".
func (Formatter) FormatAmount(amount float64, _ pos.TxType) string {
	return strconv.FormatInt(pos.AmountMinorUnits(amount), 10)
}

// FormatInstallment is empty for single-shot payments, the plain count
// otherwise.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return ""
}

// FormatCardExpiry is MMYY for every expiry-bearing field of this API.
func (Formatter) FormatCardExpiry(t time.Time, _ string) (string, error) {
	return t.Format("0106"), nil
}

// FormatDateTime renders the history range fields.
func (Formatter) FormatDateTime(t time.Time, field string) (string, error) {
	switch field {
	case "StartDate", "EndDate":
		return t.Format("02/01/2006 15:04"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}
