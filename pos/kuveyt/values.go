// Package kuveyt integrates Kuveyt Turk's virtual POS. Requests are XML
// under a KuveytTurkVPosMessage root; a successful 3-D enrollment answer
// is not XML at all but an HTML auto-submit form that must be harvested
// for its action URL and hidden inputs.
package kuveyt

import (
	"strconv"
	"strings"
	"time"

	"github.com/gopostr/gopos/pos"
)

// Mapper translates the neutral vocabulary into Kuveyt Turk tokens.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth:       "Sale",
	pos.TxCancel:        "SaleReversal",
	pos.TxRefund:        "Drawback",
	pos.TxRefundPartial: "PartialDrawback",
	pos.TxStatus:        "GetMerchantOrderDetail",
}

// Request-side currency codes are zero-padded to four digits.
var currencyTable = map[pos.Currency]string{
	pos.CurrencyTRY: "0949",
	pos.CurrencyUSD: "0840",
	pos.CurrencyEUR: "0978",
	pos.CurrencyGBP: "0826",
	pos.CurrencyJPY: "0392",
	pos.CurrencyRUB: "0643",
}

var langTable = map[pos.Lang]string{
	pos.LangTR: "TR",
	pos.LangEN: "EN",
}

var cardTypeTable = map[pos.CardType]string{
	pos.CardTypeVisa:       "Visa",
	pos.CardTypeMasterCard: "MasterCard",
	pos.CardTypeTroy:       "Troy",
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

// MapSecureType is unused; the payment model is expressed by the
// endpoint.
func (Mapper) MapSecureType(pos.PaymentModel) (string, error) {
	return "", pos.ErrMappingNotSupported
}

func (Mapper) MapCardType(ct pos.CardType) (string, error) {
	return pos.Lookup(cardTypeTable, ct)
}

// MapRecurringFrequency is unused by this bank.
func (Mapper) MapRecurringFrequency(pos.RecurringFrequency) (string, error) {
	return "", pos.ErrMappingNotSupported
}

// ResponseMapper translates Kuveyt Turk response tokens.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"Sale":                   pos.TxPayAuth,
	"SaleReversal":           pos.TxCancel,
	"Drawback":               pos.TxRefund,
	"PartialDrawback":        pos.TxRefundPartial,
	"GetMerchantOrderDetail": pos.TxStatus,
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

// CurrencyFromBank accepts both the padded and the plain form: the bank
// answers "0949" where ISO says "949".
func (ResponseMapper) CurrencyFromBank(code string) (pos.Currency, error) {
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" {
		trimmed = code
	}
	return pos.LookupReverse(currencyFromBank, trimmed)
}

func (ResponseMapper) SecureTypeFromBank(string) (pos.PaymentModel, error) {
	return "", pos.ErrMappingNotSupported
}

func (ResponseMapper) OrderStatusFromBank(string) (pos.OrderStatus, error) {
	return "", pos.ErrMappingNotSupported
}

// Formatter renders typed values into Kuveyt Turk wire shapes.
type Formatter struct{}

// FormatAmount is integer minor units carried as a string.
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

// FormatCardExpiry feeds the split month and year elements of the card
// block.
func (Formatter) FormatCardExpiry(t time.Time, field string) (string, error) {
	switch field {
	case "CardExpireDateMonth":
		return t.Format("01"), nil
	case "CardExpireDateYear":
		return t.Format("06"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}

// FormatDateTime is not part of this bank's request vocabulary.
func (Formatter) FormatDateTime(time.Time, string) (string, error) {
	return "", pos.ErrUnsupportedField
}
