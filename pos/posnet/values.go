// Package posnet integrates Yapi Kredi's classic PosNet XML service.
// Requests travel as an ISO-8859-9 XML document wrapped in a single
// form field, order ids are fixed-width with transaction-dependent
// prefixes, and amounts are integer minor units.
package posnet

import (
	"fmt"
	"time"

	"github.com/gopostr/gopos/pos"
)

const (
	// orderIDLength is the fixed total width the service expects,
	// prefix included.
	orderIDLength = 24

	// orderID3DSecurePrefix marks follow-up operations on orders that
	// were paid over 3-D Secure.
	orderID3DSecurePrefix = "TDSC"

	// orderID3DPayPrefix is left empty until the upstream value is
	// confirmed.
	orderID3DPayPrefix = ""
)

// Mapper translates the neutral vocabulary into PosNet tokens.
type Mapper struct{}

var txTable = pos.TxTable{
	pos.TxPayAuth:       "sale",
	pos.TxPayPreAuth:    "auth",
	pos.TxPayPostAuth:   "capt",
	pos.TxCancel:        "reverse",
	pos.TxRefund:        "return",
	pos.TxRefundPartial: "return",
	pos.TxStatus:        "agreement",
}

var currencyTable = map[pos.Currency]string{
	pos.CurrencyTRY: "TL",
	pos.CurrencyUSD: "US",
	pos.CurrencyEUR: "EU",
	pos.CurrencyGBP: "GB",
	pos.CurrencyJPY: "JP",
	pos.CurrencyRUB: "RU",
}

var langTable = map[pos.Lang]string{
	pos.LangTR: "tr",
	pos.LangEN: "en",
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

// MapSecureType is unused; 3-D flows are selected by the request element,
// not a mode token.
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

// FormatOrderID renders an order id at the service's fixed width. Orders
// paid over 3-D Secure get the TDSC prefix on follow-up operations so the
// bank can find them. An id too long for the remaining width is rejected
// here, before any network traffic.
func FormatOrderID(orderID string, tx pos.TxType, model pos.PaymentModel) (string, error) {
	prefix := orderIDPrefix(tx, model)
	width := orderIDLength - len(prefix)
	if len(orderID) > width {
		return "", &pos.ValidationError{
			Field:  "orderID",
			Reason: fmt.Sprintf("order id %q exceeds %d characters after the %q prefix", orderID, width, prefix),
		}
	}
	return prefix + pos.PadLeftZero(orderID, width), nil
}

func orderIDPrefix(tx pos.TxType, model pos.PaymentModel) string {
	switch tx {
	case pos.TxStatus, pos.TxCancel, pos.TxRefund, pos.TxRefundPartial, pos.TxHistory, pos.TxOrderHistory:
		switch model {
		case pos.Model3DSecure:
			return orderID3DSecurePrefix
		case pos.Model3DPay:
			return orderID3DPayPrefix
		}
	}
	return ""
}

// ResponseMapper translates PosNet response tokens.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	"sale":      pos.TxPayAuth,
	"auth":      pos.TxPayPreAuth,
	"capt":      pos.TxPayPostAuth,
	"reverse":   pos.TxCancel,
	"return":    pos.TxRefund,
	"agreement": pos.TxStatus,
}

var currencyFromBank = map[string]pos.Currency{
	"TL": pos.CurrencyTRY,
	"US": pos.CurrencyUSD,
	"EU": pos.CurrencyEUR,
	"GB": pos.CurrencyGBP,
	"JP": pos.CurrencyJPY,
	"RU": pos.CurrencyRUB,
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

// Formatter renders typed values into PosNet wire shapes.
type Formatter struct{}

// FormatAmount is integer minor units: 1.10 TRY goes out as "110".
func (Formatter) FormatAmount(amount float64, _ pos.TxType) string {
	return fmt.Sprintf("%d", pos.AmountMinorUnits(amount))
}

// FormatInstallment is always two digits, "00" meaning single shot.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return pos.PadLeftZeroInt(count, 2)
	}
	return "00"
}

// FormatCardExpiry is YYMM, the reverse of most of the other banks.
func (Formatter) FormatCardExpiry(t time.Time, _ string) (string, error) {
	return t.Format("0601"), nil
}

// FormatDateTime is not part of this bank's request vocabulary.
func (Formatter) FormatDateTime(time.Time, string) (string, error) {
	return "", pos.ErrUnsupportedField
}
