// Package parampos integrates Param's TurkPos SOAP service. Method names
// double as transaction tokens: the same payment intent maps to a
// different SOAP method depending on the payment channel, the order
// currency and, for cancels, what the original transaction was.
package parampos

import (
	"strconv"
	"time"

	"github.com/gopostr/gopos/pos"
)

// Mapper translates the neutral vocabulary into TurkPos SOAP methods.
type Mapper struct{}

const (
	methodPay3D          = "TP_WMD_UCD"
	methodPayNonSecure   = "TP_Islem_Odeme_WNSC"
	methodPayForeign     = "TP_Islem_Odeme_WD"
	methodPreAuth        = "TP_Islem_Odeme_OnProv_WMD"
	methodPostAuth       = "TP_Islem_Odeme_OnProv_Kapa"
	methodCancelPreAuth  = "TP_Islem_Iptal_OnProv"
	methodCancelOrRefund = "TP_Islem_Iptal_Iade_Kismi"
	methodStatus         = "TP_Islem_Sorgulama4"
	methodHistory        = "TP_Islem_Izleme"
)

// MapTxType picks the SOAP method. Payments in a foreign currency use
// the WD variant regardless of channel, and cancelling an uncaptured
// pre-auth has its own method.
func (Mapper) MapTxType(tx pos.TxType, model pos.PaymentModel, order *pos.Order) (string, error) {
	switch tx {
	case pos.TxPayAuth:
		if order != nil && order.Currency != "" && order.Currency != pos.CurrencyTRY {
			return methodPayForeign, nil
		}
		switch model {
		case pos.ModelNonSecure:
			return methodPayNonSecure, nil
		case pos.Model3DSecure, pos.Model3DPay, pos.Model3DHost:
			return methodPay3D, nil
		}
		return "", pos.ErrUnsupportedTransaction
	case pos.TxPayPreAuth:
		return methodPreAuth, nil
	case pos.TxPayPostAuth:
		return methodPostAuth, nil
	case pos.TxCancel:
		if order != nil && order.PriorTxType == pos.TxPayPreAuth {
			return methodCancelPreAuth, nil
		}
		return methodCancelOrRefund, nil
	case pos.TxRefund, pos.TxRefundPartial:
		return methodCancelOrRefund, nil
	case pos.TxStatus:
		return methodStatus, nil
	case pos.TxHistory, pos.TxOrderHistory:
		return methodHistory, nil
	default:
		return "", pos.ErrUnsupportedTransaction
	}
}

var currencyTable = map[pos.Currency]string{
	pos.CurrencyTRY: "1000",
	pos.CurrencyUSD: "1001",
	pos.CurrencyEUR: "1002",
	pos.CurrencyGBP: "1003",
}

var langTable = map[pos.Lang]string{
	pos.LangTR: "TR",
	pos.LangEN: "EN",
}

func (Mapper) MapCurrency(c pos.Currency) (string, error) { return pos.Lookup(currencyTable, c) }

func (Mapper) MapLang(l pos.Lang) string {
	if token, ok := langTable[l]; ok {
		return token
	}
	return langTable[pos.LangTR]
}

// MapSecureType is unused; the payment model is folded into the method
// name.
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

// ResponseMapper translates TurkPos response tokens.
type ResponseMapper struct{}

var txFromBank = map[string]pos.TxType{
	methodPay3D:          pos.TxPayAuth,
	methodPayNonSecure:   pos.TxPayAuth,
	methodPayForeign:     pos.TxPayAuth,
	methodPreAuth:        pos.TxPayPreAuth,
	methodPostAuth:       pos.TxPayPostAuth,
	methodCancelPreAuth:  pos.TxCancel,
	methodCancelOrRefund: pos.TxRefund,
	methodStatus:         pos.TxStatus,
	methodHistory:        pos.TxHistory,
}

var currencyFromBank = map[string]pos.Currency{
	"1000": pos.CurrencyTRY,
	"1001": pos.CurrencyUSD,
	"1002": pos.CurrencyEUR,
	"1003": pos.CurrencyGBP,
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

// Formatter renders typed values into TurkPos wire shapes.
type Formatter struct{}

// FormatAmount flips its decimal separator by transaction type: payments
// use the Turkish comma, refunds and cancels the dot. The service
// genuinely parses them that way on different methods.
func (Formatter) FormatAmount(amount float64, tx pos.TxType) string {
	switch tx {
	case pos.TxRefund, pos.TxRefundPartial, pos.TxCancel:
		return pos.FormatAmountDot2(amount)
	default:
		return pos.FormatAmountComma2(amount)
	}
}

// FormatInstallment renders 1 for no installment, the plain count
// otherwise.
func (Formatter) FormatInstallment(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return "1"
}

// FormatCardExpiry feeds the split month and year elements.
func (Formatter) FormatCardExpiry(t time.Time, field string) (string, error) {
	switch field {
	case "KK_SK_Ay":
		return t.Format("01"), nil
	case "KK_SK_Yil":
		return t.Format("2006"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}

// FormatDateTime renders the history range fields.
func (Formatter) FormatDateTime(t time.Time, field string) (string, error) {
	switch field {
	case "Tarih_Bas", "Tarih_Bit":
		return t.Format("02.01.2006 15:04:05"), nil
	default:
		return "", pos.ErrUnsupportedField
	}
}
