// Package pos provides the gateway-neutral vocabulary and the contracts
// implemented by every bank gateway: value mappers, value formatters,
// serializers, HTTP clients and hash helpers. Each supported bank lives in
// its own subpackage and registers itself with the gateway registry.
package pos

import (
	"github.com/go-playground/validator/v10"
)

// TxType is the gateway-neutral transaction intent.
type TxType string

const (
	TxPayAuth       TxType = "pay"
	TxPayPreAuth    TxType = "pre"
	TxPayPostAuth   TxType = "post"
	TxCancel        TxType = "cancel"
	TxRefund        TxType = "refund"
	TxRefundPartial TxType = "refund_partial"
	TxStatus        TxType = "status"
	TxHistory       TxType = "history"
	TxOrderHistory  TxType = "order_history"
)

// PaymentModel is the security/channel flow of a transaction.
type PaymentModel string

const (
	ModelNonSecure    PaymentModel = "regular"
	Model3DSecure     PaymentModel = "3d"
	Model3DPay        PaymentModel = "3d_pay"
	Model3DPayHosting PaymentModel = "3d_pay_hosting"
	Model3DHost       PaymentModel = "3d_host"
)

// Currency is an ISO-4217 alphabetic currency code.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyRUB Currency = "RUB"
)

// Lang selects the language of bank-rendered UI copy. It never affects
// financial correctness, so unknown values degrade to Turkish.
type Lang string

const (
	LangTR Lang = "tr"
	LangEN Lang = "en"
)

// CardType is the card brand as understood by the gateways.
type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMasterCard CardType = "master"
	CardTypeAmex       CardType = "amex"
	CardTypeTroy       CardType = "troy"
)

// RecurringFrequency is the unit of a recurring payment period.
type RecurringFrequency string

const (
	FrequencyDay   RecurringFrequency = "DAY"
	FrequencyWeek  RecurringFrequency = "WEEK"
	FrequencyMonth RecurringFrequency = "MONTH"
	FrequencyYear  RecurringFrequency = "YEAR"
)

// OrderStatus is the gateway-neutral status of an order as reported by a
// bank's status/history endpoints.
type OrderStatus string

const (
	OrderStatusApproved          OrderStatus = "approved"
	OrderStatusDeclined          OrderStatus = "declined"
	OrderStatusCancelled         OrderStatus = "cancelled"
	OrderStatusFullyRefunded     OrderStatus = "fully_refunded"
	OrderStatusPartiallyRefunded OrderStatus = "partially_refunded"
	OrderStatusPreAuthCompleted  OrderStatus = "pre_auth_completed"
	OrderStatusError             OrderStatus = "error"
)

// Environment selects the bank endpoint set and the TLS posture of a
// client. It is fixed at client construction and never changes afterwards.
type Environment string

const (
	EnvTest       Environment = "test"
	EnvProduction Environment = "production"
)

// Order is the read-only cross-field context handed to mappers, formatters
// and clients. Only the fields a component actually inspects are defined;
// a zero value means "not supplied".
type Order struct {
	ID               string
	Amount           float64
	Currency         Currency
	InstallmentCount int
	// PriorTxType is the transaction type of the related original
	// transaction. Cancel/refund tokens of some banks depend on it.
	PriorTxType TxType
	IP          string
	Email       string
}

// Account carries the bank-issued merchant credentials. Which fields a
// gateway reads depends on the bank; the required set is validated by each
// client before any network call.
type Account struct {
	ClientID      string `validate:"required"`
	TerminalID    string
	Username      string
	Password      string
	StoreKey      string
	SubMerchantID string
	Lang          Lang
}

var accountValidator = validator.New()

// Validate checks the account against the given extra required fields.
// Field names must match the struct field names.
func (a Account) Validate(required ...string) error {
	if err := accountValidator.Struct(a); err != nil {
		return &ValidationError{Field: "ClientID", Reason: "merchant client id is required"}
	}
	for _, name := range required {
		var v string
		switch name {
		case "TerminalID":
			v = a.TerminalID
		case "Username":
			v = a.Username
		case "Password":
			v = a.Password
		case "StoreKey":
			v = a.StoreKey
		case "SubMerchantID":
			v = a.SubMerchantID
		default:
			continue
		}
		if v == "" {
			return &ValidationError{Field: name, Reason: "account field is required by this gateway"}
		}
	}
	return nil
}
