package posnetv1

import (
	"context"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

const (
	apiTestURL       = "https://epostest.albarakaturk.com.tr/ALBMerchantService/MerchantJSONAPI.svc"
	apiProductionURL = "https://epos.albarakaturk.com.tr/ALBMerchantService/MerchantJSONAPI.svc"
)

// endpointKey selects an API method. The same intent maps to different
// methods across channels, and refunds of uncaptured pre-auths are
// reversals rather than returns.
type endpointKey struct {
	tx    pos.TxType
	model pos.PaymentModel
}

var endpointTable = map[endpointKey]string{
	{pos.TxPayAuth, pos.ModelNonSecure}:       "/Sale",
	{pos.TxPayAuth, pos.Model3DSecure}:        "/Sale3D",
	{pos.TxPayPreAuth, pos.ModelNonSecure}:    "/Auth",
	{pos.TxPayPreAuth, pos.Model3DSecure}:     "/Auth3D",
	{pos.TxPayPostAuth, pos.ModelNonSecure}:   "/Capt",
	{pos.TxCancel, pos.ModelNonSecure}:        "/Reverse",
	{pos.TxCancel, pos.Model3DSecure}:         "/Reverse",
	{pos.TxRefund, pos.ModelNonSecure}:        "/Return",
	{pos.TxRefund, pos.Model3DSecure}:         "/Return",
	{pos.TxRefundPartial, pos.ModelNonSecure}: "/Return",
	{pos.TxRefundPartial, pos.Model3DSecure}:  "/Return",
	{pos.TxStatus, pos.ModelNonSecure}:        "/TransactionInquiry",
	{pos.TxStatus, pos.Model3DSecure}:         "/TransactionInquiry",
}

// Endpoint resolves the method suffix for a transaction. A refund whose
// prior transaction is an uncaptured pre-auth is routed to Reverse.
func Endpoint(tx pos.TxType, model pos.PaymentModel, order *pos.Order) (string, error) {
	if (tx == pos.TxRefund || tx == pos.TxRefundPartial) &&
		order != nil && order.PriorTxType == pos.TxPayPreAuth {
		tx = pos.TxCancel
	}
	suffix, ok := endpointTable[endpointKey{tx, model}]
	if !ok {
		return "", fmt.Errorf("%w: %s over %s", pos.ErrUnsupportedTransaction, tx, model)
	}
	return suffix, nil
}

// Client posts JSON requests to the PosNet JSON API.
type Client struct {
	account    pos.Account
	http       *pos.HTTPClient
	serializer Serializer
	logger     pos.Logger
}

// NewClient builds an immutable PosNet JSON API client for the account.
func NewClient(account pos.Account, opts pos.ClientOptions) (*Client, error) {
	if err := account.Validate("TerminalID", "StoreKey"); err != nil {
		return nil, err
	}
	base := apiTestURL
	if opts.Env == pos.EnvProduction {
		base = apiProductionURL
	}
	if opts.BaseURL != "" {
		base = opts.BaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = pos.NopLogger{}
	}
	return &Client{
		account: account,
		http:    pos.NewHTTPClient(pos.NewHTTPClientConfig(base, opts.Env)),
		logger:  logger,
	}, nil
}

// Request resolves the method endpoint, encodes, sends and decodes one
// API call.
func (c *Client) Request(ctx context.Context, tx pos.TxType, model pos.PaymentModel, data pos.Fields, order *pos.Order) (map[string]any, error) {
	endpoint, err := Endpoint(tx, model, order)
	if err != nil {
		return nil, err
	}
	if order != nil {
		if _, err := FormatOrderID(order.ID, tx, model); err != nil {
			return nil, err
		}
	}
	encoded, err := c.serializer.Encode(data, tx)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("sending request", map[string]any{"gateway": "posnetv1", "tx": tx, "endpoint": endpoint})

	resp, err := c.http.Post(ctx, endpoint, encoded, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &pos.TransportError{
			Gateway: "posnetv1",
			Err:     fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	return c.serializer.Decode(resp.Body, tx)
}
