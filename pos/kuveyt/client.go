package kuveyt

import (
	"context"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

const (
	apiTestURL       = "https://boatest.kuveytturk.com.tr/boa.virtualpos.services"
	apiProductionURL = "https://boa.kuveytturk.com.tr/sanalposservice"
)

// endpointKey selects a service endpoint. Payments split by channel;
// follow-up operations have one endpoint each.
type endpointKey struct {
	tx    pos.TxType
	model pos.PaymentModel
}

var endpointTable = map[endpointKey]string{
	{pos.TxPayAuth, pos.ModelNonSecure}:       "/Home/Non3DPayGate",
	{pos.TxPayAuth, pos.Model3DSecure}:        "/Home/ThreeDModelProvisionGate",
	{pos.TxCancel, pos.ModelNonSecure}:        "/Home/SaleReversal",
	{pos.TxCancel, pos.Model3DSecure}:         "/Home/SaleReversal",
	{pos.TxRefund, pos.ModelNonSecure}:        "/Home/Drawback",
	{pos.TxRefund, pos.Model3DSecure}:         "/Home/Drawback",
	{pos.TxRefundPartial, pos.ModelNonSecure}: "/Home/PartialDrawback",
	{pos.TxRefundPartial, pos.Model3DSecure}:  "/Home/PartialDrawback",
	{pos.TxStatus, pos.ModelNonSecure}:        "/Home/GetMerchantOrderDetail",
	{pos.TxStatus, pos.Model3DSecure}:         "/Home/GetMerchantOrderDetail",
}

// Gate3DEndpoint receives the initial 3-D enrollment request whose
// answer is the HTML redirect form.
const Gate3DEndpoint = "/Home/ThreeDModelPayGate"

// Endpoint resolves the service suffix for a transaction.
func Endpoint(tx pos.TxType, model pos.PaymentModel) (string, error) {
	suffix, ok := endpointTable[endpointKey{tx, model}]
	if !ok {
		return "", fmt.Errorf("%w: %s over %s", pos.ErrUnsupportedTransaction, tx, model)
	}
	return suffix, nil
}

// Client posts Kuveyt Turk XML requests.
type Client struct {
	account    pos.Account
	http       *pos.HTTPClient
	serializer Serializer
	logger     pos.Logger
}

// NewClient builds an immutable Kuveyt Turk client for the account.
func NewClient(account pos.Account, opts pos.ClientOptions) (*Client, error) {
	if err := account.Validate("TerminalID", "Username", "Password"); err != nil {
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

// Request resolves the endpoint, encodes, sends and decodes one API
// call. HTML enrollment answers are decoded into their redirect form.
func (c *Client) Request(ctx context.Context, tx pos.TxType, model pos.PaymentModel, data pos.Fields, _ *pos.Order) (map[string]any, error) {
	endpoint, err := Endpoint(tx, model)
	if err != nil {
		return nil, err
	}
	encoded, err := c.serializer.Encode(data, tx)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("sending request", map[string]any{"gateway": "kuveyt", "tx": tx, "endpoint": endpoint})

	resp, err := c.http.Post(ctx, endpoint, encoded, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &pos.TransportError{
			Gateway: "kuveyt",
			Err:     fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	return c.serializer.Decode(resp.Body, tx)
}
