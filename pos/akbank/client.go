package akbank

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gopostr/gopos/pos"
)

const (
	apiTestURL       = "https://apipre.akbank.com/api/v1/payment/virtualpos"
	apiProductionURL = "https://api.akbank.com/api/v1/payment/virtualpos"

	endpointProcess = "/transaction/process"
	endpointReport  = "/portal/report/transaction"
)

// Client posts signed JSON requests. The endpoint suffix depends on the
// transaction: history goes to the reporting portal, everything else to
// the processing endpoint.
type Client struct {
	account    pos.Account
	http       *pos.HTTPClient
	serializer Serializer
	crypt      Crypt
	logger     pos.Logger
}

// NewClient builds an immutable Akbank client for the account.
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
		crypt:   Crypt{Logger: logger, Audit: opts.Audit},
		logger:  logger,
	}, nil
}

// Endpoint resolves the URL suffix for a transaction type.
func (c *Client) Endpoint(tx pos.TxType) string {
	if tx == pos.TxHistory || tx == pos.TxOrderHistory {
		return endpointReport
	}
	return endpointProcess
}

// Request encodes, signs, sends and decodes one API call.
func (c *Client) Request(ctx context.Context, tx pos.TxType, model pos.PaymentModel, data pos.Fields, _ *pos.Order) (map[string]any, error) {
	if _, err := (Mapper{}).MapTxType(tx, model, nil); err != nil {
		return nil, err
	}
	encoded, err := c.serializer.Encode(data, tx)
	if err != nil {
		return nil, err
	}
	body := encoded.Body()
	headers := map[string]string{
		"auth-hash": c.crypt.CreateAuthHash(c.account, body),
		"Accept":    "application/json",
	}
	endpoint := c.Endpoint(tx)
	c.logger.Debug("sending request", map[string]any{"gateway": "akbank", "tx": tx, "endpoint": endpoint})

	resp, err := c.http.Post(ctx, endpoint, encoded, headers)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusNoContent:
		// The reporting endpoint answers 204 when the queried range is
		// empty; that is a result, not a failure.
		return map[string]any{}, nil
	case resp.StatusCode == http.StatusBadRequest:
		return nil, c.validationFailure(tx, resp)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &pos.TransportError{
			Gateway: "akbank",
			Err:     fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	return c.serializer.Decode(resp.Body, tx)
}

// validationFailure decodes a 400 body and surfaces the bank's own error
// code and message.
func (c *Client) validationFailure(tx pos.TxType, resp *pos.HTTPResponse) error {
	decoded, err := c.serializer.Decode(resp.Body, tx)
	if err != nil {
		return &pos.TransportError{
			Gateway: "akbank",
			Err:     fmt.Errorf("HTTP 400 with undecodable body: %w", err),
		}
	}
	return &pos.BankError{
		Gateway:    "akbank",
		Code:       pos.Str(decoded, "responseCode"),
		Message:    pos.Str(decoded, "responseMessage"),
		HTTPStatus: resp.StatusCode,
	}
}
