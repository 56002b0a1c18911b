package parampos

import (
	"context"
	"errors"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

const (
	apiTestURL       = "https://test-dmz.param.com.tr:4443/turkpos.ws/service_turkpos_test.asmx"
	apiProductionURL = "https://posws.param.com.tr/turkpos.ws/service_turkpos_prod.asmx"
)

// Client posts TurkPos SOAP calls. The method, and with it the
// SOAPAction header, follows the transaction type, channel and order.
type Client struct {
	account    pos.Account
	http       *pos.HTTPClient
	serializer Serializer
	logger     pos.Logger
}

// NewClient builds an immutable TurkPos client for the account.
func NewClient(account pos.Account, opts pos.ClientOptions) (*Client, error) {
	if err := account.Validate("Username", "Password", "StoreKey"); err != nil {
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

// Request resolves the SOAP method, encodes, sends and decodes one call.
// An empty decoded result is a hard transport failure, distinct from a
// parsed-but-declined business response.
func (c *Client) Request(ctx context.Context, tx pos.TxType, model pos.PaymentModel, data pos.Fields, order *pos.Order) (map[string]any, error) {
	method, err := (Mapper{}).MapTxType(tx, model, order)
	if err != nil {
		return nil, err
	}
	encoded, err := c.serializer.EncodeMethod(method, data)
	if err != nil {
		return nil, err
	}
	headers := map[string]string{
		"SOAPAction": Namespace + method,
	}
	c.logger.Debug("sending request", map[string]any{"gateway": "parampos", "tx": tx, "method": method})

	resp, err := c.http.Post(ctx, "", encoded, headers)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// SOAP 1.1 delivers faults with HTTP 500; the fault diagnostic
		// takes precedence over the bare status when the body parses.
		if _, decodeErr := c.serializer.Decode(resp.Body, tx); decodeErr != nil {
			var bankErr *pos.BankError
			if errors.As(decodeErr, &bankErr) {
				bankErr.HTTPStatus = resp.StatusCode
				return nil, bankErr
			}
		}
		return nil, &pos.TransportError{
			Gateway: "parampos",
			Err:     fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	decoded, err := c.serializer.Decode(resp.Body, tx)
	if err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		return nil, &pos.TransportError{
			Gateway: "parampos",
			Err:     fmt.Errorf("empty SOAP result for %s", method),
		}
	}
	return decoded, nil
}
