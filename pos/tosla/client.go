package tosla

import (
	"context"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

const (
	apiTestURL       = "https://prepentegrasyon.tosla.com/api/Payment"
	apiProductionURL = "https://entegrasyon.tosla.com/api/Payment"
)

// Client posts JSON requests. The operation is selected purely by the
// endpoint suffix; an unmapped (transaction, channel) pair fails before
// any network call.
type Client struct {
	account    pos.Account
	http       *pos.HTTPClient
	serializer Serializer
	logger     pos.Logger
}

// NewClient builds an immutable Tosla client for the account.
func NewClient(account pos.Account, opts pos.ClientOptions) (*Client, error) {
	if err := account.Validate("Username", "Password"); err != nil {
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

// Endpoint resolves the URL suffix for a transaction and channel.
func (c *Client) Endpoint(tx pos.TxType, model pos.PaymentModel) (string, error) {
	token, err := (Mapper{}).MapTxType(tx, model, nil)
	if err != nil {
		return "", err
	}
	return "/" + token, nil
}

// Request encodes, sends and decodes one API call.
func (c *Client) Request(ctx context.Context, tx pos.TxType, model pos.PaymentModel, data pos.Fields, _ *pos.Order) (map[string]any, error) {
	endpoint, err := c.Endpoint(tx, model)
	if err != nil {
		return nil, err
	}
	encoded, err := c.serializer.Encode(data, tx)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("sending request", map[string]any{"gateway": "tosla", "tx": tx, "endpoint": endpoint})

	resp, err := c.http.Post(ctx, endpoint, encoded, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &pos.TransportError{
			Gateway: "tosla",
			Err:     fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	return c.serializer.Decode(resp.Body, tx)
}
