package interpos

import (
	"context"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

const (
	apiTestURL       = "https://test.inter-vpos.com.tr"
	apiProductionURL = "https://inter-vpos.com.tr"

	apiEndpoint = "/mpi/Default.aspx"
)

// Client posts InterPos form requests. All transaction types share a
// single endpoint; the operation is selected inside the body.
type Client struct {
	account    pos.Account
	http       *pos.HTTPClient
	serializer Serializer
	logger     pos.Logger
}

// NewClient builds an immutable InterPos client for the account.
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

// Request encodes, sends and decodes one API call.
func (c *Client) Request(ctx context.Context, tx pos.TxType, model pos.PaymentModel, data pos.Fields, _ *pos.Order) (map[string]any, error) {
	if _, err := (Mapper{}).MapTxType(tx, model, nil); err != nil {
		return nil, err
	}
	encoded, err := c.serializer.Encode(data, tx)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("sending request", map[string]any{"gateway": "interpos", "tx": tx, "endpoint": apiEndpoint})

	resp, err := c.http.Post(ctx, apiEndpoint, encoded, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &pos.TransportError{
			Gateway: "interpos",
			Err:     fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	return c.serializer.Decode(resp.Body, tx)
}
