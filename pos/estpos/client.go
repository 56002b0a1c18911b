package estpos

import (
	"context"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

const (
	apiTestURL       = "https://entegrasyon.asseco-see.com.tr"
	apiProductionURL = "https://www.sanalakpos.com"

	apiEndpoint = "/fim/api"

	// Gate3DEndpoint is where 3-D form posts are directed. It is exposed
	// for callers rendering the redirect form.
	Gate3DEndpoint = "/fim/est3Dgate"
)

// Client posts CC5 XML requests to the EST API. All transaction types
// share a single endpoint; the operation is selected inside the body.
type Client struct {
	account    pos.Account
	http       *pos.HTTPClient
	serializer Serializer
	logger     pos.Logger
}

// NewClient builds an immutable EST client for the account. The TLS
// posture follows the environment and never changes afterwards.
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
	c.logger.Debug("sending request", map[string]any{"gateway": "estpos", "tx": tx, "endpoint": apiEndpoint})

	resp, err := c.http.Post(ctx, apiEndpoint, encoded, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &pos.TransportError{
			Gateway: "estpos",
			Err:     fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	decoded, err := c.serializer.Decode(resp.Body, tx)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
