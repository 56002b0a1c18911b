package pos

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClientConfig configures the shared HTTP transport used by the
// gateway clients. InsecureSkipVerify follows the environment flag at
// construction time and is immutable afterwards.
type HTTPClientConfig struct {
	BaseURL            string
	Timeout            time.Duration
	InsecureSkipVerify bool
	DefaultHeaders     map[string]string
}

// NewHTTPClientConfig builds the standard configuration for a gateway
// client. Bank sandboxes routinely present self-signed certificates, so
// verification is relaxed outside production only.
func NewHTTPClientConfig(baseURL string, env Environment) *HTTPClientConfig {
	return &HTTPClientConfig{
		BaseURL:            baseURL,
		Timeout:            30 * time.Second,
		InsecureSkipVerify: env != EnvProduction,
		DefaultHeaders: map[string]string{
			"User-Agent": "gopos/1.0",
		},
	}
}

// HTTPResponse is a transport-level response before bank-specific
// decoding.
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// HTTPClient posts encoded bodies to bank endpoints. All payment
// operations are POST; the content type follows the body's format tag
// unless the gateway overrides it per request.
type HTTPClient struct {
	config *HTTPClientConfig
	client *http.Client
}

// NewHTTPClient creates a client from the given configuration.
func NewHTTPClient(config *HTTPClientConfig) *HTTPClient {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}
	return &HTTPClient{
		config: config,
		client: &http.Client{Timeout: config.Timeout, Transport: transport},
	}
}

// ContentType returns the default Content-Type header for a wire format.
func ContentType(format DataFormat) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "text/xml; charset=UTF-8"
	case FormatForm:
		return "application/x-www-form-urlencoded"
	default:
		return "text/plain"
	}
}

// Post sends the encoded body to endpoint and returns the raw response.
// endpoint may be absolute or relative to the configured base URL.
// Network errors propagate unmodified; retries are deliberately a caller
// concern.
func (c *HTTPClient) Post(ctx context.Context, endpoint string, data EncodedData, headers map[string]string) (*HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(endpoint), bytes.NewReader(data.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	for key, value := range c.config.DefaultHeaders {
		req.Header.Set(key, value)
	}
	req.Header.Set("Content-Type", ContentType(data.Format()))
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

func (c *HTTPClient) buildURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http") {
		return endpoint
	}
	return joinURL(c.config.BaseURL, endpoint)
}

func joinURL(base, endpoint string) string {
	if endpoint == "" {
		return base
	}
	if strings.HasSuffix(base, "/") && strings.HasPrefix(endpoint, "/") {
		return base + endpoint[1:]
	}
	if !strings.HasSuffix(base, "/") && !strings.HasPrefix(endpoint, "/") {
		return base + "/" + endpoint
	}
	return base + endpoint
}

// EncodeForm renders an ordered field list as form-urlencoded bytes,
// preserving field order. Nested Fields are not valid in a form body.
func EncodeForm(fields Fields) []byte {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(f.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(fmt.Sprintf("%v", f.Value)))
	}
	return []byte(sb.String())
}

// DecodeForm parses a form-urlencoded response body.
func DecodeForm(raw []byte) (map[string]any, error) {
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse form body: %w", err)
	}
	out := make(map[string]any, len(values))
	for key := range values {
		out[key] = values.Get(key)
	}
	return out, nil
}
