package pos

import (
	"fmt"
	"sync"
)

// Gateway identifies one bank integration.
type Gateway string

const (
	GatewayEstPos       Gateway = "estpos"
	GatewayAkbank       Gateway = "akbank"
	GatewayGaranti      Gateway = "garanti"
	GatewayPosNet       Gateway = "posnet"
	GatewayPosNetV1     Gateway = "posnetv1"
	GatewayPayFor       Gateway = "payfor"
	GatewayInterPos     Gateway = "interpos"
	GatewayKuveyt       Gateway = "kuveyt"
	GatewayVakifKatilim Gateway = "vakifkatilim"
	GatewayPayFlexV4    Gateway = "payflexv4"
	GatewayPayFlexCP    Gateway = "payflexcp"
	GatewayParam        Gateway = "parampos"
	GatewayTosla        Gateway = "tosla"
)

// ClientOptions carries the construction-time knobs common to all clients.
// They are immutable for the lifetime of a client instance; test-mode TLS
// behavior in particular never changes mid-flight.
type ClientOptions struct {
	Env    Environment
	Logger Logger
	Audit  AuditSink
	// BaseURL overrides the environment endpoint when non-empty. Meant
	// for tests and gateway relays; leave empty for the bank defaults.
	BaseURL string
}

// Bundle is the matched strategy set for one gateway. The wrong client or
// serializer means the wrong wire format, so the four parts are resolved
// together through a single registry lookup.
type Bundle struct {
	Mapper         ValueMapper
	ResponseMapper ResponseValueMapper
	Formatter      ValueFormatter
	Serializer     Serializer
	NewClient      func(account Account, opts ClientOptions) (Client, error)
	// NewVerifier is nil for gateways whose 3-D callback carries no hash.
	NewVerifier func(logger Logger, audit AuditSink) CallbackVerifier
}

// Registry maps gateway identifiers to their strategy bundles. It replaces
// the ordered supports()-scan dispatch of older unification layers with a
// direct keyed lookup.
type Registry struct {
	bundles map[Gateway]Bundle
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bundles: make(map[Gateway]Bundle)}
}

// Register adds or replaces the bundle for a gateway.
func (r *Registry) Register(gw Gateway, b Bundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bundles[gw] = b
}

// Resolve returns the bundle for a gateway.
func (r *Registry) Resolve(gw Gateway) (Bundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bundles[gw]
	if !ok {
		return Bundle{}, fmt.Errorf("gateway %q is not registered", gw)
	}
	return b, nil
}

// Gateways returns the identifiers of all registered gateways.
func (r *Registry) Gateways() []Gateway {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Gateway, 0, len(r.bundles))
	for gw := range r.bundles {
		out = append(out, gw)
	}
	return out
}

// DefaultRegistry is the process-wide registry populated by the gateway
// packages' init functions.
var DefaultRegistry = NewRegistry()

// Register registers a bundle with the default registry.
func Register(gw Gateway, b Bundle) { DefaultRegistry.Register(gw, b) }

// Resolve resolves a bundle from the default registry.
func Resolve(gw Gateway) (Bundle, error) { return DefaultRegistry.Resolve(gw) }

// Gateways lists the gateways registered with the default registry.
func Gateways() []Gateway { return DefaultRegistry.Gateways() }
