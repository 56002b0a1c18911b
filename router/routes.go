// Package router wires the HTTP surface of the service.
package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/gopostr/gopos/handler"
)

// Options carries what the route table needs beyond the handlers.
type Options struct {
	Version           string
	OpenSearchEnabled bool
}

// Register mounts every route on the given router. Middlewares are the
// caller's business; the table stays flat enough to read top to bottom.
func Register(r chi.Router, callback *handler.CallbackHandler, opts Options) {
	r.Get("/health", handler.Health(opts.Version, opts.OpenSearchEnabled))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/gateways", handler.ListGateways)
		r.Post("/callback/{gateway}", callback.Handle)
	})
}
