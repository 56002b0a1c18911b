package payfor

import "github.com/gopostr/gopos/pos"

func init() {
	pos.Register(pos.GatewayPayFor, pos.Bundle{
		Mapper:         Mapper{},
		ResponseMapper: ResponseMapper{},
		Formatter:      Formatter{},
		Serializer:     Serializer{},
		NewClient: func(account pos.Account, opts pos.ClientOptions) (pos.Client, error) {
			return NewClient(account, opts)
		},
		NewVerifier: func(logger pos.Logger, audit pos.AuditSink) pos.CallbackVerifier {
			return Crypt{Logger: logger, Audit: audit}
		},
	})
}
