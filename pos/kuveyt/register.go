package kuveyt

import "github.com/gopostr/gopos/pos"

func init() {
	pos.Register(pos.GatewayKuveyt, pos.Bundle{
		Mapper:         Mapper{},
		ResponseMapper: ResponseMapper{},
		Formatter:      Formatter{},
		Serializer:     Serializer{},
		NewClient: func(account pos.Account, opts pos.ClientOptions) (pos.Client, error) {
			return NewClient(account, opts)
		},
	})
}
