package payflexcp

import "github.com/gopostr/gopos/pos"

func init() {
	pos.Register(pos.GatewayPayFlexCP, pos.Bundle{
		Mapper:         Mapper{},
		ResponseMapper: ResponseMapper{},
		Formatter:      Formatter{},
		Serializer:     Serializer{},
		NewClient: func(account pos.Account, opts pos.ClientOptions) (pos.Client, error) {
			return NewClient(account, opts)
		},
	})
}
