package payflexv4

import "github.com/gopostr/gopos/pos"

func init() {
	pos.Register(pos.GatewayPayFlexV4, pos.Bundle{
		Mapper:         Mapper{},
		ResponseMapper: ResponseMapper{},
		Formatter:      Formatter{},
		Serializer:     Serializer{},
		NewClient: func(account pos.Account, opts pos.ClientOptions) (pos.Client, error) {
			return NewClient(account, opts)
		},
	})
}
