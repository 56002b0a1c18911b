package interpos

import (
	"github.com/gopostr/gopos/pos"
)

// Serializer encodes API requests as order-preserving form bodies and
// decodes the form-shaped responses coming back.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	return pos.NewEncodedData(pos.EncodeForm(fields), pos.FormatForm), nil
}

func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	return pos.DecodeForm(raw)
}
