package posnetv1

import (
	"encoding/json"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

// Serializer encodes requests as order-preserving JSON and decodes JSON
// responses.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	body, err := pos.EncodeJSON(fields)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return pos.NewEncodedData(body, pos.FormatJSON), nil
}

func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return decoded, nil
}
