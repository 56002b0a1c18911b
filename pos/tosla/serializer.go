package tosla

import (
	"encoding/json"
	"fmt"

	"github.com/gopostr/gopos/pos"
)

// Serializer encodes Tosla requests as JSON, preserving the field order
// the bank's examples use, and decodes JSON responses.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	body, err := pos.EncodeJSON(fields)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return pos.NewEncodedData(body, pos.FormatJSON), nil
}

func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return decoded, nil
}
