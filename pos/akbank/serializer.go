package akbank

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gopostr/gopos/pos"
)

// Serializer encodes Akbank requests as JSON, preserving the field order
// the bank's examples use, and decodes JSON responses. History responses
// wrap their payload in a base64-encoded gzip blob that is unwrapped
// transparently.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	body, err := pos.EncodeJSON(fields)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return pos.NewEncodedData(body, pos.FormatJSON), nil
}

func (Serializer) Decode(raw []byte, tx pos.TxType) (map[string]any, error) {
	if len(raw) == 0 {
		// 204-style empty bodies decode to an empty mapping.
		return map[string]any{}, nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if tx != pos.TxHistory {
		return decoded, nil
	}
	packed, ok := decoded["data"].(string)
	if !ok || packed == "" {
		return decoded, nil
	}
	unpacked, err := unpackHistoryData(packed)
	if err != nil {
		return nil, err
	}
	decoded["data"] = unpacked
	return decoded, nil
}

// unpackHistoryData base64-decodes and gzip-decompresses the nested
// history payload before JSON-decoding it.
func unpackHistoryData(packed string) (any, error) {
	compressed, err := base64.StdEncoding.DecodeString(packed)
	if err != nil {
		return nil, fmt.Errorf("failed to base64-decode history data: %w", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to open history data stream: %w", err)
	}
	defer zr.Close()
	plain, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress history data: %w", err)
	}
	var payload any
	if err := json.Unmarshal(plain, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse history data: %w", err)
	}
	return payload, nil
}
