package pos

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSON renders an ordered field list as a JSON object, preserving
// field order. Nested Fields become nested objects; []Fields becomes an
// array of objects.
func EncodeJSON(fields Fields) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONObject(&buf, fields); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONObject(buf *bytes.Buffer, fields Fields) error {
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeJSONValue(buf, f.Value); err != nil {
			return fmt.Errorf("failed to marshal field %q: %w", f.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, value any) error {
	switch v := value.(type) {
	case Fields:
		return writeJSONObject(buf, v)
	case []Fields:
		buf.WriteByte('[')
		for i, group := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONObject(buf, group); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(raw)
		return nil
	}
}
