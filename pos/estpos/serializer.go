package estpos

import (
	"github.com/gopostr/gopos/pos"
)

// The API validates the declared charset against the request bytes, so
// ISO-8859-9 is not a free choice here.
const (
	requestRoot  = "CC5Request"
	responseRoot = "CC5Response"
	xmlEncoding  = "ISO-8859-9"
)

// Serializer encodes API requests as ISO-8859-9 XML under the fixed
// CC5Request root and decodes the CC5Response documents coming back.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	body, err := pos.EncodeXML(fields, requestRoot, xmlEncoding)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return pos.NewEncodedData(body, pos.FormatXML), nil
}

func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	doc, err := pos.DecodeXML(raw)
	if err != nil {
		return nil, err
	}
	if inner, ok := doc[responseRoot].(map[string]any); ok {
		return inner, nil
	}
	return doc, nil
}
