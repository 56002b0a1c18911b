package garanti

import (
	"github.com/gopostr/gopos/pos"
)

const (
	requestRoot  = "GVPSRequest"
	responseRoot = "GVPSResponse"
	xmlEncoding  = "UTF-8"
)

// Serializer encodes API requests as UTF-8 XML under the fixed
// GVPSRequest root and decodes the GVPSResponse documents coming back.
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
