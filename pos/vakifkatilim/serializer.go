package vakifkatilim

import (
	"bytes"

	"github.com/gopostr/gopos/pos"
)

const (
	requestRoot  = "VPosMessageContract"
	responseRoot = "VPosTransactionResponseContract"
	xmlEncoding  = "UTF-8"
)

// Serializer encodes API requests as UTF-8 XML under the fixed
// VPosMessageContract root. Payment responses are plain XML contracts;
// the reporting operations answer with a namespace-prefixed SOAP
// envelope that is unwrapped and prefix-stripped.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	body, err := pos.EncodeXML(fields, requestRoot, xmlEncoding)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return pos.NewEncodedData(body, pos.FormatXML), nil
}

func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	if bytes.Contains(raw, []byte("Envelope")) {
		return pos.DecodeSOAP(raw, string(pos.GatewayVakifKatilim))
	}
	doc, err := pos.DecodeXML(raw)
	if err != nil {
		return nil, err
	}
	doc = pos.StripNSPrefixes(doc)
	if inner, ok := doc[responseRoot].(map[string]any); ok {
		return inner, nil
	}
	return doc, nil
}
