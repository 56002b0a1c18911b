package posnet

import (
	"github.com/gopostr/gopos/pos"
)

const (
	requestRoot  = "posnetRequest"
	responseRoot = "posnetResponse"
	xmlEncoding  = "ISO-8859-9"
)

// Serializer builds the double envelope this service expects: the request
// is rendered as ISO-8859-9 XML under a posnetRequest root, then the
// whole document is sent as the single form field "xmldata". Responses
// come back as plain XML.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	doc, err := pos.EncodeXML(fields, requestRoot, xmlEncoding)
	if err != nil {
		return pos.EncodedData{}, err
	}
	form := pos.EncodeForm(pos.Fields{{Key: "xmldata", Value: string(doc)}})
	return pos.NewEncodedData(form, pos.FormatForm), nil
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
