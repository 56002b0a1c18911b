package payflexv4

import (
	"github.com/gopostr/gopos/pos"
)

const (
	requestRoot  = "VposRequest"
	responseRoot = "VposResponse"
	xmlEncoding  = "UTF-8"
)

// Serializer builds the bank's two-layer envelope: the request is XML
// under a VposRequest root, and the document travels as the single form
// field "prmstr". Responses come back as plain XML.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	doc, err := pos.EncodeXML(fields, requestRoot, xmlEncoding)
	if err != nil {
		return pos.EncodedData{}, err
	}
	form := pos.EncodeForm(pos.Fields{{Key: "prmstr", Value: string(doc)}})
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
