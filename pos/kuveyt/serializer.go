package kuveyt

import (
	"github.com/gopostr/gopos/pos"
)

const (
	requestRoot  = "KuveytTurkVPosMessage"
	responseRoot = "VPosTransactionResponseContract"
	xmlEncoding  = "UTF-8"
)

// Serializer encodes API requests as UTF-8 XML under the fixed
// KuveytTurkVPosMessage root. A "successful" 3-D enrollment decode is
// special: the bank answers with an HTML auto-submit form instead of
// XML, which is harvested into formAction/formInputs entries.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	body, err := pos.EncodeXML(fields, requestRoot, xmlEncoding)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return pos.NewEncodedData(body, pos.FormatXML), nil
}

func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	if LooksLikeHTML(raw) {
		action, inputs, err := ExtractRedirectForm(raw)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"formAction": action,
			"formInputs": inputs.Map(),
		}, nil
	}
	doc, err := pos.DecodeXML(raw)
	if err != nil {
		return nil, err
	}
	if inner, ok := doc[responseRoot].(map[string]any); ok {
		return inner, nil
	}
	return doc, nil
}
