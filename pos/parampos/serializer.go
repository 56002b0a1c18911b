package parampos

import (
	"strings"

	"github.com/gopostr/gopos/pos"
)

// Namespace is the SOAP namespace of every TurkPos method.
const Namespace = "https://turkpos.com.tr/"

// Serializer wraps requests into SOAP 1.1 envelopes and unwraps the
// Response/Result nesting of TurkPos answers, stripping namespace
// prefixes at every depth.
type Serializer struct{}

// Encode wraps the fields into an envelope using the non-secure method
// for the transaction type. The client encodes channel-dependent methods
// itself via EncodeMethod.
func (s Serializer) Encode(fields pos.Fields, tx pos.TxType) (pos.EncodedData, error) {
	method, err := Mapper{}.MapTxType(tx, pos.ModelNonSecure, nil)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return s.EncodeMethod(method, fields)
}

// EncodeMethod wraps the fields into an envelope calling the given SOAP
// method.
func (Serializer) EncodeMethod(method string, fields pos.Fields) (pos.EncodedData, error) {
	body, err := pos.EncodeSOAP(method, Namespace, fields)
	if err != nil {
		return pos.EncodedData{}, err
	}
	return pos.NewEncodedData(body, pos.FormatXML), nil
}

// Decode unwraps the SOAP envelope, then descends through the
// conventional <method>Response/<method>Result pair when present.
func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	body, err := pos.DecodeSOAP(raw, string(pos.GatewayParam))
	if err != nil {
		return nil, err
	}
	body = unwrapSuffix(body, "Response")
	body = unwrapSuffix(body, "Result")
	return body, nil
}

// unwrapSuffix descends into a single child map whose key carries the
// given suffix.
func unwrapSuffix(body map[string]any, suffix string) map[string]any {
	if len(body) != 1 {
		return body
	}
	for key, value := range body {
		if inner, ok := value.(map[string]any); ok && strings.HasSuffix(key, suffix) {
			return inner
		}
	}
	return body
}
