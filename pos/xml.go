package pos

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
)

// EncodeXML renders an ordered field list as an XML document with the
// bank's fixed root element and declared character encoding. The encoding
// is part of the bank contract: a mismatch is a common source of
// bank-side hash failures.
func EncodeXML(fields Fields, root, encoding string) ([]byte, error) {
	var body bytes.Buffer
	body.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="%s"?>`, encoding))
	if err := writeElement(&body, root, fields); err != nil {
		return nil, err
	}
	return transcodeFromUTF8(body.Bytes(), encoding)
}

func writeElement(w *bytes.Buffer, name string, value any) error {
	w.WriteString("<" + name + ">")
	switch v := value.(type) {
	case Fields:
		for _, f := range v {
			if err := writeElement(w, f.Key, f.Value); err != nil {
				return err
			}
		}
	case []Fields:
		// Repeated sibling groups are emitted under the same element
		// name by the caller; here they only appear nested.
		for _, group := range v {
			for _, f := range group {
				if err := writeElement(w, f.Key, f.Value); err != nil {
					return err
				}
			}
		}
	default:
		if err := xml.EscapeText(w, []byte(fmt.Sprintf("%v", v))); err != nil {
			return err
		}
	}
	w.WriteString("</" + name + ">")
	return nil
}

// transcodeFromUTF8 converts the UTF-8 document into the declared legacy
// charset where one applies. UTF-8 documents pass through unchanged.
func transcodeFromUTF8(doc []byte, encoding string) ([]byte, error) {
	var cm *charmap.Charmap
	switch strings.ToUpper(encoding) {
	case "ISO-8859-9":
		cm = charmap.ISO8859_9
	case "ISO-8859-1":
		cm = charmap.ISO8859_1
	case "UTF-8", "":
		return doc, nil
	default:
		return doc, nil
	}
	out, err := cm.NewEncoder().Bytes(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to transcode document to %s: %w", encoding, err)
	}
	return out, nil
}

// DecodeXML parses a bank XML response into a nested map. Leaf elements
// become strings, container elements become maps, and repeated siblings
// become []any. The declared charset of the document is honored.
func DecodeXML(raw []byte) (map[string]any, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			value, err := decodeElement(dec, start)
			if err != nil {
				return nil, err
			}
			if m, ok := value.(map[string]any); ok {
				return map[string]any{localName(start.Name): m}, nil
			}
			return map[string]any{localName(start.Name): value}, nil
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	children := map[string]any{}
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			value, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			name := localName(t.Name)
			if existing, ok := children[name]; ok {
				if list, ok := existing.([]any); ok {
					children[name] = append(list, value)
				} else {
					children[name] = []any{existing, value}
				}
			} else {
				children[name] = value
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(children) > 0 {
				return children, nil
			}
			return strings.TrimSpace(text.String()), nil
		}
	}
}

func localName(n xml.Name) string { return n.Local }

// soapEnvelope is the SOAP 1.1 wrapper shared by the SOAP-shaped
// gateways.
const (
	soapOpen  = `<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>`
	soapClose = `</soap:Body></soap:Envelope>`
)

// EncodeSOAP wraps a method call element carrying the given namespace into
// a SOAP 1.1 envelope.
func EncodeSOAP(method, namespace string, fields Fields) ([]byte, error) {
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	body.WriteString(soapOpen)
	body.WriteString(fmt.Sprintf(`<%s xmlns="%s">`, method, namespace))
	for _, f := range fields {
		if err := writeElement(&body, f.Key, f.Value); err != nil {
			return nil, err
		}
	}
	body.WriteString(fmt.Sprintf("</%s>", method))
	body.WriteString(soapClose)
	return body.Bytes(), nil
}

// DecodeSOAP parses a SOAP response, unwraps the Envelope/Body pair and
// strips namespace prefixes from every key at arbitrary nesting depth. A
// SOAP fault is returned as a *BankError carrying the fault code and
// string.
func DecodeSOAP(raw []byte, gateway string) (map[string]any, error) {
	doc, err := DecodeXML(raw)
	if err != nil {
		return nil, err
	}
	doc = StripNSPrefixes(doc)
	envelope, ok := doc["Envelope"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: response is not a SOAP envelope", gateway)
	}
	body, ok := envelope["Body"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: SOAP envelope has no body", gateway)
	}
	if fault, ok := body["Fault"].(map[string]any); ok {
		return nil, &BankError{
			Gateway: gateway,
			Code:    Str(fault, "faultcode"),
			Message: Str(fault, "faultstring"),
		}
	}
	return body, nil
}

// StripNSPrefixes removes "ns:" style prefixes from every map key,
// recursing into nested maps and lists.
func StripNSPrefixes(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for key, value := range data {
		if idx := strings.LastIndex(key, ":"); idx >= 0 {
			key = key[idx+1:]
		}
		switch v := value.(type) {
		case map[string]any:
			out[key] = StripNSPrefixes(v)
		case []any:
			list := make([]any, len(v))
			for i, item := range v {
				if m, ok := item.(map[string]any); ok {
					list[i] = StripNSPrefixes(m)
				} else {
					list[i] = item
				}
			}
			out[key] = list
		default:
			out[key] = value
		}
	}
	return out
}
