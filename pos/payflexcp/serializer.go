package payflexcp

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/gopostr/gopos/pos"
)

const responseRoot = "VposResponse"

// Serializer encodes API requests as order-preserving form bodies and
// decodes the XML responses. An HTML body is a gateway error page, not a
// bank response: its visible text is extracted and surfaced as a
// transport error rather than an XML parse failure.
type Serializer struct{}

func (Serializer) Encode(fields pos.Fields, _ pos.TxType) (pos.EncodedData, error) {
	return pos.NewEncodedData(pos.EncodeForm(fields), pos.FormatForm), nil
}

func (Serializer) Decode(raw []byte, _ pos.TxType) (map[string]any, error) {
	if looksLikeHTML(raw) {
		return nil, &pos.TransportError{
			Gateway: string(pos.GatewayPayFlexCP),
			Err:     fmt.Errorf("gateway answered an error page: %s", pageText(raw)),
		}
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

func looksLikeHTML(raw []byte) bool {
	trimmed := strings.ToLower(strings.TrimSpace(string(raw)))
	return strings.HasPrefix(trimmed, "<!doctype html") || strings.HasPrefix(trimmed, "<html")
}

// pageText strips the markup off an error page, keeping the visible text
// for the error message.
func pageText(raw []byte) string {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	var sb strings.Builder
	collectText(doc, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}
