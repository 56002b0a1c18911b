package kuveyt

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/gopostr/gopos/pos"
)

// LooksLikeHTML reports whether a response body is an HTML document
// rather than the expected XML message.
func LooksLikeHTML(raw []byte) bool {
	trimmed := strings.ToLower(strings.TrimSpace(string(raw)))
	return strings.HasPrefix(trimmed, "<!doctype html") || strings.HasPrefix(trimmed, "<html")
}

// ExtractRedirectForm harvests the auto-submit form out of an HTML
// enrollment answer: the form action URL and its hidden inputs in
// document order. The inputs must be replayed verbatim to the ACS, so
// order and casing are preserved.
func ExtractRedirectForm(raw []byte) (string, pos.Fields, error) {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse redirect document: %w", err)
	}
	form := findNode(doc, "form")
	if form == nil {
		return "", nil, fmt.Errorf("redirect document contains no form")
	}
	action := attr(form, "action")
	var inputs pos.Fields
	collectInputs(form, &inputs)
	return action, inputs, nil
}

func findNode(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, name); found != nil {
			return found
		}
	}
	return nil
}

func collectInputs(n *html.Node, out *pos.Fields) {
	if n.Type == html.ElementNode && n.Data == "input" {
		if name := attr(n, "name"); name != "" {
			*out = append(*out, pos.Field{Key: name, Value: attr(n, "value")})
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectInputs(child, out)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
