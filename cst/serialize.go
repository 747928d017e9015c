package cst

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// Format selects one of the four serialization shapes the CST can be
// rendered into for tooling and debugging.
type Format int

const (
	FormatTree Format = iota
	FormatJSON
	FormatXML
	FormatCompactDebug
)

// Serialize renders the tree rooted at n in the requested format. JSON and
// XML reuse the standard library marshalers against jsonNode, a plain
// exported mirror of Node suitable for (un)marshaling; Tree (indented, one
// node per line) and Compact-Debug (a single-line S-expression) are
// hand-written debug dumps.
func Serialize(n *Node, format Format) (string, error) {
	switch format {
	case FormatTree:
		var b strings.Builder
		writeTree(&b, n, 0)
		return b.String(), nil
	case FormatCompactDebug:
		var b strings.Builder
		writeCompact(&b, n)
		return b.String(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(toJSONNode(n), "", "  ")
		if err != nil {
			return "", fmt.Errorf("serialize cst to json: %w", err)
		}
		return string(data), nil
	case FormatXML:
		data, err := xml.MarshalIndent(toJSONNode(n), "", "  ")
		if err != nil {
			return "", fmt.Errorf("serialize cst to xml: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("unknown serialization format %d", format)
}

func writeTree(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s%s %s\n", variantPrefix(n.Variant), n.Kind, n.Span)
	for _, c := range n.Children {
		if c.Node != nil {
			writeTree(b, c.Node, depth+1)
		} else if c.Token != nil {
			b.WriteString(strings.Repeat("  ", depth+1))
			fmt.Fprintf(b, "%s %q %s\n", c.Token.Kind, c.Token.Lexeme, c.Token.Span)
		}
	}
}

func writeCompact(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("()")
		return
	}
	fmt.Fprintf(b, "(%s%s", variantPrefix(n.Variant), n.Kind)
	for _, c := range n.Children {
		b.WriteByte(' ')
		if c.Node != nil {
			writeCompact(b, c.Node)
		} else if c.Token != nil {
			fmt.Fprintf(b, "%q", c.Token.Lexeme)
		}
	}
	b.WriteByte(')')
}

func variantPrefix(v Variant) string {
	switch v {
	case ErrorVariant:
		return "ERROR:"
	case Missing:
		return "MISSING:"
	case Incomplete:
		return "INCOMPLETE:"
	}
	return ""
}

// jsonNode is the exported, marshal-friendly mirror of Node used by the
// JSON and XML formats.
type jsonNode struct {
	XMLName  xml.Name   `json:"-"`
	Kind     string     `json:"kind" xml:"kind,attr"`
	Variant  string     `json:"variant,omitempty" xml:"variant,attr,omitempty"`
	Span     string     `json:"span" xml:"span,attr"`
	Message  string     `json:"message,omitempty" xml:"message,attr,omitempty"`
	Wanted   string     `json:"wanted,omitempty" xml:"wanted,attr,omitempty"`
	Token    *jsonToken `json:"token,omitempty" xml:"token,omitempty"`
	Children []jsonNode `json:"children,omitempty" xml:"child,omitempty"`
}

type jsonToken struct {
	Kind   string `json:"kind" xml:"kind,attr"`
	Lexeme string `json:"lexeme" xml:"lexeme,attr"`
}

func toJSONNode(n *Node) jsonNode {
	jn := jsonNode{XMLName: xml.Name{Local: "node"}, Kind: n.Kind.String(), Span: n.Span.String(), Message: n.Message}
	if n.Variant != Normal {
		jn.Variant = variantName(n.Variant)
	}
	if n.Variant == Missing {
		jn.Wanted = n.WantedKind.String()
	}
	for _, c := range n.Children {
		if c.Node != nil {
			jn.Children = append(jn.Children, toJSONNode(c.Node))
		} else if c.Token != nil {
			jn.Children = append(jn.Children, jsonNode{
				XMLName: xml.Name{Local: "node"},
				Kind:    "token",
				Span:    c.Token.Span.String(),
				Token:   &jsonToken{Kind: c.Token.Kind.String(), Lexeme: c.Token.Lexeme},
			})
		}
	}
	return jn
}

func variantName(v Variant) string {
	switch v {
	case ErrorVariant:
		return "error"
	case Missing:
		return "missing"
	case Incomplete:
		return "incomplete"
	}
	return "normal"
}
