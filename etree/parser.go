// Package etree implements KML document parsing using beevik/etree.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/kmlstat"
)

// Ensure Parser implements kmlstat.DocumentParser.
var _ kmlstat.DocumentParser = (*Parser)(nil)

// Parser parses KML text into a tree of kmlstat.Node.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses content and returns its root element.
// Returns EMALFORMED if the content is not a single well-formed element tree.
func (p *Parser) Parse(content string) (kmlstat.Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = false
	doc.ReadSettings.PreserveDuplicateAttrs = true
	if err := doc.ReadFromString(content); err != nil {
		return nil, malformed()
	}

	// A document needs exactly one root element and no text outside it.
	roots := doc.ChildElements()
	if len(roots) != 1 {
		return nil, malformed()
	}
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return nil, malformed()
		}
	}
	if !wellFormed(roots[0]) {
		return nil, malformed()
	}

	return &node{el: roots[0]}, nil
}

// wellFormed reports whether e and its descendants have unique attributes
// and only namespace prefixes that are declared in scope.
func wellFormed(e *etree.Element) bool {
	if unbound(e.Space, e.NamespaceURI()) {
		return false
	}

	seen := make(map[string]struct{}, len(e.Attr))
	for i := range e.Attr {
		a := &e.Attr[i]
		if _, dup := seen[a.FullKey()]; dup {
			return false
		}
		seen[a.FullKey()] = struct{}{}

		if unbound(a.Space, a.NamespaceURI()) {
			return false
		}
	}

	for _, c := range e.ChildElements() {
		if !wellFormed(c) {
			return false
		}
	}
	return true
}

// unbound reports whether a prefix has no namespace declaration in scope.
// The reserved xml and xmlns prefixes are always bound.
func unbound(prefix, uri string) bool {
	return prefix != "" && prefix != "xml" && prefix != "xmlns" && uri == ""
}

func malformed() error {
	return kmlstat.Errorf(kmlstat.EMALFORMED, kmlstat.MalformedDocumentMessage)
}

// node adapts an etree element to kmlstat.Node.
type node struct {
	el *etree.Element
}

func (n *node) Tag() string {
	return n.el.Tag
}

func (n *node) Text() string {
	var b strings.Builder
	appendText(&b, n.el)
	return b.String()
}

func (n *node) Children() []kmlstat.Node {
	children := n.el.ChildElements()
	nodes := make([]kmlstat.Node, len(children))
	for i, c := range children {
		nodes[i] = &node{el: c}
	}
	return nodes
}

// appendText writes the character data of e and its descendants to b in
// document order. CDATA sections are included.
func appendText(b *strings.Builder, e *etree.Element) {
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			appendText(b, t)
		}
	}
}
