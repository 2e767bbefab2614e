package kmlstat

// Node is an element of a parsed document tree.
type Node interface {
	// Tag returns the element's local name, without namespace prefix.
	Tag() string

	// Text returns the character data of the element and all of its
	// descendants, concatenated in document order.
	Text() string

	// Children returns the child elements in document order.
	Children() []Node
}

// DocumentParser parses raw document text into a navigable tree.
type DocumentParser interface {
	// Parse returns the root element of the document.
	// Returns EMALFORMED if the text is not well-formed markup.
	Parse(content string) (Node, error)
}

// FirstNamed returns the first descendant of n with the given tag,
// searching depth-first in document order. The node itself is not a
// candidate. Returns nil if there is no match.
func FirstNamed(n Node, tag string) Node {
	return firstNamed(n, tag, "")
}

// AllNamed returns every descendant of n with the given tag in document
// order. The node itself is not a candidate.
func AllNamed(n Node, tag string) []Node {
	var found []Node
	walk(n, func(c Node) {
		if c.Tag() == tag {
			found = append(found, c)
		}
	})
	return found
}

// FirstNamedOutside is like FirstNamed but does not descend into elements
// tagged container.
func FirstNamedOutside(n Node, tag, container string) Node {
	return firstNamed(n, tag, container)
}

func firstNamed(n Node, tag, skip string) Node {
	for _, c := range n.Children() {
		if c.Tag() == tag {
			return c
		}
		if skip != "" && c.Tag() == skip {
			continue
		}
		if found := firstNamed(c, tag, skip); found != nil {
			return found
		}
	}
	return nil
}

// walk visits the descendants of n depth-first.
func walk(n Node, fn func(Node)) {
	for _, c := range n.Children() {
		fn(c)
		walk(c, fn)
	}
}
