// Package xmldoc exposes an already-parsed XML document as a generic
// element tree. Consumers see only the Element interface, keeping the
// concrete XML library out of decoding code.
package xmldoc

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// Document errors.
var (
	ErrMalformedDocument = errors.New("malformed XML document")
	ErrEmptyDocument     = errors.New("document has no root element")
)

// Element is a single node in a parsed document tree.
type Element interface {
	// Tag returns the element's tag name.
	Tag() string

	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// Child returns the first child element with the given tag, or nil.
	Child(tag string) Element

	// Children returns all child elements with the given tag, in document order.
	Children(tag string) []Element

	// FirstChild returns the first child element of any tag, or nil.
	FirstChild() Element

	// Text returns the character data directly inside the element.
	Text() string
}

// node adapts an etree element to the Element interface.
type node struct {
	el *etree.Element
}

// Tag returns the element's tag name.
func (n node) Tag() string {
	return n.el.Tag
}

// Attr returns the value of the named attribute and whether it is present.
func (n node) Attr(name string) (string, bool) {
	a := n.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Child returns the first child element with the given tag, or nil.
func (n node) Child(tag string) Element {
	c := n.el.SelectElement(tag)
	if c == nil {
		return nil
	}
	return node{el: c}
}

// Children returns all child elements with the given tag, in document order.
func (n node) Children(tag string) []Element {
	els := n.el.SelectElements(tag)
	children := make([]Element, len(els))
	for i, c := range els {
		children[i] = node{el: c}
	}
	return children
}

// FirstChild returns the first child element of any tag, or nil.
func (n node) FirstChild() Element {
	children := n.el.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return node{el: children[0]}
}

// Text returns the character data directly inside the element.
func (n node) Text() string {
	return n.el.Text()
}

// Parse parses XML data and returns the document's root element.
func Parse(data []byte) (Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return node{el: root}, nil
}

// ParseFile reads and parses an XML file, returning its root element.
func ParseFile(path string) (Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading XML file: %w", err)
	}
	return Parse(data)
}
