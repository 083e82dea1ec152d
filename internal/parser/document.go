package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// ErrMalformedXML is returned when a report cannot be parsed as XML
var ErrMalformedXML = errors.New("malformed xml")

// Node is one element of a parsed XML document
type Node struct {
	Tag      string
	Attrs    []xml.Attr
	Children []*Node
}

// Attr looks up an attribute by local name. The second result is false
// when the attribute is absent, which is distinct from an empty value.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Descendants returns every node below n with the given tag, in document order
func (n *Node) Descendants(tag string) []*Node {
	var found []*Node
	var walk func(node *Node)
	walk = func(node *Node) {
		for _, child := range node.Children {
			if child.Tag == tag {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(n)
	return found
}

// ReadDocument parses r into a tree and returns its root element
func ReadDocument(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	// Reports written by older toolchains often declare ISO-8859-1 or windows-1252.
	decoder.CharsetReader = charset.NewReaderLabel

	var root *Node
	var stack []*Node

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Tag: t.Name.Local, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: junk after document element at offset %d", ErrMalformedXML, decoder.InputOffset())
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no element found", ErrMalformedXML)
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed element <%s>", ErrMalformedXML, stack[len(stack)-1].Tag)
	}

	return root, nil
}
