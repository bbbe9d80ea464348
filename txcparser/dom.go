package txcparser

import (
	"github.com/transitkit/txc-gtfs/xmlreader"
)

// node is a lightweight, generic element tree built from the xmlreader
// event stream. The TXC schema is deep and sparse (many optional elements
// at every level); building a small DOM once and then walking it with
// tolerant helper accessors is far simpler to keep correct than hand
// threading a stack through every semantic extraction function.
type node struct {
	name     string
	attrs    map[string]string
	text     string
	children []*node
}

func (n *node) attr(name string) string {
	if n == nil || n.attrs == nil {
		return ""
	}
	return n.attrs[name]
}

func (n *node) child(name string) *node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *node) childText(name string) string {
	c := n.child(name)
	if c == nil {
		return ""
	}
	return c.text
}

func (n *node) allChildren(name string) []*node {
	if n == nil {
		return nil
	}
	var out []*node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// buildDOM consumes the entire event stream and returns the document's root
// node (typically "TransXChange"). Returns nil, nil for an empty stream,
// and nil, err for a malformed one.
func buildDOM(r *xmlreader.Reader) (*node, error) {
	var root *node
	stack := []*node{}

	for {
		ev, ok := r.Next()
		if !ok {
			break
		}
		switch ev.Kind {
		case xmlreader.StartElement:
			n := &node{name: ev.LocalName, attrs: map[string]string{}}
			for _, a := range ev.Attrs {
				n.attrs[a.Name] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
		case xmlreader.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xmlreader.Text:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text += ev.Text
			}
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return root, nil
}
