package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one element in a parsed document tree. The record engine only ever
// navigates downwards from a record's root node, so there is no parent link.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// Parse reads an XML document and returns its root element node
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	var stack []*Node
	var root *Node
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing XML document: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Tag: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else if root != nil {
				return nil, fmt.Errorf("document has more than one root element")
			} else {
				root = node
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing tag </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document contains no elements")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("document ended with unclosed tag <%s>", stack[len(stack)-1].Tag)
	}
	return root, nil
}

// Query evaluates a relative path like "MASH_STEPS/MASH_STEP" against this
// node and returns every matching descendant, in document order. An empty
// path matches the node itself.
func (n *Node) Query(path string) []*Node {
	if path == "" {
		return []*Node{n}
	}

	matches := []*Node{n}
	for _, segment := range strings.Split(path, "/") {
		var next []*Node
		for _, m := range matches {
			for _, child := range m.Children {
				if child.Tag == segment {
					next = append(next, child)
				}
			}
		}
		matches = next
		if len(matches) == 0 {
			break
		}
	}
	return matches
}

// TrimmedText returns the node's character data with surrounding whitespace
// removed
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}
