package jsast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/parser"
)

// IsJSXElementOrFragment reports whether node is a JSX element, self-closing element or fragment.
func IsJSXElementOrFragment(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case NodeJSXElement, NodeJSXSelfClosing, NodeJSXFragment:
		return true
	}
	return false
}

// OpeningElement returns the tag carrying the name and attributes of a JSX element.
// For a self-closing element that is the element itself.
func OpeningElement(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	switch node.Type() {
	case NodeJSXSelfClosing, NodeJSXOpening:
		return node
	case NodeJSXElement:
		if open := node.ChildByFieldName("open_tag"); open != nil {
			return open
		}
		return parser.FindChildByType(node, NodeJSXOpening)
	}
	return nil
}

// TagName returns the plain intrinsic or component name of an opening or
// self-closing tag. Member (a.b) and namespaced (a:b) names yield "".
func TagName(tag *sitter.Node, source []byte) string {
	if tag == nil {
		return ""
	}
	name := tag.ChildByFieldName(FieldName)
	if name == nil || name.Type() != NodeIdentifier {
		return ""
	}
	return parser.GetNodeText(name, source)
}

// IsShorthandFragment reports whether node is a <>...</> fragment.
func IsShorthandFragment(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case NodeJSXFragment:
		return true
	case NodeJSXElement:
		open := OpeningElement(node)
		return open != nil && open.ChildByFieldName(FieldName) == nil
	}
	return false
}

// IsFragmentElement reports whether node is a <Fragment> or <React.Fragment> element.
func IsFragmentElement(node *sitter.Node, source []byte) bool {
	if node == nil || node.Type() != NodeJSXElement {
		return false
	}
	open := OpeningElement(node)
	if open == nil {
		return false
	}
	name := open.ChildByFieldName(FieldName)
	if name == nil {
		return false
	}
	switch name.Type() {
	case NodeIdentifier:
		return parser.GetNodeText(name, source) == "Fragment"
	case NodeMember, NodeNestedID:
		return parser.GetNodeText(name, source) == "React.Fragment"
	}
	return false
}

// Children returns the JSX children of an element or fragment, excluding its tags.
func Children(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case NodeJSXOpening, NodeJSXClosing, NodeComment:
			continue
		}
		out = append(out, child)
	}
	return out
}

// MeaningfulChildren drops whitespace-only text, empty {} and comment-only
// containers, and containers holding a blank string literal.
func MeaningfulChildren(children []*sitter.Node, source []byte) []*sitter.Node {
	var out []*sitter.Node
	for _, child := range children {
		switch child.Type() {
		case NodeJSXText:
			if strings.TrimSpace(parser.GetNodeText(child, source)) == "" {
				continue
			}
		case NodeJSXExpression:
			expr := ContainerExpression(child)
			if expr == nil {
				continue
			}
			if s, ok := StringValue(expr, source); ok && strings.TrimSpace(s) == "" {
				continue
			}
		}
		out = append(out, child)
	}
	return out
}

// ContainerExpression returns the expression inside a {...} container, or nil
// when the container is empty or holds only comments.
func ContainerExpression(container *sitter.Node) *sitter.Node {
	if container == nil || container.Type() != NodeJSXExpression {
		return nil
	}
	return FirstExpression(container)
}

// Attributes returns the jsx_attribute nodes of an opening or self-closing tag.
// Spread attributes are skipped.
func Attributes(tag *sitter.Node) []*sitter.Node {
	return parser.FindChildrenByType(tag, NodeJSXAttribute)
}

// AttributeName returns the name of a jsx_attribute, including any namespace.
func AttributeName(attr *sitter.Node, source []byte) string {
	if attr == nil || attr.NamedChildCount() == 0 {
		return ""
	}
	return parser.GetNodeText(attr.NamedChild(0), source)
}

// AttributeValue returns the value node of a jsx_attribute, or nil for a bare attribute.
func AttributeValue(attr *sitter.Node) *sitter.Node {
	if attr == nil || attr.NamedChildCount() < 2 {
		return nil
	}
	return attr.NamedChild(int(attr.NamedChildCount()) - 1)
}

// FindAttribute returns the first attribute of tag with the given name.
func FindAttribute(tag *sitter.Node, name string, source []byte) *sitter.Node {
	for _, attr := range Attributes(tag) {
		if AttributeName(attr, source) == name {
			return attr
		}
	}
	return nil
}
