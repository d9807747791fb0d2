package jsast

import (
	"strconv"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/parser"
)

// UnquoteString returns the value of a JavaScript string literal.
// Escapes Go cannot decode leave the inner text as written.
func UnquoteString(text string) string {
	if len(text) < 2 {
		return text
	}

	first, last := text[0], text[len(text)-1]
	if first != last || (first != '"' && first != '\'' && first != '`') {
		return text
	}
	inner := text[1 : len(text)-1]

	switch first {
	case '`':
		return inner
	case '\'':
		// strconv.Unquote only understands double quotes.
		converted := strings.ReplaceAll(inner, `\'`, `'`)
		converted = `"` + strings.ReplaceAll(converted, `"`, `\"`) + `"`
		if s, err := strconv.Unquote(converted); err == nil {
			return s
		}
		return inner
	default:
		if s, err := strconv.Unquote(text); err == nil {
			return s
		}
		return inner
	}
}

// StringValue returns the value of a string literal node.
// ok is false for any other node type.
func StringValue(node *sitter.Node, source []byte) (value string, ok bool) {
	if node == nil || node.Type() != NodeString {
		return "", false
	}
	return UnquoteString(parser.GetNodeText(node, source)), true
}

// JSXStringValue returns the value of a quoted JSX attribute value.
// JSX attribute strings have no escape sequences.
func JSXStringValue(node *sitter.Node, source []byte) (value string, ok bool) {
	if node == nil || node.Type() != NodeString {
		return "", false
	}
	text := parser.GetNodeText(node, source)
	if len(text) < 2 {
		return "", true
	}
	return text[1 : len(text)-1], true
}

// HasSubstitutions reports whether a template literal contains ${...} parts.
func HasSubstitutions(template *sitter.Node) bool {
	for i := 0; i < int(template.NamedChildCount()); i++ {
		if child := template.NamedChild(i); child != nil && child.Type() == NodeTemplateSub {
			return true
		}
	}
	return false
}

// TemplateText returns the raw text of a template literal without its
// backticks and with every ${...} substitution removed. Escapes are kept as written.
func TemplateText(template *sitter.Node, source []byte) string {
	if template == nil || template.Type() != NodeTemplate {
		return ""
	}
	start, end := template.StartByte()+1, template.EndByte()-1
	if end < start || int(end) > len(source) {
		return ""
	}

	var b strings.Builder
	pos := start
	for i := 0; i < int(template.NamedChildCount()); i++ {
		child := template.NamedChild(i)
		if child == nil || child.Type() != NodeTemplateSub {
			continue
		}
		if child.StartByte() > pos {
			b.Write(source[pos:child.StartByte()])
		}
		pos = child.EndByte()
	}
	if end > pos {
		b.Write(source[pos:end])
	}
	return b.String()
}

// TemplateValue is TemplateText with escape sequences decoded, so `\u0023fff` reads as "#fff".
func TemplateValue(template *sitter.Node, source []byte) string {
	return CookTemplate(TemplateText(template, source))
}

// CookTemplate decodes the escape sequences of raw template literal text.
// Unknown escapes yield the escaped character; malformed ones are kept as written.
func CookTemplate(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for len(raw) > 0 {
		if raw[0] != '\\' || len(raw) == 1 {
			b.WriteByte(raw[0])
			raw = raw[1:]
			continue
		}

		switch c := raw[1]; c {
		case '`', '$', '\'', '"':
			b.WriteByte(c)
			raw = raw[2:]
			continue
		case '\n':
			raw = raw[2:]
			continue
		case '\r':
			raw = strings.TrimPrefix(raw[2:], "\n")
			continue
		case '0':
			if len(raw) == 2 || raw[2] < '0' || raw[2] > '9' {
				b.WriteByte(0)
				raw = raw[2:]
				continue
			}
		case 'u':
			if len(raw) > 2 && raw[2] == '{' {
				if r, n, ok := codePointEscape(raw); ok {
					b.WriteRune(r)
					raw = raw[n:]
					continue
				}
				b.WriteString(raw[:2])
				raw = raw[2:]
				continue
			}
		case 'U':
			b.WriteByte(c)
			raw = raw[2:]
			continue
		}

		r, _, tail, err := strconv.UnquoteChar(raw, 0)
		if err != nil {
			if c := raw[1]; c == 'x' || c == 'u' {
				b.WriteString(raw[:2])
			} else {
				b.WriteByte(c)
			}
			raw = raw[2:]
			continue
		}
		b.WriteRune(r)
		raw = tail
	}
	return b.String()
}

// codePointEscape decodes a \u{...} escape at the start of s.
func codePointEscape(s string) (r rune, n int, ok bool) {
	end := strings.IndexByte(s, '}')
	if end < 4 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[3:end], 16, 32)
	if err != nil || v > unicode.MaxRune {
		return 0, 0, false
	}
	return rune(v), end + 1, true
}

// UnwrapParens returns the expression inside any number of parentheses.
func UnwrapParens(node *sitter.Node) *sitter.Node {
	for node != nil && node.Type() == NodeParens {
		node = FirstExpression(node)
	}
	return node
}

// FirstExpression returns the first named child of node that is not a comment.
func FirstExpression(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Type() != NodeComment {
			return child
		}
	}
	return nil
}

// IsFunction reports whether node is a function or arrow function expression.
func IsFunction(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case NodeArrowFunction, NodeFunctionExpr, NodeFunctionLegacy, NodeGeneratorExpr:
		return true
	}
	return false
}

// Pairs returns the key/value pairs of an object literal.
// Shorthand properties, methods and spreads are skipped.
func Pairs(object *sitter.Node) []*sitter.Node {
	return parser.FindChildrenByType(object, NodePair)
}
