package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Kind identifies the node variants the rest of the program consumes.
// Anything goldmark produces beyond this set maps to KindOther.
type Kind int

const (
	KindDocument Kind = iota
	KindHeading
	KindList
	KindListItem
	KindParagraph
	KindLink
	KindText
	KindEmphasis
	KindStrong
	KindCodeSpan
	KindOther
)

// Node is a parser-neutral markdown tree node. Consumers work against
// this type only, so the underlying engine can be swapped without
// touching them.
type Node struct {
	Kind     Kind
	Depth    int    // heading level, zero elsewhere
	Literal  string // text or inline-code content, empty elsewhere
	Children []*Node
}

// First returns the first child, or nil.
func (n *Node) First() *Node {
	return n.Nth(0)
}

// Nth returns the i-th child, or nil when out of range.
func (n *Node) Nth(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// The engine is stateless, a single instance is safe to share.
var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse parses markdown source and returns the document root of the
// neutral tree.
func Parse(source []byte) *Node {
	return convert(engine.Parser().Parse(text.NewReader(source)), source)
}

func convert(n ast.Node, source []byte) *Node {
	node := &Node{Kind: kindOf(n)}

	switch t := n.(type) {
	case *ast.Heading:
		node.Depth = t.Level
	case *ast.Text:
		node.Literal = string(t.Segment.Value(source))
		return node
	case *ast.CodeSpan:
		node.Literal = segmentText(t, source)
		return node
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		node.Children = append(node.Children, convert(c, source))
	}
	return node
}

func kindOf(n ast.Node) Kind {
	switch t := n.(type) {
	case *ast.Document:
		return KindDocument
	case *ast.Heading:
		return KindHeading
	case *ast.List:
		return KindList
	case *ast.ListItem:
		return KindListItem
	// Tight lists wrap item content in a TextBlock instead of a
	// Paragraph; both carry the same paragraph role here.
	case *ast.Paragraph, *ast.TextBlock:
		return KindParagraph
	case *ast.Link:
		return KindLink
	case *ast.Text:
		return KindText
	case *ast.Emphasis:
		if t.Level >= 2 {
			return KindStrong
		}
		return KindEmphasis
	case *ast.CodeSpan:
		return KindCodeSpan
	default:
		return KindOther
	}
}

func segmentText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
