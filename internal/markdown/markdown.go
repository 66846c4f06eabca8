// Package markdown inspects and renders built blog posts with Goldmark.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one ATX or setext heading found in a document.
type Heading struct {
	Level int
	Text  string
}

// Stats counts the block structure of a document.
type Stats struct {
	Headings   int
	Paragraphs int
	ListItems  int
}

// ParseBody parses a Markdown body (frontmatter already removed) into a Goldmark AST.
func ParseBody(body []byte) gmast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(body))
}

// Outline returns the document's headings in document order.
func Outline(body []byte) []Heading {
	root := ParseBody(body)

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			headings = append(headings, Heading{Level: h.Level, Text: inlineText(h, body)})
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return headings
}

// Summarize counts headings, paragraphs and list items.
func Summarize(body []byte) Stats {
	var s Stats
	_ = gmast.Walk(ParseBody(body), func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch n.Kind() {
		case gmast.KindHeading:
			s.Headings++
		case gmast.KindParagraph:
			s.Paragraphs++
		case gmast.KindListItem:
			s.ListItems++
		}
		return gmast.WalkContinue, nil
	})
	return s
}

// RenderHTML renders a Markdown body to HTML.
func RenderHTML(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inlineText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
