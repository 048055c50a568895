// Package markdown provides AST-based document analysis for status reporting.
//
// This is the precise complement to the regex heuristic in internal/integrity:
// integrity compares two texts cheaply after a translation round-trip, while
// this package answers "what is in this document" questions (outline, link
// inventory, title) for the status command. It is an analysis API only; it
// never re-renders markdown.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/mdtranslate/internal/frontmatter"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level int
	Text  string
}

// Stats summarizes the structure of one markdown body.
type Stats struct {
	Headings   []Heading
	Links      int
	Images     int
	CodeBlocks int
}

// Analyze parses a markdown body (frontmatter already removed) and collects
// its outline and element counts.
func Analyze(body []byte) Stats {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var stats Stats
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			stats.Headings = append(stats.Headings, Heading{
				Level: node.Level,
				Text:  nodeText(node, body),
			})
		case *gmast.Link, *gmast.AutoLink:
			stats.Links++
		case *gmast.Image:
			stats.Images++
		case *gmast.FencedCodeBlock, *gmast.CodeBlock:
			stats.CodeBlocks++
		}
		return gmast.WalkContinue, nil
	})
	return stats
}

// Title returns the best available document title: the frontmatter `title`
// field when present, else the first level-1 heading, else "".
func Title(content []byte) string {
	body := content
	if block, had, err := frontmatter.Detect(content); err == nil && had {
		if fields, perr := frontmatter.Parse(block.Raw); perr == nil {
			if title, ok := fields["title"].(string); ok && title != "" {
				return title
			}
		}
		body = content[block.End:]
	}

	for _, h := range Analyze(body).Headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}

// nodeText flattens the literal text of a node's inline children.
func nodeText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			buf.Write(node.Segment.Value(source))
		case *gmast.CodeSpan, *gmast.Emphasis:
			buf.WriteString(nodeText(node, source))
		}
	}
	return buf.String()
}
