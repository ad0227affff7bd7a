package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hanscan/hanscan"
)

// HTMLExtractor walks an HTML document and collects text nodes and comment
// nodes that carry Han runes. Script, style, and similar tags are skipped.
type HTMLExtractor struct{}

// skippedTags contains HTML tags whose content is never translatable.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// Extract parses content as HTML. The net/html parser is lenient, so this
// strategy has no fallback path; a hard parse error degrades to the
// line-based strategy like the structured one does.
func (HTMLExtractor) Extract(path, content string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		res, _ := TextExtractor{}.Extract(path, content)
		return res, &hanscan.ExtractError{
			Path:    path,
			Message: "HTML parse failed, used line-based fallback",
			Cause:   err,
		}
	}

	res := &Result{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedTags[strings.ToLower(n.Data)] {
			return
		}

		switch n.Type {
		case html.TextNode:
			text := strings.TrimSpace(n.Data)
			if hanscan.ContainsHan(text) {
				res.Strings = append(res.Strings, hanscan.Span{
					Kind: hanscan.SpanStringLiteral,
					Path: path,
					Text: text,
				})
			}
		case html.CommentNode:
			text := strings.TrimSpace(n.Data)
			if hanscan.ContainsHan(text) {
				res.Comments = append(res.Comments, hanscan.Span{
					Kind: hanscan.SpanLineComment,
					Path: path,
					Text: text,
				})
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}

	return res, nil
}

// Verify HTMLExtractor implements Extractor
var _ Extractor = HTMLExtractor{}
