// Package extract locates translatable spans in source files.
//
// Two strategies exist: a structured one backed by the Go parser for Go
// sources, and a line-based one for everything else. HTML gets its own
// DOM-aware extractor. All extractors gate every decision on the Han-script
// predicate and never fail hard on malformed input: the structured strategy
// degrades to the line-based one.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/hanscan/hanscan"
)

// Result groups extracted spans by kind.
type Result struct {
	Comments    []hanscan.Span
	Docstrings  []hanscan.Span
	Strings     []hanscan.Span
	Identifiers []hanscan.Span
	Prose       []hanscan.Span
}

// Empty reports whether no spans were extracted.
func (r *Result) Empty() bool {
	return len(r.Comments) == 0 && len(r.Docstrings) == 0 &&
		len(r.Strings) == 0 && len(r.Identifiers) == 0 && len(r.Prose) == 0
}

// Spans returns every span in kind order.
func (r *Result) Spans() []hanscan.Span {
	out := make([]hanscan.Span, 0,
		len(r.Comments)+len(r.Docstrings)+len(r.Strings)+len(r.Identifiers)+len(r.Prose))
	out = append(out, r.Comments...)
	out = append(out, r.Docstrings...)
	out = append(out, r.Strings...)
	out = append(out, r.Identifiers...)
	out = append(out, r.Prose...)
	return out
}

// Phrases splits the span texts into unique translatable phrases, in
// first-seen order. Comment, docstring, and string spans go through
// hanscan.SplitPhrases; identifiers are taken whole.
func (r *Result) Phrases() []string {
	seen := make(map[string]bool)
	var out []string

	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, span := range r.Spans() {
		if span.Kind == hanscan.SpanIdentifier {
			add(strings.TrimSpace(span.Text))
			continue
		}
		for _, p := range hanscan.SplitPhrases(span.Text) {
			add(p)
		}
	}
	return out
}

// Extractor locates translatable spans in file content.
type Extractor interface {
	// Extract returns the spans found in content. A non-nil error alongside
	// a non-nil result signals a recovered degradation (e.g. parse failure
	// with line-based fallback); callers log it and keep the result.
	Extract(path, content string) (*Result, error)
}

// ForFile selects the extraction strategy for a file path by extension.
// Document extensions get the prose extractor; scanners with a configured
// document set override this choice themselves.
func ForFile(path string) Extractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return GoExtractor{}
	case ".html", ".htm":
		return HTMLExtractor{}
	case ".txt", ".md", ".rst", ".csv", ".sample":
		return DocExtractor{}
	default:
		return TextExtractor{}
	}
}
