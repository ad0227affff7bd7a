package extract

import (
	"strings"

	"github.com/hanscan/hanscan"
)

// DocExtractor handles prose documents such as Markdown and plain text.
// There is no comment or string structure to honor; every line carrying Han
// runes is a translatable span.
type DocExtractor struct{}

// Extract returns one prose span per line that contains Han text. Markup
// characters stay inside the span text; phrase splitting strips them later.
func (DocExtractor) Extract(path, content string) (*Result, error) {
	res := &Result{}
	for i, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if !hanscan.ContainsHan(stripped) {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		res.Prose = append(res.Prose, hanscan.Span{
			Kind:      hanscan.SpanProse,
			Path:      path,
			StartLine: i + 1,
			EndLine:   i + 1,
			Text:      stripped,
			Indent:    indent,
		})
	}
	return res, nil
}

// Verify DocExtractor implements Extractor
var _ Extractor = DocExtractor{}
