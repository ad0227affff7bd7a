package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hanscan/hanscan"
)

// TextExtractor is the unstructured, line-based strategy used for any file
// without a dedicated parser. It approximates comment and string detection
// with regexes and quote counting.
type TextExtractor struct{}

var (
	tripleDoubleRe = regexp.MustCompile(`(?s)"""(.*?)"""`)
	tripleSingleRe = regexp.MustCompile(`(?s)'''(.*?)'''`)
	doubleQuoteRe  = regexp.MustCompile(`"([^"\n]*)"`)
	singleQuoteRe  = regexp.MustCompile(`'([^'\n]*)'`)
	// Identifiers mixing ASCII letters and Han runes. Pure-Han identifiers
	// are a known blind spot of the line-based strategy.
	identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*[\x{4e00}-\x{9fff}]+[A-Za-z0-9_\x{4e00}-\x{9fff}]*`)
)

type lineState int

const (
	stateCode lineState = iota
	stateDocstring
	stateBlockComment
)

// Extract scans content line by line for comments and docstrings, and with
// whole-content regexes for string literals and identifiers.
func (TextExtractor) Extract(path, content string) (*Result, error) {
	res := &Result{}

	starts := lineStarts(content)
	extractQuoted(res, path, content, starts)
	extractIdentifiers(res, path, content, starts)

	state := stateCode
	quote := ""

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		stripped := strings.TrimSpace(line)
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		switch state {
		case stateDocstring:
			text := stripped
			if strings.HasSuffix(stripped, quote) {
				text = strings.TrimSpace(strings.TrimSuffix(stripped, quote))
				state = stateCode
			}
			addSpan(&res.Docstrings, hanscan.SpanDocstring, path, lineNum, text, indent)

		case stateBlockComment:
			text := stripped
			if idx := strings.Index(text, "*/"); idx >= 0 {
				text = text[:idx]
				state = stateCode
			}
			text = strings.TrimSpace(strings.TrimPrefix(text, "*"))
			addSpan(&res.Comments, hanscan.SpanLineComment, path, lineNum, text, indent)

		case stateCode:
			switch {
			case strings.HasPrefix(stripped, `"""`) || strings.HasPrefix(stripped, "'''"):
				quote = stripped[:3]
				rest := stripped[3:]
				if len(rest) >= 3 && strings.HasSuffix(rest, quote) {
					// Single-line docstring
					addSpan(&res.Docstrings, hanscan.SpanDocstring, path, lineNum,
						strings.TrimSuffix(rest, quote), indent)
				} else {
					state = stateDocstring
					addSpan(&res.Docstrings, hanscan.SpanDocstring, path, lineNum,
						strings.TrimSpace(rest), indent)
				}

			case strings.HasPrefix(stripped, "#"):
				addSpan(&res.Comments, hanscan.SpanLineComment, path, lineNum,
					strings.TrimSpace(stripped[1:]), indent)

			case strings.HasPrefix(stripped, "//"):
				addSpan(&res.Comments, hanscan.SpanLineComment, path, lineNum,
					strings.TrimSpace(stripped[2:]), indent)

			case strings.HasPrefix(stripped, "/*"):
				body := stripped[2:]
				if idx := strings.Index(body, "*/"); idx >= 0 {
					body = body[:idx]
				} else {
					state = stateBlockComment
				}
				addSpan(&res.Comments, hanscan.SpanLineComment, path, lineNum,
					strings.TrimSpace(body), indent)

			default:
				if marker, idx := InlineCommentIndex(line); idx >= 0 {
					addSpan(&res.Comments, hanscan.SpanInlineComment, path, lineNum,
						strings.TrimSpace(line[idx+len(marker):]), indent)
				}
			}
		}
	}

	return res, nil
}

func addSpan(dst *[]hanscan.Span, kind hanscan.SpanKind, path string, line int, text, indent string) {
	if !hanscan.ContainsHan(text) {
		return
	}
	*dst = append(*dst, hanscan.Span{
		Kind:      kind,
		Path:      path,
		StartLine: line,
		EndLine:   line,
		Text:      text,
		Indent:    indent,
	})
}

// extractQuoted collects string literal spans. Triple-quoted spans are
// matched first across the whole content; plain quoted spans per line.
func extractQuoted(res *Result, path, content string, starts []int) {
	for _, re := range []*regexp.Regexp{tripleDoubleRe, tripleSingleRe} {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			text := content[m[2]:m[3]]
			if !hanscan.ContainsHan(text) {
				continue
			}
			res.Strings = append(res.Strings, hanscan.Span{
				Kind:      hanscan.SpanStringLiteral,
				Path:      path,
				StartLine: lineAt(starts, m[2]),
				EndLine:   lineAt(starts, m[3]),
				Text:      text,
			})
		}
	}
	for _, re := range []*regexp.Regexp{doubleQuoteRe, singleQuoteRe} {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			text := content[m[2]:m[3]]
			if !hanscan.ContainsHan(text) {
				continue
			}
			line := lineAt(starts, m[2])
			res.Strings = append(res.Strings, hanscan.Span{
				Kind:      hanscan.SpanStringLiteral,
				Path:      path,
				StartLine: line,
				EndLine:   line,
				Text:      text,
			})
		}
	}
}

func extractIdentifiers(res *Result, path, content string, starts []int) {
	seen := make(map[string]bool)
	for _, m := range identRe.FindAllStringIndex(content, -1) {
		name := content[m[0]:m[1]]
		if !hanscan.ContainsHan(name) || seen[name] {
			continue
		}
		seen[name] = true
		line := lineAt(starts, m[0])
		res.Identifiers = append(res.Identifiers, hanscan.Span{
			Kind:      hanscan.SpanIdentifier,
			Path:      path,
			StartLine: line,
			EndLine:   line,
			Text:      name,
		})
	}
}

// InlineCommentIndex finds the first # or // marker that sits outside any
// quoted string, using quote-count parity to approximate in-string state.
// Returns the marker and its byte index, or ("", -1).
func InlineCommentIndex(line string) (string, int) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '#':
			if !inString(line, i) {
				return "#", i
			}
		case '/':
			if i+1 < len(line) && line[i+1] == '/' && !inString(line, i) {
				return "//", i
			}
		}
	}
	return "", -1
}

// inString reports whether pos falls inside a quoted string, judged by the
// parity of unescaped quote characters before it.
func inString(line string, pos int) bool {
	single, double := 0, 0
	for i := 0; i < pos; i++ {
		if i > 0 && line[i-1] == '\\' {
			continue
		}
		switch line[i] {
		case '\'':
			single++
		case '"':
			double++
		}
	}
	return single%2 == 1 || double%2 == 1
}

// lineStarts returns the byte offset of each line start.
func lineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineAt converts a byte offset to a 1-based line number.
func lineAt(starts []int, offset int) int {
	idx := sort.SearchInts(starts, offset+1)
	return idx
}

// Verify TextExtractor implements Extractor
var _ Extractor = TextExtractor{}
