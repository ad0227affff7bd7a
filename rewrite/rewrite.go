// Package rewrite applies dictionary translations back into source files.
package rewrite

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hanscan/hanscan"
	"github.com/hanscan/hanscan/extract"
	"github.com/hanscan/hanscan/scanner"
)

var (
	doubleQuotedRe = regexp.MustCompile(`"([^"\n]*)"`)
	singleQuotedRe = regexp.MustCompile(`'([^'\n]*)'`)
	rawQuotedRe    = regexp.MustCompile("`([^`\n]*)`")
)

// runeLiteralExts are languages where single quotes delimit character or
// rune literals rather than strings. Rewriting those would change code, not
// text, so the single-quote pass skips them.
var runeLiteralExts = map[string]bool{
	".go": true, ".c": true, ".h": true, ".cpp": true, ".hpp": true,
	".java": true, ".cs": true, ".rs": true, ".kt": true, ".scala": true,
	".m": true,
}

// FileRewriter rewrites files line by line, translating or removing
// comments, docstrings, and string literal contents according to its
// configuration. Code structure outside those spans is never modified.
type FileRewriter struct {
	cfg hanscan.Config
	sc  *scanner.Scanner
}

// New creates a FileRewriter for the given configuration.
func New(cfg hanscan.Config) *FileRewriter {
	return &FileRewriter{cfg: cfg, sc: scanner.New(cfg)}
}

// RewriteFile rewrites path in place using dict, returning whether the
// content changed. When BackupOriginal is set, the original is copied to a
// .bak sibling before being overwritten. Output is always UTF-8.
func (r *FileRewriter) RewriteFile(path string, dict *hanscan.Dict) (bool, error) {
	content, err := r.sc.ReadFileText(path)
	if err != nil {
		return false, err
	}

	seg := hanscan.NewSegmenter(dict)
	var rewritten string
	if r.cfg.DocExtensions[strings.ToLower(filepath.Ext(path))] {
		rewritten = r.RewriteProse(content, seg)
	} else {
		rewritten = r.RewriteContent(path, content, seg)
	}
	if rewritten == content {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if r.cfg.BackupOriginal {
		if err := os.WriteFile(path+".bak", []byte(content), info.Mode().Perm()); err != nil {
			return false, err
		}
	}
	if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

// Per-line rewriting state.
type lineState int

const (
	stateCode lineState = iota
	stateDocstring
	stateBlockComment
)

// RewriteContent runs the per-line state machine over content. The path is
// consulted only for its extension, which decides how quotes are treated.
// Every input line produces exactly one output line except intentional
// drops (removed comments and docstrings).
func (r *FileRewriter) RewriteContent(path, content string, seg *hanscan.Segmenter) string {
	ext := strings.ToLower(filepath.Ext(path))
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	state := stateCode
	quote := ""

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		switch state {
		case stateDocstring:
			closing := strings.HasSuffix(stripped, quote)
			if closing {
				state = stateCode
			}
			if r.cfg.RemoveDocstrings {
				continue
			}
			if closing {
				body := strings.TrimSuffix(stripped, quote)
				if strings.TrimSpace(body) == "" {
					out = append(out, line)
				} else {
					out = append(out, indent+seg.Translate(body)+quote)
				}
			} else if stripped == "" {
				out = append(out, line)
			} else {
				out = append(out, indent+seg.Translate(stripped))
			}

		case stateBlockComment:
			if strings.Contains(stripped, "*/") {
				state = stateCode
			}
			if r.cfg.RemoveComments {
				continue
			}
			out = append(out, r.translateBlockLine(line, stripped, indent, seg))

		case stateCode:
			produced, drop := r.rewriteCodeLine(line, stripped, indent, ext, seg, &state, &quote)
			if drop {
				continue
			}
			out = append(out, produced)
		}
	}

	return strings.Join(out, "\n")
}

// rewriteCodeLine handles a line encountered in CODE state. The returned
// bool reports that the line was dropped.
func (r *FileRewriter) rewriteCodeLine(line, stripped, indent, ext string, seg *hanscan.Segmenter, state *lineState, quote *string) (string, bool) {
	switch {
	case strings.HasPrefix(stripped, `"""`) || strings.HasPrefix(stripped, "'''"):
		q := stripped[:3]
		rest := stripped[3:]

		if len(rest) >= 3 && strings.HasSuffix(rest, q) {
			// Single-line docstring: opens and closes on one line.
			if r.cfg.RemoveDocstrings {
				return "", true
			}
			inner := strings.TrimSuffix(rest, q)
			if strings.TrimSpace(inner) == "" {
				return line, false
			}
			return indent + q + seg.Translate(inner) + q, false
		}

		// Multi-line docstring opens here.
		*state = stateDocstring
		*quote = q
		if r.cfg.RemoveDocstrings {
			return "", true
		}
		if strings.TrimSpace(rest) == "" {
			return line, false
		}
		return indent + q + seg.Translate(rest), false

	case strings.HasPrefix(stripped, "#"):
		return r.fullLineComment(line, stripped, indent, "#", seg)

	case strings.HasPrefix(stripped, "//"):
		return r.fullLineComment(line, stripped, indent, "//", seg)

	case strings.HasPrefix(stripped, "/*"):
		body := stripped[2:]
		closes := strings.Contains(body, "*/")
		if !closes {
			*state = stateBlockComment
		}
		if r.cfg.RemoveComments {
			return "", true
		}
		if !hanscan.ContainsHan(body) {
			return line, false
		}
		inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(body), "*/"))
		if closes {
			return indent + "/* " + seg.Translate(inner) + " */", false
		}
		return indent + "/* " + seg.Translate(inner), false

	default:
		if marker, idx := extract.InlineCommentIndex(line); idx >= 0 {
			code := line[:idx]
			comment := line[idx+len(marker):]
			if r.cfg.RemoveComments {
				return strings.TrimRight(code, " \t"), false
			}
			body := strings.TrimSpace(comment)
			if body == "" || !hanscan.ContainsHan(body) {
				return line, false
			}
			return code + marker + " " + seg.Translate(body), false
		}
		return r.translateLiterals(line, ext, seg), false
	}
}

func (r *FileRewriter) fullLineComment(line, stripped, indent, marker string, seg *hanscan.Segmenter) (string, bool) {
	if r.cfg.RemoveComments {
		return "", true
	}
	body := strings.TrimSpace(stripped[len(marker):])
	if body == "" || !hanscan.ContainsHan(body) {
		return line, false
	}
	return indent + marker + " " + seg.Translate(body), false
}

// translateBlockLine rewrites a line inside a /* */ block, preserving the
// conventional leading asterisk.
func (r *FileRewriter) translateBlockLine(line, stripped, indent string, seg *hanscan.Segmenter) string {
	if !hanscan.ContainsHan(stripped) {
		return line
	}
	body := stripped
	prefix := ""
	if strings.HasPrefix(body, "*") {
		prefix = "* "
		body = strings.TrimSpace(strings.TrimPrefix(body, "*"))
	}
	suffix := ""
	if idx := strings.Index(body, "*/"); idx >= 0 {
		suffix = " */"
		body = strings.TrimSpace(body[:idx])
	}
	return indent + prefix + seg.Translate(body) + suffix
}

// translateLiterals rewrites string literal contents on a regular code
// line. Only literals containing Han runes are touched; everything outside
// quotes is preserved verbatim. Single quotes are skipped for languages
// where they form rune literals, and backtick raw strings are handled for
// Go sources.
func (r *FileRewriter) translateLiterals(line, ext string, seg *hanscan.Segmenter) string {
	if !hanscan.ContainsHan(line) {
		return line
	}
	translate := func(re *regexp.Regexp, q string) {
		line = re.ReplaceAllStringFunc(line, func(m string) string {
			inner := m[1 : len(m)-1]
			if !hanscan.ContainsHan(inner) {
				return m
			}
			return q + seg.Translate(inner) + q
		})
	}
	translate(doubleQuotedRe, `"`)
	if !runeLiteralExts[ext] {
		translate(singleQuotedRe, "'")
	}
	if ext == ".go" {
		translate(rawQuotedRe, "`")
	}
	return line
}

// RewriteProse translates document lines wholesale. Layout and non-Han
// lines are preserved; markup characters survive through the segmenter's
// pass-through behaviour.
func (r *FileRewriter) RewriteProse(content string, seg *hanscan.Segmenter) string {
	lines := strings.Split(content, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if !hanscan.ContainsHan(stripped) {
			out[i] = line
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		out[i] = indent + seg.Translate(stripped)
	}
	return strings.Join(out, "\n")
}

// Verify FileRewriter implements SpanRewriter
var _ hanscan.SpanRewriter = (*FileRewriter)(nil)
