package extract

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hanscan/hanscan"
)

// GoExtractor is the structured strategy for Go sources: it parses the file
// and collects doc comments, ordinary comments, string literals, and
// identifiers that carry Han runes.
type GoExtractor struct{}

// Extract parses content as a Go source file. On a syntax error it degrades
// to the line-based strategy and returns the fallback result together with
// an ExtractError the caller should log as a warning.
func (GoExtractor) Extract(path, content string) (*Result, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filepath.Base(path), content, parser.ParseComments)
	if err != nil {
		res, _ := TextExtractor{}.Extract(path, content)
		return res, &hanscan.ExtractError{
			Path:    path,
			Message: "parse failed, used line-based fallback",
			Cause:   err,
		}
	}

	res := &Result{}
	docComments := collectDocComments(file)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			text := commentText(c.Text)
			if !hanscan.ContainsHan(text) {
				continue
			}
			pos := fset.Position(c.Pos())
			end := fset.Position(c.End())
			span := hanscan.Span{
				Kind:      hanscan.SpanLineComment,
				Path:      path,
				StartLine: pos.Line,
				EndLine:   end.Line,
				Text:      text,
			}
			if docComments[c] {
				span.Kind = hanscan.SpanDocstring
				res.Docstrings = append(res.Docstrings, span)
			} else {
				res.Comments = append(res.Comments, span)
			}
		}
	}

	seen := make(map[string]bool)
	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.BasicLit:
			if node.Kind != token.STRING {
				return true
			}
			// Unquote so \uXXXX escapes decode to the Han runes they
			// encode. Unquote handles raw strings too.
			text, uerr := strconv.Unquote(node.Value)
			if uerr != nil {
				text = strings.Trim(node.Value, "`\"")
			}
			if !hanscan.ContainsHan(text) {
				return true
			}
			pos := fset.Position(node.Pos())
			res.Strings = append(res.Strings, hanscan.Span{
				Kind:      hanscan.SpanStringLiteral,
				Path:      path,
				StartLine: pos.Line,
				EndLine:   fset.Position(node.End()).Line,
				Text:      text,
			})
		case *ast.Ident:
			if !hanscan.ContainsHan(node.Name) || seen[node.Name] {
				return true
			}
			seen[node.Name] = true
			pos := fset.Position(node.Pos())
			res.Identifiers = append(res.Identifiers, hanscan.Span{
				Kind:      hanscan.SpanIdentifier,
				Path:      path,
				StartLine: pos.Line,
				EndLine:   pos.Line,
				Text:      node.Name,
			})
		}
		return true
	})

	return res, nil
}

// collectDocComments marks the comments that document a declaration or the
// file itself. These play the role docstrings play elsewhere.
func collectDocComments(file *ast.File) map[*ast.Comment]bool {
	docs := make(map[*ast.Comment]bool)

	mark := func(cg *ast.CommentGroup) {
		if cg == nil {
			return
		}
		for _, c := range cg.List {
			docs[c] = true
		}
	}

	mark(file.Doc)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			mark(d.Doc)
		case *ast.GenDecl:
			mark(d.Doc)
			for _, spec := range d.Specs {
				switch sp := spec.(type) {
				case *ast.TypeSpec:
					mark(sp.Doc)
				case *ast.ValueSpec:
					mark(sp.Doc)
				}
			}
		}
	}
	return docs
}

// commentText strips the comment markers from a Go comment.
func commentText(comment string) string {
	if strings.HasPrefix(comment, "//") {
		return strings.TrimSpace(comment[2:])
	}
	if strings.HasPrefix(comment, "/*") && strings.HasSuffix(comment, "*/") {
		return strings.TrimSpace(comment[2 : len(comment)-2])
	}
	return ""
}

// Verify GoExtractor implements Extractor
var _ Extractor = GoExtractor{}
