package extract

import (
	"testing"

	"github.com/hanscan/hanscan"
)

func kinds(spans []hanscan.Span) map[hanscan.SpanKind]int {
	m := make(map[hanscan.SpanKind]int)
	for _, s := range spans {
		m[s.Kind]++
	}
	return m
}

func TestTextExtractor_Comments(t *testing.T) {
	content := "# 这是注释\n" +
		"x = 1  # 行尾注释\n" +
		"// 另一条注释\n" +
		"y = 2\n"

	res, err := TextExtractor{}.Extract("script.py", content)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	k := kinds(res.Comments)
	if k[hanscan.SpanLineComment] != 2 {
		t.Errorf("Expected 2 full-line comments, got %d", k[hanscan.SpanLineComment])
	}
	if k[hanscan.SpanInlineComment] != 1 {
		t.Errorf("Expected 1 inline comment, got %d", k[hanscan.SpanInlineComment])
	}
}

func TestTextExtractor_Docstrings(t *testing.T) {
	content := `def f():
    """加载配置
    并返回结果
    """
    return 1
`
	res, err := TextExtractor{}.Extract("script.py", content)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(res.Docstrings) != 2 {
		t.Fatalf("Expected 2 docstring line spans, got %d: %v",
			len(res.Docstrings), res.Docstrings)
	}
	if res.Docstrings[0].StartLine != 2 {
		t.Errorf("Expected docstring to start on line 2, got %d", res.Docstrings[0].StartLine)
	}
}

func TestTextExtractor_SingleLineDocstring(t *testing.T) {
	content := `def f():
    """单行文档"""
    return 1
`
	res, err := TextExtractor{}.Extract("script.py", content)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(res.Docstrings) != 1 || res.Docstrings[0].Text != "单行文档" {
		t.Errorf("Unexpected docstrings: %v", res.Docstrings)
	}
}

func TestTextExtractor_StringLiterals(t *testing.T) {
	content := `msg = "配置错误"
label = '未找到'
plain = "no chinese here"
`
	res, err := TextExtractor{}.Extract("script.py", content)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(res.Strings) != 2 {
		t.Fatalf("Expected 2 string spans, got %d: %v", len(res.Strings), res.Strings)
	}
	texts := map[string]bool{}
	for _, s := range res.Strings {
		texts[s.Text] = true
	}
	if !texts["配置错误"] || !texts["未找到"] {
		t.Errorf("Unexpected string texts: %v", texts)
	}
}

func TestTextExtractor_BlockComments(t *testing.T) {
	content := `/* 块注释开始
 * 中间内容
 */
code();
`
	res, err := TextExtractor{}.Extract("app.js", content)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(res.Comments) != 2 {
		t.Errorf("Expected 2 block comment spans, got %d: %v", len(res.Comments), res.Comments)
	}
}

func TestTextExtractor_MixedIdentifiers(t *testing.T) {
	content := "def get配置(): pass\n"

	res, err := TextExtractor{}.Extract("script.py", content)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(res.Identifiers) != 1 || res.Identifiers[0].Text != "get配置" {
		t.Errorf("Unexpected identifiers: %v", res.Identifiers)
	}
}

func TestInlineCommentIndex(t *testing.T) {
	tests := []struct {
		line       string
		wantMarker string
		wantIdx    int
	}{
		{"x = 1  # 注释", "#", 7},
		{"y = 2 // comment", "//", 6},
		{`s = "a # b"`, "", -1},
		{`s = 'c // d'`, "", -1},
		{"plain code", "", -1},
	}

	for _, tt := range tests {
		marker, idx := InlineCommentIndex(tt.line)
		if marker != tt.wantMarker || idx != tt.wantIdx {
			t.Errorf("InlineCommentIndex(%q) = (%q, %d), want (%q, %d)",
				tt.line, marker, idx, tt.wantMarker, tt.wantIdx)
		}
	}
}
