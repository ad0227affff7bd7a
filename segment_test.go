package hanscan

import (
	"strings"
	"testing"
)

func TestTranslate_ExactMatchPriority(t *testing.T) {
	dict := NewDict(
		PhraseEntry{"配置和返回结果", "configuration and return result"},
		PhraseEntry{"配置", "WRONG"},
		PhraseEntry{"结果", "WRONG"},
	)
	seg := NewSegmenter(dict)

	got := seg.Translate("配置和返回结果")
	if got != "configuration and return result" {
		t.Errorf("Expected exact-match translation, got %q", got)
	}
}

func TestTranslate_GreedySegmentation(t *testing.T) {
	dict := NewDict(
		PhraseEntry{"配置", "configuration"},
		PhraseEntry{"结果", "result"},
	)
	seg := NewSegmenter(dict)

	got := seg.Translate("配置结果")
	if got != "configuration result" {
		t.Errorf("Expected %q, got %q", "configuration result", got)
	}
}

func TestTranslate_PrefersLongestMatch(t *testing.T) {
	dict := NewDict(
		PhraseEntry{"服务", "service"},
		PhraseEntry{"服务器", "server"},
		PhraseEntry{"配置", "configuration"},
	)
	seg := NewSegmenter(dict)

	got := seg.Translate("服务器配置")
	if got != "server configuration" {
		t.Errorf("Expected longest match to win, got %q", got)
	}
}

func TestTranslate_EnglishTextUnchanged(t *testing.T) {
	seg := NewSegmenter(BuiltinDict())

	tests := []string{
		"hello world",
		"return the result",
		"x := compute(y)",
	}

	for _, text := range tests {
		if got := seg.Translate(text); got != text {
			t.Errorf("Translate(%q) = %q, want unchanged", text, got)
		}
	}
}

func TestTranslate_UnmatchedRunesPassThrough(t *testing.T) {
	dict := NewDict(PhraseEntry{"配置", "configuration"})
	seg := NewSegmenter(dict)

	got := seg.Translate("加载配置")
	if !strings.Contains(got, "configuration") {
		t.Errorf("Expected translated fragment in %q", got)
	}
	if !strings.Contains(got, "加载") {
		t.Errorf("Expected unmatched runes to survive contiguously in %q", got)
	}
}

func TestTranslate_NoAdjacentDuplicates(t *testing.T) {
	dict := NewDict(
		PhraseEntry{"配置", "config"},
		PhraseEntry{"设置", "config"},
		PhraseEntry{"结果", "result"},
	)
	seg := NewSegmenter(dict)

	inputs := []string{
		"配置设置",
		"配置配置结果",
		"设置配置设置",
	}

	for _, in := range inputs {
		fields := strings.Fields(seg.Translate(in))
		for i := 1; i < len(fields); i++ {
			if fields[i] == fields[i-1] {
				t.Errorf("Translate(%q) = %q has adjacent duplicate %q",
					in, strings.Join(fields, " "), fields[i])
			}
		}
	}
}

func TestTranslate_EmptyAndWhitespace(t *testing.T) {
	seg := NewSegmenter(BuiltinDict())

	if got := seg.Translate(""); got != "" {
		t.Errorf("Expected empty string unchanged, got %q", got)
	}
	if got := seg.Translate("   "); got != "   " {
		t.Errorf("Expected whitespace-only input unchanged, got %q", got)
	}
}

func TestTranslate_EmptyDictIdentity(t *testing.T) {
	seg := NewSegmenter(NewDict())

	if got := seg.Translate("hello"); got != "hello" {
		t.Errorf("Expected identity with empty dictionary, got %q", got)
	}
}

func TestCollapseDuplicateWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"config config file", "config file"},
		{"a  b   c", "a b c"},
		{"result result result", "result"},
		{"one two one", "one two one"},
	}

	for _, tt := range tests {
		if got := collapseDuplicateWords(tt.in); got != tt.want {
			t.Errorf("collapseDuplicateWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
