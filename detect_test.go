package hanscan

import (
	"reflect"
	"testing"
)

func TestContainsHan(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"配置文件", true},
		{"load 配置 here", true},
		{"hello world", false},
		{"", false},
		{"日本語のひらがな", false}, // kana only, no ideographs
		{"漢字", true},
		{"123!@#", false},
	}

	for _, tt := range tests {
		if got := ContainsHan(tt.text); got != tt.want {
			t.Errorf("ContainsHan(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSplitPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "comma separated",
			text: "加载配置，返回结果",
			want: []string{"加载配置", "返回结果"},
		},
		{
			name: "mixed punctuation",
			text: "错误：文件不存在！",
			want: []string{"错误", "文件不存在"},
		},
		{
			name: "no han",
			text: "just english, nothing else",
			want: nil,
		},
		{
			name: "single rune fragments dropped",
			text: "读（写）",
			want: nil,
		},
		{
			name: "url fragments dropped",
			text: "见http://example.com/配置",
			want: nil,
		},
		{
			name: "embedded quotes dropped",
			text: `参数"名称"无效`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPhrases(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPhrases(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitPhrases_NewlineAndSpace(t *testing.T) {
	got := SplitPhrases("配置文件\n返回结果 测试函数")
	want := []string{"返回结果", "测试函数", "配置文件"}

	if len(got) != len(want) {
		t.Fatalf("Expected %d phrases, got %v", len(want), got)
	}
	seen := make(map[string]bool)
	for _, p := range got {
		seen[p] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("Expected phrase %q in %v", w, got)
		}
	}
}
