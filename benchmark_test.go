package hanscan

import "testing"

func BenchmarkTranslate_ExactMatch(b *testing.B) {
	seg := NewSegmenter(BuiltinDict())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seg.Translate("配置和返回结果")
	}
}

func BenchmarkTranslate_Segmented(b *testing.B) {
	seg := NewSegmenter(BuiltinDict())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seg.Translate("加载配置文件并返回结果然后处理错误")
	}
}

func BenchmarkTranslate_English(b *testing.B) {
	seg := NewSegmenter(BuiltinDict())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seg.Translate("already english text that needs no work")
	}
}

func BenchmarkSplitPhrases(b *testing.B) {
	text := "加载配置，返回结果。处理错误：文件不存在！"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SplitPhrases(text)
	}
}

func BenchmarkContainsHan(b *testing.B) {
	text := "a fairly long line of plain english source code with no ideographs at all"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ContainsHan(text)
	}
}
