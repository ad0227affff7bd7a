package hanscan

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// hanRe matches one or more CJK Unified Ideographs (U+4E00..U+9FFF).
// Other CJK blocks (extensions, compatibility ideographs) are intentionally
// out of scope.
var hanRe = regexp.MustCompile(`[\x{4e00}-\x{9fff}]+`)

// ContainsHan reports whether text contains at least one Han ideograph.
// This single predicate gates every extraction decision.
func ContainsHan(text string) bool {
	return text != "" && hanRe.MatchString(text)
}

// phraseDelimiters is the fixed, ordered list of split points used to break
// long extracted strings into independently translatable fragments. Order
// matters: multi-character markers are split before the single characters
// they contain.
var phraseDelimiters = []string{
	"，", "。", "）", "（", "(", ")", "<", ">", "[", "]", "【", "】",
	"？", "：", ":", ",", "#", "\n", ";", "`", " ", "---", "- ",
	"！", "!", "、", "…", "～",
}

// urlFragments mark fragments that must not be split out for translation.
var urlFragments = []string{".com", ".org", ".net", "http", "www."}

// SplitPhrases breaks an extracted string into translatable sub-phrases by
// repeatedly splitting on phraseDelimiters. Fragments shorter than two runes,
// containing a URL substring, containing an embedded quote, or looking like a
// comment marker are discarded. Fragments without Han runes are dropped.
func SplitPhrases(text string) []string {
	text = strings.TrimSpace(text)
	if !ContainsHan(text) {
		return nil
	}

	parts := []string{text}
	for _, delim := range phraseDelimiters {
		var next []string
		for _, part := range parts {
			if !strings.Contains(part, delim) {
				if ContainsHan(part) {
					next = append(next, part)
				}
				continue
			}
			for _, p := range strings.Split(part, delim) {
				p = strings.TrimSpace(p)
				if ContainsHan(p) {
					next = append(next, p)
				}
			}
		}
		parts = next
	}

	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) < 2 {
			continue
		}
		if hasURLFragment(p) || strings.ContainsAny(p, `"'`) {
			continue
		}
		if strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/*") {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasURLFragment(s string) bool {
	lower := strings.ToLower(s)
	for _, frag := range urlFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
