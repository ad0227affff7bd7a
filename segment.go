package hanscan

import "strings"

// MaxPhraseLen is the longest dictionary key, in runes, the segmenter will
// try to match greedily at each position. It must stay at or above the rune
// length of the longest key that should ever match mid-text.
const MaxPhraseLen = 15

// Segmenter rewrites text by greedy longest-match substitution against a
// phrase dictionary. It is deterministic and side-effect free.
type Segmenter struct {
	dict *Dict
}

// NewSegmenter creates a segmenter over the given dictionary.
func NewSegmenter(dict *Dict) *Segmenter {
	if dict == nil {
		dict = NewDict()
	}
	return &Segmenter{dict: dict}
}

// Translate renders text through the dictionary.
//
// An exact dictionary hit on the trimmed text wins outright, so known full
// sentences translate as complete idiomatic English instead of token salad.
// Otherwise the text is scanned left to right over runes; at each position
// the longest matching dictionary key (up to MaxPhraseLen runes) is
// substituted, and a substitution identical to the previous output token is
// suppressed. Runs of unmatched runes pass through verbatim. The result is
// normalized: adjacent duplicate words collapse to one and whitespace runs
// collapse to a single space.
func (s *Segmenter) Translate(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	if target, ok := s.dict.Get(trimmed); ok {
		return target
	}

	runes := []rune(trimmed)
	var tokens []string
	lastWasLiteral := false

	for i := 0; i < len(runes); {
		maxLen := MaxPhraseLen
		if rem := len(runes) - i; rem < maxLen {
			maxLen = rem
		}

		matched := false
		for length := maxLen; length >= 1; length-- {
			sub := string(runes[i : i+length])
			target, ok := s.dict.Get(sub)
			if !ok {
				continue
			}
			// Suppress a translation identical to the previous one.
			if len(tokens) == 0 || tokens[len(tokens)-1] != target {
				tokens = append(tokens, target)
			}
			lastWasLiteral = false
			i += length
			matched = true
			break
		}
		if matched {
			continue
		}

		// No dictionary hit: the rune passes through verbatim. Consecutive
		// literal runes stay contiguous so untranslatable text survives
		// intact rather than being spaced apart.
		ch := string(runes[i])
		if lastWasLiteral {
			tokens[len(tokens)-1] += ch
		} else {
			tokens = append(tokens, ch)
			lastWasLiteral = true
		}
		i++
	}

	return collapseDuplicateWords(strings.Join(tokens, " "))
}

// collapseDuplicateWords removes immediately repeated whitespace-delimited
// words and normalizes whitespace runs to single spaces.
func collapseDuplicateWords(text string) string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, w := range fields {
		if len(out) > 0 && out[len(out)-1] == w {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
