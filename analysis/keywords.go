package analysis

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxKeywords   = 12
	minTokenLen   = 4
	maxTokenLen   = 24
	excerptBefore = 180
	excerptAfter  = 260
	maxExcerpts   = 8
)

// foldDiacritics strips combining marks so "sentença" and "sentenca" rank
// as the same token. The transform chain is built per call: chained
// transformers carry internal buffers and are not safe to share.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// KeywordExtractor ranks the most frequent meaningful tokens of a text,
// after folding diacritics and dropping a fixed legal/grammatical stopword
// list.
type KeywordExtractor struct {
	stop map[string]struct{}
}

// NewKeywordExtractor creates an extractor over the tables' stopword list.
func NewKeywordExtractor(t *Tables) *KeywordExtractor {
	stop := make(map[string]struct{}, len(t.Stopwords))
	for _, w := range t.Stopwords {
		stop[foldDiacritics(w)] = struct{}{}
	}
	return &KeywordExtractor{stop: stop}
}

// Extract returns up to twelve tokens ranked by frequency. Ties keep
// first-occurrence order so the result is deterministic.
func (e *KeywordExtractor) Extract(text string) []string {
	t := foldDiacritics(strings.ToLower(boundText(text, maxRulingLen)))
	if t == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, t)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, w := range strings.Fields(cleaned) {
		if len(w) < minTokenLen || len(w) > maxTokenLen {
			continue
		}
		if _, skip := e.stop[w]; skip {
			continue
		}
		if _, ok := freq[w]; !ok {
			firstSeen[w] = order
			order++
		}
		freq[w]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words
}

// excerptWindows returns short text windows around the first occurrence of
// each needle, deduplicated and capped at maxExcerpts. Needles must
// already be lower-case; windows are cut from the lower-cased text, since
// ToLower can change byte length and indexes into it do not transfer back
// to the original.
func excerptWindows(src string, needles []string) []string {
	lower := strings.ToLower(boundText(src, maxRulingLen))
	if lower == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, n := range needles {
		idx := strings.Index(lower, n)
		if idx < 0 {
			continue
		}
		start := idx - excerptBefore
		if start < 0 {
			start = 0
		}
		end := idx + excerptAfter
		if end > len(lower) {
			end = len(lower)
		}
		for start < len(lower) && !utf8.RuneStart(lower[start]) {
			start++
		}
		for end > start && end < len(lower) && !utf8.RuneStart(lower[end]) {
			end--
		}
		window := strings.TrimSpace(lower[start:end])
		if _, dup := seen[window]; dup {
			continue
		}
		seen[window] = struct{}{}
		out = append(out, window)
		if len(out) == maxExcerpts {
			break
		}
	}
	return out
}
