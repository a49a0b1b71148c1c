package textkit

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	sentenceSplitRe   = regexp.MustCompile(`[.!?]+`)
	digitRe           = regexp.MustCompile(`\d`)
	addressesReaderRe = regexp.MustCompile(`(?i)\byou\b|\byour\b`)
)

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount counts runes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// SentenceCount counts segments split on sentence-ending punctuation runs.
// Trailing punctuation yields a trailing empty segment which is counted,
// matching the behavior the scoring tables were tuned against.
func SentenceCount(s string) int {
	return len(sentenceSplitRe.Split(s, -1))
}

// EstimateSyllables approximates syllables by counting vowel groups, with a
// decrement for a trailing silent e. Always at least 1.
func EstimateSyllables(text string) int {
	text = strings.ToLower(text)
	count := 0
	prevVowel := false
	for _, r := range text {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(text, "e") {
		count--
	}
	if count <= 0 {
		count = 1
	}
	return count
}

// Sentiment scores emotional tone from a neutral baseline of 50: +10 for each
// word containing a positive marker, -10 for each containing a negative one,
// clamped to [0,100].
func Sentiment(s string, positive, negative []string) int {
	words := strings.Fields(strings.ToLower(s))
	score := 50
	for _, word := range words {
		for _, p := range positive {
			if strings.Contains(word, p) {
				score += 10
				break
			}
		}
		for _, n := range negative {
			if strings.Contains(word, n) {
				score -= 10
				break
			}
		}
	}
	return Clamp(score, 0, 100)
}

// Readability is a simplified Flesch Reading Ease approximation, clamped
// to [0,100]. Empty input reads as 100.
func Readability(s string) float64 {
	wordCount := WordCount(s)
	if wordCount == 0 {
		return 100
	}
	sentenceCount := SentenceCount(s)
	syllableCount := EstimateSyllables(s)

	score := 100 - (float64(wordCount)/float64(sentenceCount))*1.015 - (float64(syllableCount)/float64(wordCount))*84.6
	return math.Max(0, math.Min(100, score))
}

// ContainsAny reports whether the lowercased input contains any of the given
// lowercase markers as a substring.
func ContainsAny(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// CountMatches counts how many markers appear in the lowercased input.
func CountMatches(s string, markers []string) int {
	lower := strings.ToLower(s)
	n := 0
	for _, m := range markers {
		if strings.Contains(lower, m) {
			n++
		}
	}
	return n
}

// HasNumber reports whether s contains a digit.
func HasNumber(s string) bool {
	return digitRe.MatchString(s)
}

// AddressesReader reports whether s speaks to the reader ("you"/"your").
func AddressesReader(s string) bool {
	return addressesReaderRe.MatchString(s)
}

// StartsWithAny reports whether the lowercased input starts with any prefix.
func StartsWithAny(s string, prefixes []string) bool {
	lower := strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// HasEmoji reports whether s contains a rune in the main emoji blocks.
func HasEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F300 && r <= 0x1F9FF {
			return true
		}
	}
	return false
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds half away from zero.
func Round(f float64) int {
	return int(math.Round(f))
}

// Band is one rung of a verdict ladder.
type Band struct {
	Min   int
	Label string
}

// Ladder maps a score to a verdict label. Bands are ordered highest first;
// the last band should have Min 0.
type Ladder []Band

// Verdict returns the label of the first band whose threshold the score meets.
func (l Ladder) Verdict(score int) string {
	for _, b := range l {
		if score >= b.Min {
			return b.Label
		}
	}
	return ""
}
