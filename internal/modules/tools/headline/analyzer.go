package headline

import (
	"fmt"
	"strings"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

var powerWords = []string{
	"amazing", "best", "brilliant", "essential", "exclusive", "expert",
	"free", "guaranteed", "instant", "limited", "new", "powerful",
	"proven", "revolutionary", "secret", "simple", "ultimate", "winning",
}

var negativeWords = []string{
	"avoid", "bad", "beware", "difficult", "disaster", "fail",
	"horrible", "mistake", "never", "terrible", "warning", "worst",
}

var questionWords = []string{"how", "what", "why", "when", "where", "who", "which", "are", "can", "do", "does", "is", "will"}

type contentTypeConfig struct {
	wordCount        [2]int
	charCount        [2]int
	optimalSentiment int
}

var contentTypeConfigs = map[string]contentTypeConfig{
	"blog":    {wordCount: [2]int{8, 14}, charCount: [2]int{50, 70}, optimalSentiment: 60},
	"news":    {wordCount: [2]int{6, 12}, charCount: [2]int{40, 60}, optimalSentiment: 50},
	"product": {wordCount: [2]int{5, 10}, charCount: [2]int{40, 60}, optimalSentiment: 70},
	"email":   {wordCount: [2]int{4, 8}, charCount: [2]int{30, 50}, optimalSentiment: 65},
	"social":  {wordCount: [2]int{5, 10}, charCount: [2]int{40, 60}, optimalSentiment: 65},
	"ad":      {wordCount: [2]int{4, 8}, charCount: [2]int{30, 50}, optimalSentiment: 75},
}

type platformConfig struct {
	maxCharCount       int
	recommendsQuestion bool
	recommendsNumbers  bool
}

var platformConfigs = map[string]platformConfig{
	"web":       {maxCharCount: 60, recommendsQuestion: true, recommendsNumbers: true},
	"facebook":  {maxCharCount: 80, recommendsQuestion: true, recommendsNumbers: true},
	"twitter":   {maxCharCount: 280, recommendsQuestion: true, recommendsNumbers: true},
	"linkedin":  {maxCharCount: 120, recommendsQuestion: false, recommendsNumbers: true},
	"instagram": {maxCharCount: 125, recommendsQuestion: false, recommendsNumbers: true},
	"email":     {maxCharCount: 50, recommendsQuestion: true, recommendsNumbers: false},
}

func configFor(contentType string) contentTypeConfig {
	if cfg, ok := contentTypeConfigs[contentType]; ok {
		return cfg
	}
	return contentTypeConfigs["blog"]
}

func platformFor(platform string) platformConfig {
	if cfg, ok := platformConfigs[platform]; ok {
		return cfg
	}
	return platformConfigs["web"]
}

func sentiment(h string) int {
	return textkit.Sentiment(h, powerWords, negativeWords)
}

func isQuestion(h string) bool {
	return strings.Contains(h, "?") || textkit.StartsWithAny(h, questionWords)
}

// overallScore grades four weighted components (word count, length,
// sentiment, readability) at 25 points each, then adds 5-point bonuses for
// power words, numbers, question framing, and reader address.
func overallScore(h, contentType string) int {
	cfg := configFor(contentType)
	wordCount := textkit.WordCount(h)
	charCount := textkit.CharCount(h)
	sentimentScore := sentiment(h)
	readabilityScore := textkit.Readability(h)

	score := 0

	switch {
	case wordCount >= cfg.wordCount[0] && wordCount <= cfg.wordCount[1]:
		score += 25
	case wordCount >= cfg.wordCount[0]-2 && wordCount <= cfg.wordCount[1]+2:
		score += 15
	default:
		score += 5
	}

	switch {
	case charCount >= cfg.charCount[0] && charCount <= cfg.charCount[1]:
		score += 25
	case charCount >= cfg.charCount[0]-10 && charCount <= cfg.charCount[1]+10:
		score += 15
	default:
		score += 5
	}

	diff := sentimentScore - cfg.optimalSentiment
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 10:
		score += 25
	case diff <= 20:
		score += 15
	default:
		score += 5
	}

	switch {
	case readabilityScore >= 70:
		score += 25
	case readabilityScore >= 50:
		score += 15
	default:
		score += 5
	}

	if textkit.ContainsAny(h, powerWords) {
		score += 5
	}
	if textkit.HasNumber(h) {
		score += 5
	}
	if isQuestion(h) {
		score += 5
	}
	if textkit.AddressesReader(h) {
		score += 5
	}

	return textkit.Clamp(score, 0, 100)
}

func strengths(h, contentType string) []string {
	cfg := configFor(contentType)
	out := []string{}
	wordCount := textkit.WordCount(h)
	charCount := textkit.CharCount(h)
	sentimentScore := sentiment(h)
	readabilityScore := textkit.Readability(h)

	if wordCount >= cfg.wordCount[0] && wordCount <= cfg.wordCount[1] {
		out = append(out, "Optimal word count for engagement")
	}
	if charCount >= cfg.charCount[0] && charCount <= cfg.charCount[1] {
		out = append(out, "Ideal length for maximum impact")
	}
	if sentimentScore > 60 {
		out = append(out, "Positive emotional appeal")
	} else if sentimentScore >= 40 {
		out = append(out, "Neutral and professional tone")
	}
	if readabilityScore > 70 {
		out = append(out, "Easy to read and understand")
	}
	if textkit.ContainsAny(h, powerWords) {
		out = append(out, "Includes attention-grabbing power words")
	}
	if textkit.HasNumber(h) {
		out = append(out, "Numbers add specificity and credibility")
	}
	if isQuestion(h) {
		out = append(out, "Question format engages curiosity")
	}
	if textkit.AddressesReader(h) {
		out = append(out, "Directly addresses the reader")
	}
	return out
}

func improvements(h, contentType, platform string) []string {
	cfg := configFor(contentType)
	pf := platformFor(platform)
	if platform == "" {
		platform = "web"
	}
	out := []string{}
	wordCount := textkit.WordCount(h)
	charCount := textkit.CharCount(h)
	sentimentScore := sentiment(h)
	readabilityScore := textkit.Readability(h)

	if wordCount < cfg.wordCount[0] {
		out = append(out, "Consider adding more words for better context")
	} else if wordCount > cfg.wordCount[1] {
		out = append(out, "Consider shortening for better readability")
	}
	if charCount > pf.maxCharCount {
		out = append(out, fmt.Sprintf("Shorten to avoid truncation (max %d chars for %s)", pf.maxCharCount, platform))
	}
	if sentimentScore < 40 {
		out = append(out, "Consider making the tone more positive")
	}
	if readabilityScore < 50 {
		out = append(out, "Simplify language for better readability")
	}
	if !textkit.ContainsAny(h, powerWords) {
		out = append(out, "Add power words to increase click-through rate")
	}
	if pf.recommendsNumbers && !textkit.HasNumber(h) {
		out = append(out, "Consider adding numbers for better performance")
	}
	if pf.recommendsQuestion && !isQuestion(h) {
		out = append(out, "Try a question format to pique interest")
	}
	if !textkit.AddressesReader(h) {
		out = append(out, "Address the reader directly for better connection")
	}
	return out
}

var (
	altNumbers    = []string{"5", "7", "10", "15"}
	altPowerWords = []string{"Amazing", "Incredible", "Proven", "Secret", "Ultimate"}
)

// alternatives rewrites the headline in four fixed formats: question,
// numbered list, power-word lead, and benefit framing. Each variant is
// rescored against the blog/web baseline plus a small random lift.
func alternatives(h string, src textkit.Source) []Alternative {
	variants := make([]string, 0, 4)

	if strings.Contains(h, "?") {
		variants = append(variants, strings.Replace(h, "?", " - The Ultimate Guide", 1))
	} else {
		variants = append(variants, fmt.Sprintf("Is %s The Right Solution For You?", strings.ToLower(h)))
	}

	if textkit.HasNumber(h) {
		variants = append(variants, h)
	} else {
		variants = append(variants, altNumbers[src.IntN(len(altNumbers))]+" "+h)
	}

	variants = append(variants, altPowerWords[src.IntN(len(altPowerWords))]+" "+h)
	variants = append(variants, fmt.Sprintf("How %s Can Transform Your Results", strings.ToLower(h)))

	out := make([]Alternative, 0, len(variants))
	for _, v := range variants {
		score := overallScore(v, "blog") + src.IntN(10) + 5
		out = append(out, Alternative{Text: v, Score: textkit.Clamp(score, 0, 100)})
	}
	return out
}

// Analyze scores a headline and produces rewrite suggestions. The src only
// drives the alternative variants, so the report itself is deterministic.
func Analyze(input AnalyzeDTO, src textkit.Source) (*Result, error) {
	h := input.Headline
	if strings.TrimSpace(h) == "" {
		return nil, ErrEmptyHeadline
	}

	wordCount := textkit.WordCount(h)
	charCount := textkit.CharCount(h)

	return &Result{
		OverallScore: overallScore(h, input.ContentType),
		Metrics: Metrics{
			WordCount:        wordCount,
			CharCount:        charCount,
			SentimentScore:   sentiment(h),
			ReadabilityScore: textkit.Round(textkit.Readability(h)),
		},
		Strengths:    strengths(h, input.ContentType),
		Improvements: improvements(h, input.ContentType, input.Platform),
		Alternatives: alternatives(h, src),
		Analysis: Flags{
			HasPowerWords:   textkit.ContainsAny(h, powerWords),
			HasNumbers:      textkit.HasNumber(h),
			IsQuestion:      isQuestion(h),
			AddressesReader: textkit.AddressesReader(h),
			OptimalLength:   wordCount >= 6 && wordCount <= 12,
			OptimalChars:    charCount >= 50 && charCount <= 60,
		},
	}, nil
}
