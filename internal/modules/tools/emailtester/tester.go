package emailtester

import (
	"math"
	"regexp"
	"strings"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

var spamWords = []string{
	"free", "guarantee", "winner", "prize", "cash", "money", "income",
	"earn", "extra", "home based", "work from home", "make money",
	"million", "billion", "risk free", "special promotion", "click here",
	"subscribe", "order now", "buy now", "discount", "deal", "offer",
	"limited time", "act now", "urgent", "important", "alert", "warning",
	"congratulations", "help", "reminder", "sale", "clearance", "bargain",
}

var powerWords = []string{
	"you", "your", "discover", "secret", "proven", "instant", "easy",
	"simple", "quick", "fast", "amazing", "incredible", "unbelievable",
	"exclusive", "limited", "new", "improved", "advanced", "premium",
	"ultimate", "complete", "comprehensive", "essential", "must-have",
}

type benchmark struct {
	openRate  float64
	clickRate float64
}

var industryBenchmarks = map[string]benchmark{
	"ecommerce":     {openRate: 18.0, clickRate: 2.6},
	"saas":          {openRate: 22.1, clickRate: 3.2},
	"education":     {openRate: 20.5, clickRate: 2.8},
	"health":        {openRate: 23.4, clickRate: 3.1},
	"finance":       {openRate: 21.8, clickRate: 2.9},
	"entertainment": {openRate: 25.2, clickRate: 3.5},
}

func analyzeSpamWords(subject string) SpamAnalysis {
	lower := strings.ToLower(subject)
	found := []string{}
	for _, w := range spamWords {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}

	risk := "low"
	switch {
	case len(found) >= 3:
		risk = "high"
	case len(found) >= 1:
		risk = "medium"
	}
	return SpamAnalysis{FoundWords: found, Count: len(found), Risk: risk}
}

func hasPersonalization(subject string) bool {
	return strings.Contains(subject, "{name}") || strings.Contains(subject, "{firstName}")
}

// overallScore weighs length (optimal 28-39 chars), word count (3-7),
// personalization tokens, power words, and emoji, then penalizes by spam risk.
func overallScore(subject string, spam SpamAnalysis) int {
	length := textkit.CharCount(subject)
	words := textkit.WordCount(subject)
	score := 0

	switch {
	case length >= 28 && length <= 39:
		score += 30
	case length >= 20 && length <= 50:
		score += 20
	case length >= 15 && length <= 60:
		score += 10
	default:
		score += 5
	}

	switch {
	case words >= 3 && words <= 7:
		score += 20
	case words >= 2 && words <= 10:
		score += 15
	default:
		score += 5
	}

	if hasPersonalization(subject) {
		score += 15
	}

	switch spam.Risk {
	case "high":
		score -= 30
	case "medium":
		score -= 15
	}

	powerCount := textkit.CountMatches(subject, powerWords)
	bonus := powerCount * 5
	if bonus > 15 {
		bonus = 15
	}
	score += bonus

	if textkit.HasEmoji(subject) && length <= 35 {
		score += 5
	}

	return textkit.Clamp(score, 0, 100)
}

func predictedMetrics(score int, industry, subject string) PredictedMetrics {
	b, ok := industryBenchmarks[industry]
	if !ok {
		b = industryBenchmarks["ecommerce"]
	}
	multiplier := float64(score) / 100

	openRate := b.openRate * (0.7 + multiplier*0.6)
	clickRate := b.clickRate * (0.6 + multiplier*0.8)
	spamRisk := math.Max(0, 100-openRate*3)
	mobile := math.Max(0, 100-math.Abs(35-float64(textkit.CharCount(subject)))*2)

	return PredictedMetrics{
		OpenRate:    math.Min(40, math.Round(openRate*10)/10),
		ClickRate:   math.Min(8, math.Round(clickRate*10)/10),
		SpamScore:   textkit.Round(spamRisk),
		MobileScore: textkit.Clamp(textkit.Round(mobile), 0, 100),
	}
}

func strengths(subject string, spam SpamAnalysis) []string {
	out := []string{}
	length := textkit.CharCount(subject)

	if length >= 28 && length <= 39 {
		out = append(out, "Optimal length for email clients")
	}
	if hasPersonalization(subject) {
		out = append(out, "Personalization increases engagement")
	}
	if spam.Risk == "low" {
		out = append(out, "Low spam risk - good deliverability")
	}
	if textkit.HasNumber(subject) {
		out = append(out, "Numbers can increase open rates")
	}
	if length <= 50 {
		out = append(out, "Good length for mobile devices")
	}
	if textkit.HasEmoji(subject) && length <= 35 {
		out = append(out, "Strategic emoji use can stand out")
	}

	if len(out) == 0 {
		return []string{"Good starting point - consider the suggestions below"}
	}
	return out
}

func improvements(subject string, spam SpamAnalysis) []string {
	out := []string{}
	length := textkit.CharCount(subject)

	if length > 60 {
		out = append(out, "Consider shortening for mobile preview")
	} else if length < 20 {
		out = append(out, "Add more context to increase relevance")
	}
	if !hasPersonalization(subject) {
		out = append(out, "Add personalization (e.g., {name})")
	}
	switch spam.Risk {
	case "high":
		out = append(out, "Remove spam trigger words")
	case "medium":
		out = append(out, "Consider reducing spam trigger words")
	}
	if !textkit.HasNumber(subject) {
		out = append(out, "Consider adding numbers for specificity")
	}

	if len(out) == 0 {
		return []string{"Subject line looks good! Test different variations"}
	}
	return out
}

var trailingDotRe = regexp.MustCompile(`\.$`)
var spaceRunRe = regexp.MustCompile(`\s+`)

func suggestions(subject string, score int, spam SpamAnalysis) []Suggestion {
	out := []Suggestion{}

	if !strings.Contains(subject, "{name}") {
		out = append(out, Suggestion{
			Text:  "{name}, " + subject,
			Score: textkit.Clamp(score+15, 0, 100),
			Type:  "personalized",
		})
	}

	if textkit.CharCount(subject) > 40 {
		out = append(out, Suggestion{
			Text:  textkit.Truncate(subject, 40),
			Score: textkit.Clamp(score+10, 0, 100),
			Type:  "shortened",
		})
	}

	if !strings.Contains(subject, "?") {
		out = append(out, Suggestion{
			Text:  trailingDotRe.ReplaceAllString(subject, "") + "?",
			Score: textkit.Clamp(score+8, 0, 100),
			Type:  "question",
		})
	}

	if len(spam.FoundWords) > 0 {
		clean := subject
		for _, w := range spam.FoundWords {
			re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(w))
			if err != nil {
				continue
			}
			clean = re.ReplaceAllString(clean, "")
		}
		clean = strings.TrimSpace(spaceRunRe.ReplaceAllString(clean, " "))
		if textkit.CharCount(clean) > 10 {
			out = append(out, Suggestion{
				Text:  clean,
				Score: textkit.Clamp(score+20, 0, 100),
				Type:  "clean",
			})
		}
	}

	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

// Test scores an email subject line. Fully deterministic: same input, same report.
func Test(input TestDTO) (*Result, error) {
	subject := input.SubjectLine
	if strings.TrimSpace(subject) == "" {
		return nil, ErrEmptySubjectLine
	}

	sender := input.SenderName
	if sender == "" {
		sender = "Your Company"
	}

	spam := analyzeSpamWords(subject)
	score := overallScore(subject, spam)

	return &Result{
		SubjectLine:      subject,
		SenderName:       sender,
		EmailType:        input.EmailType,
		Audience:         input.Audience,
		Industry:         input.Industry,
		CharCount:        textkit.CharCount(subject),
		WordCount:        textkit.WordCount(subject),
		OverallScore:     score,
		SpamAnalysis:     spam,
		PredictedMetrics: predictedMetrics(score, input.Industry, subject),
		Strengths:        strengths(subject, spam),
		Improvements:     improvements(subject, spam),
		Suggestions:      suggestions(subject, score, spam),
	}, nil
}
