package seometa

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

const (
	titleMin = 50
	titleMax = 60
	descMin  = 120
	descMax  = 155
)

var titlePatterns = textkit.Table{
	"blog": {
		"The Ultimate Guide to {keyword} | {year}",
		"{number} Best {keyword} Strategies That Actually Work",
		"How to {keyword}: Complete {year} Guide",
		"{keyword} Made Simple: Step-by-Step Tutorial",
	},
	"product": {
		"Buy {product} | {features} | {brand}",
		"{product} - {key benefit} | Free Shipping",
		"{product} Review: {year} Buyer's Guide",
		"Best {product} for {use case} | {brand}",
	},
	"service": {
		"{service} Services | {location} | {brand}",
		"Professional {service} | {benefits} | {brand}",
		"Best {service} Company | {year} | {location}",
		"{service} Made Easy | Get Quote | {brand}",
	},
	"landing": {
		"{offer} | {brand} | {benefit}",
		"Get {offer} Now | {time limit} | {brand}",
		"{solution} for {problem} | {brand}",
		"Transform Your {area} | {offer} | {brand}",
	},
	"homepage": {
		"{brand} | {primary offering} | {location}",
		"Welcome to {brand} | {tagline}",
		"{brand} - {primary benefit} | Since {year}",
		"Home of {specialty} | {brand}",
	},
	"article": {
		"{headline} | {year} News | {source}",
		"Breaking: {headline} | Latest Updates",
		"{headline}: What You Need to Know",
		"The Truth About {topic} | {year} Report",
	},
}

var descPatterns = textkit.Table{
	"blog": {
		"Learn how to {keyword} with our comprehensive guide. Discover {benefits} and get {results}. Start today!",
		"Want to {solve problem}? Our {year} guide shows you exactly how. Get {number} proven strategies and {benefit}.",
		"Discover the secrets of successful {keyword}. Learn {key points} and avoid common mistakes. Read now!",
	},
	"product": {
		"Shop {product} with {key features}. {benefits}. Free shipping and {guarantee}. Order now and save!",
		"Looking for the best {product}? Our {product} offers {features} and {benefits}. Buy now with confidence!",
		"Get amazing {results} with our {product}. Features include {key features}. {special offer}. Shop today!",
	},
	"service": {
		"Get professional {service} services with {benefits}. Serving {location}. Free consultation. Contact us today!",
		"Need reliable {service}? Our experts provide {quality} service with {guarantee}. Get free quote now!",
		"Top-rated {service} company. We offer {services} with {benefits}. {satisfaction guarantee}. Call today!",
	},
	"landing": {
		"Get {offer} and achieve {results}. Limited time offer. {number} people have already {achievement}. Join now!",
		"Stop {problem} and start {benefit}. Our {solution} delivers {results}. {guarantee}. Get started today!",
		"Discover how to {achieve goal} with our {solution}. {social proof}. {call to action}. Limited spots available!",
	},
	"homepage": {
		"{brand} provides {primary offering} with {key benefits}. Serving {location} since {year}. {call to action} today!",
		"Discover {primary offering} at {brand}. We specialize in {specialties} and deliver {results}. Learn more!",
		"Your trusted source for {primary offering}. {brand} offers {benefits} and {guarantee}. Visit us today!",
	},
	"article": {
		"Latest news on {topic}. Get the facts about {headline}. Stay informed with {source} coverage.",
		"Breaking news update: {headline}. Learn about {key points} and {implications}. Read full story.",
		"In-depth analysis of {topic}. Understand {headline} and its impact. Expert insights from {source}.",
	},
}

type toneTemplate struct {
	adjectives []string
	verbs      []string
	phrases    []string
	benefits   []string
}

var toneTemplates = map[string]toneTemplate{
	"professional": {
		adjectives: []string{"comprehensive", "professional", "advanced", "enterprise", "strategic", "expert"},
		verbs:      []string{"discover", "learn", "achieve", "optimize", "implement", "enhance"},
		phrases:    []string{"industry best practices", "proven strategies", "expert guidance", "professional solutions"},
		benefits:   []string{"improved performance", "increased efficiency", "better results", "enhanced productivity"},
	},
	"casual": {
		adjectives: []string{"awesome", "simple", "easy", "fun", "practical", "user-friendly"},
		verbs:      []string{"check out", "discover", "get", "try", "enjoy", "explore"},
		phrases:    []string{"you'll love", "super helpful", "game-changing tips", "must-have"},
		benefits:   []string{"save time", "have fun", "get better results", "make life easier"},
	},
	"authoritative": {
		adjectives: []string{"definitive", "comprehensive", "expert", "master", "ultimate", "premium"},
		verbs:      []string{"master", "dominate", "excel", "succeed", "win", "lead"},
		phrases:    []string{"must-know strategies", "industry secrets", "professional guidance", "expert insights"},
		benefits:   []string{"market leadership", "competitive advantage", "superior results", "industry recognition"},
	},
	"urgent": {
		adjectives: []string{"limited", "exclusive", "urgent", "time-sensitive", "last-chance", "once-in-a-lifetime"},
		verbs:      []string{"act now", "don't miss", "secure", "claim", "grab", "reserve"},
		phrases:    []string{"limited time offer", "while supplies last", "don't wait", "last chance"},
		benefits:   []string{"immediate results", "exclusive access", "special pricing", "priority treatment"},
	},
	"educational": {
		adjectives: []string{"educational", "informative", "comprehensive", "detailed", "thorough", "insightful"},
		verbs:      []string{"learn", "understand", "discover", "explore", "study", "master"},
		phrases:    []string{"step-by-step guide", "comprehensive tutorial", "in-depth analysis", "detailed explanation"},
		benefits:   []string{"deeper understanding", "new skills", "expert knowledge", "practical insights"},
	},
}

var powerWords = []string{
	"ultimate", "complete", "essential", "proven", "secret", "amazing",
	"incredible", "unbelievable", "revolutionary", "breakthrough", "exclusive",
	"limited", "free", "bonus", "instant", "easy", "simple", "quick", "fast",
	"guaranteed", "effective", "powerful", "professional", "premium", "advanced",
}

var listNumbers = []string{"5", "7", "10", "15", "21", "25"}

func toneFor(tone string) toneTemplate {
	if tt, ok := toneTemplates[tone]; ok {
		return tt
	}
	return toneTemplates["professional"]
}

func pick(src textkit.Source, items []string) string {
	return items[src.IntN(len(items))]
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	return strings.Trim(slugStripRe.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func randomProblem(src textkit.Source, keyword string) string {
	return pick(src, []string{
		"common " + keyword + " challenges",
		"struggling with " + keyword,
		keyword + " difficulties",
		"frustrating " + keyword + " issues",
		keyword + " problems",
	})
}

func randomGoal(src textkit.Source, keyword string) string {
	return pick(src, []string{
		"master " + keyword,
		"improve your " + keyword,
		"excel at " + keyword,
		"succeed with " + keyword,
		"become expert in " + keyword,
	})
}

func keywordFeatures(secondary []string) string {
	if len(secondary) > 0 {
		n := len(secondary)
		if n > 2 {
			n = 2
		}
		return strings.Join(secondary[:n], ", ")
	}
	return "advanced features, easy setup"
}

func generateTitle(contentType, tone, keyword string, pageTitle string, src textkit.Source, now time.Time) string {
	tt := toneFor(tone)
	pattern := pick(src, titlePatterns.EntriesOr(contentType, "blog"))
	year := strconv.Itoa(now.Year())

	headline := pageTitle
	if headline == "" {
		headline = keyword
	}

	title := textkit.Render(pattern, map[string]string{
		"{keyword}":  keyword,
		"{year}":     year,
		"{number}":   pick(src, listNumbers),
		"{product}":  keyword,
		"{service}":  keyword,
		"{brand}":    "Your Brand",
		"{location}": "Your Location",
		"{benefit}":  pick(src, tt.adjectives) + " Results",
		"{solution}": keyword + " Solution",
		"{problem}":  randomProblem(src, keyword),
		"{offer}":    keyword + " Offer",
		"{area}":     keyword,
		"{headline}": headline,
		"{topic}":    keyword,
		"{source}":   "Your Brand",
	})

	if textkit.CharCount(title) < 40 && src.IntN(2) == 0 {
		word := pick(src, powerWords)
		title = strings.ToUpper(word[:1]) + word[1:] + " " + title
	}

	return textkit.Truncate(title, titleMax)
}

func generateDescription(contentType, tone, keyword string, secondary []string, src textkit.Source, now time.Time) string {
	tt := toneFor(tone)
	pattern := pick(src, descPatterns.EntriesOr(contentType, "blog"))
	lower := strings.ToLower(keyword)

	desc := textkit.Render(pattern, map[string]string{
		"{keyword}":     lower,
		"{product}":     lower,
		"{service}":     lower,
		"{topic}":       lower,
		"{year}":        strconv.Itoa(now.Year()),
		"{number}":      pick(src, listNumbers),
		"{brand}":       "our company",
		"{location}":    "your area",
		"{benefits}":    pick(src, tt.adjectives) + " results",
		"{features}":    keywordFeatures(secondary),
		"{results}":     pick(src, tt.verbs) + " amazing outcomes",
		"{goal}":        randomGoal(src, keyword),
		"{problem}":     randomProblem(src, keyword),
		"{solution}":    keyword + " solution",
		"{achievement}": pick(src, []string{"transformed their business", "achieved amazing results", "doubled their traffic", "improved their rankings"}),
		"{offer}":       "special offer",
		"{guarantee}":   "satisfaction guarantee",
		"{quality}":     pick(src, tt.adjectives),
		"{specialties}": strings.Join(secondary, ", "),
		"{headline}":    keyword,
		"{key points}":  keywordFeatures(secondary),
		"{implications}": "important implications",
	})

	if len(secondary) > 0 && textkit.CharCount(desc) < 100 {
		n := len(secondary)
		if n > 2 {
			n = 2
		}
		desc += " Features " + strings.Join(secondary[:n], ", ") + "."
	}

	if !strings.Contains(desc, "!") && textkit.CharCount(desc) < 130 {
		desc += " " + pick(src, []string{"Start today!", "Learn more!", "Get started!", "Try now!"})
	}

	return textkit.Truncate(desc, descMax)
}

func keywordSuggestions(keyword string, secondary []string) []string {
	base := []string{
		keyword,
		"best " + keyword,
		keyword + " tips",
		keyword + " guide",
		"how to " + keyword,
		keyword + " strategies",
		keyword + " techniques",
		keyword + " for beginners",
		"advanced " + keyword,
		keyword + " tutorial",
	}

	lower := strings.ToLower(keyword)
	if strings.Contains(lower, "marketing") {
		base = append(base, "digital marketing", "online marketing", "marketing strategies", "marketing tips")
	}
	if strings.Contains(lower, "seo") {
		base = append(base, "search engine optimization", "seo techniques", "seo best practices", "seo tools")
	}
	base = append(base, secondary...)

	seen := map[string]bool{}
	out := []string{}
	for _, s := range base {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == 12 {
			break
		}
	}
	return out
}

func keywordScore(title, description, keyword string) int {
	score := 0
	kw := strings.ToLower(keyword)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	if strings.Contains(titleLower, kw) {
		score += 40
		if strings.Index(titleLower, kw) <= 20 {
			score += 10
		}
	}
	if strings.Contains(descLower, kw) {
		score += 30
	}

	firstWord := strings.Fields(kw)[0]
	titleWords := textkit.WordCount(titleLower)
	descWords := textkit.WordCount(descLower)
	titleDensity := float64(strings.Count(titleLower, firstWord)) / float64(max(titleWords, 1))
	descDensity := float64(strings.Count(descLower, firstWord)) / float64(max(descWords, 1))

	if titleDensity > 0 && titleDensity <= 0.03 {
		score += 10
	}
	if descDensity > 0 && descDensity <= 0.02 {
		score += 10
	}

	return textkit.Clamp(score, 0, 100)
}

func lengthScore(title, description string) int {
	score := 0
	tl := textkit.CharCount(title)
	dl := textkit.CharCount(description)

	switch {
	case tl >= titleMin && tl <= titleMax:
		score += 50
	case tl >= titleMin-5 && tl <= titleMax+5:
		score += 30
	default:
		score += 10
	}

	switch {
	case dl >= descMin && dl <= descMax:
		score += 50
	case dl >= descMin-10 && dl <= descMax+10:
		score += 30
	default:
		score += 10
	}

	return textkit.Clamp(score, 0, 100)
}

var actionWords = []string{"discover", "learn", "get", "try", "start", "join", "buy", "shop", "download"}
var emotionalWords = []string{"amazing", "incredible", "unbelievable", "secret", "ultimate", "free"}

func engagementScore(title, description string) int {
	score := 50

	score += textkit.CountMatches(title, powerWords) * 5
	score += textkit.CountMatches(description, powerWords) * 3

	if textkit.HasNumber(title) {
		score += 10
	}
	if textkit.HasNumber(description) {
		score += 5
	}
	if textkit.ContainsAny(title, actionWords) || textkit.ContainsAny(description, actionWords) {
		score += 10
	}
	if textkit.ContainsAny(title, emotionalWords) || textkit.ContainsAny(description, emotionalWords) {
		score += 5
	}
	if strings.Contains(title, "?") || strings.Contains(description, "?") {
		score += 5
	}
	if strings.Contains(title, "!") || strings.Contains(description, "!") {
		score += 5
	}

	return textkit.Clamp(score, 0, 100)
}

var titleSeparatorRe = regexp.MustCompile(`[|:—]`)
var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

func sentenceCount(s string) int {
	n := 0
	for _, part := range sentenceSplitRe.Split(s, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

func readabilityScore(title, description string) int {
	score := 70
	titleWords := textkit.WordCount(title)
	descWords := textkit.WordCount(description)

	if titleWords >= 5 && titleWords <= 8 {
		score += 10
	}
	if titleWords > 8 {
		score -= 10
	}
	if descWords >= 15 && descWords <= 25 {
		score += 10
	}
	if !titleSeparatorRe.MatchString(title) {
		score += 10
	}
	if n := sentenceCount(description); n >= 2 && n <= 4 {
		score += 10
	}

	return textkit.Clamp(score, 0, 100)
}

func analysisDetails(title, description, keyword string) AnalysisDetails {
	kw := strings.ToLower(keyword)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	inTitle := strings.Contains(titleLower, kw)
	inDesc := strings.Contains(descLower, kw)
	position := strings.Index(titleLower, kw)

	var d AnalysisDetails
	switch {
	case inTitle && inDesc && position <= 20:
		d.Keyword = "Perfect keyword placement in title and description"
	case inTitle && inDesc:
		d.Keyword = "Good keyword usage in both title and description"
	case inTitle:
		d.Keyword = "Keyword in title but missing in description"
	case inDesc:
		d.Keyword = "Keyword in description but missing in title"
	default:
		d.Keyword = "Primary keyword missing from both title and description"
	}

	tl := textkit.CharCount(title)
	dl := textkit.CharCount(description)
	titleStatus := "optimal"
	if tl < titleMin {
		titleStatus = "too short"
	} else if tl > titleMax {
		titleStatus = "too long"
	}
	descStatus := "optimal"
	if dl < descMin {
		descStatus = "too short"
	} else if dl > descMax {
		descStatus = "too long"
	}
	d.Length = fmt.Sprintf("Title: %d chars (%s), Description: %d chars (%s)", tl, titleStatus, dl, descStatus)

	features := []string{}
	if textkit.ContainsAny(title, powerWords) {
		features = append(features, "power words in title")
	}
	if textkit.ContainsAny(description, powerWords) {
		features = append(features, "power words in description")
	}
	if textkit.HasNumber(title) {
		features = append(features, "numbers in title")
	}
	if strings.Contains(description, "!") || strings.Contains(description, "?") {
		features = append(features, "engagement punctuation")
	}
	if strings.Contains(descLower, "discover") || strings.Contains(descLower, "learn") {
		features = append(features, "action-oriented")
	}
	if len(features) > 0 {
		d.Engagement = "Good engagement features: " + strings.Join(features, ", ")
	} else {
		d.Engagement = "Consider adding power words, numbers, or action phrases"
	}

	d.Readability = fmt.Sprintf("Title: %d words, Description: %d sentences - Good readability",
		textkit.WordCount(title), sentenceCount(description))

	return d
}

// Generate produces three meta tag variations and scores the first one.
func Generate(input GenerateDTO, src textkit.Source, now time.Time) (*Result, error) {
	if strings.TrimSpace(input.PageTitle) == "" || strings.TrimSpace(input.PrimaryKeyword) == "" {
		return nil, ErrMissingFields
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = "blog"
	}
	tone := input.Tone
	if tone == "" {
		tone = "professional"
	}

	variations := make([]Variation, 0, 3)
	for i := 0; i < 3; i++ {
		title := generateTitle(contentType, tone, input.PrimaryKeyword, input.PageTitle, src, now)
		desc := generateDescription(contentType, tone, input.PrimaryKeyword, input.SecondaryKeywords, src, now)
		variations = append(variations, Variation{
			Title:       title,
			Description: desc,
			TitleLength: textkit.CharCount(title),
			DescLength:  textkit.CharCount(desc),
		})
	}

	first := variations[0]
	analysis := Analysis{
		KeywordScore:     keywordScore(first.Title, first.Description, input.PrimaryKeyword),
		LengthScore:      lengthScore(first.Title, first.Description),
		EngagementScore:  engagementScore(first.Title, first.Description),
		ReadabilityScore: readabilityScore(first.Title, first.Description),
		Details:          analysisDetails(first.Title, first.Description, input.PrimaryKeyword),
	}
	analysis.OverallScore = textkit.Round(float64(analysis.KeywordScore+analysis.LengthScore+analysis.EngagementScore+analysis.ReadabilityScore) / 4)

	return &Result{
		ContentType:        strings.ToUpper(contentType[:1]) + contentType[1:],
		Variations:         variations,
		KeywordSuggestions: keywordSuggestions(input.PrimaryKeyword, input.SecondaryKeywords),
		Analysis:           analysis,
		URL:                "https://www.yourwebsite.com/" + slugify(input.PageTitle),
		Metadata:           Metadata{Title: first.Title, Description: first.Description},
	}, nil
}
