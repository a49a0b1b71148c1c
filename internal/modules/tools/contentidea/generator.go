package contentidea

import (
	"regexp"
	"strings"
	"time"

	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

const (
	defaultIdeaCount = 5
	maxIdeaCount     = 20
)

type contentTypeConfig struct {
	name    string
	formats []string
}

var contentTypeConfigs = map[string]contentTypeConfig{
	"blog":         {name: "Blog Posts", formats: []string{"how-to", "list", "tips", "case-study", "review", "trends"}},
	"social-media": {name: "Social Media Posts", formats: []string{"tips", "list", "how-to", "engagement"}},
	"video":        {name: "Video Content", formats: []string{"tutorial", "review", "entertainment", "educational"}},
	"podcast":      {name: "Podcast Episodes", formats: []string{"interview", "discussion", "solo", "qa"}},
	"email":        {name: "Email Newsletter", formats: []string{"update", "tips", "news", "promotion"}},
	"ebook":        {name: "E-book/Guide", formats: []string{"comprehensive", "beginner", "advanced", "specialized"}},
}

type formatTemplate struct {
	templates    []string
	descriptions []string
}

var formatTemplates = map[string]formatTemplate{
	"how-to": {
		templates: []string{
			"How to [Achieve Goal] in [Timeframe]",
			"Step-by-Step Guide to [Action]",
			"The Complete Beginner's Guide to [Topic]",
			"How We [Achieved Result] in [Timeframe]",
		},
		descriptions: []string{
			"A comprehensive guide that walks readers through the process of achieving specific goals.",
			"Detailed instructions and best practices for completing a particular task or project.",
		},
	},
	"list": {
		templates: []string{
			"[Number] [Topic] Tips That Actually Work",
			"[Number] Common Mistakes to Avoid When [Action]",
			"[Number] Best [Tools/Resources] for [Audience]",
			"[Number] Signs You're [Situation]",
		},
		descriptions: []string{
			"Actionable tips and insights presented in an easy-to-digest list format.",
			"Common pitfalls and how to avoid them in your specific niche or industry.",
		},
	},
	"tips": {
		templates: []string{
			"[Number] Proven Strategies for [Goal]",
			"Expert Tips for Better [Result]",
			"[Number] Little-Known [Topic] Secrets",
			"Quick Wins for [Improvement]",
		},
		descriptions: []string{
			"Practical advice and strategies that deliver immediate results.",
			"Expert insights and proven methods for achieving specific outcomes.",
		},
	},
	"case-study": {
		templates: []string{
			"Case Study: How [Company] Achieved [Result]",
			"Real Results: [Metric] Improvement in [Timeframe]",
			"Success Story: [Client]'s Journey to [Achievement]",
			"Behind the Scenes: How We [Accomplishment]",
		},
		descriptions: []string{
			"Detailed analysis of real-world success stories and their key takeaways.",
			"In-depth look at strategies that delivered measurable results for businesses.",
		},
	},
}

type toneTemplate struct {
	adjectives []string
	phrases    []string
}

var toneTemplates = map[string]toneTemplate{
	"professional":  {adjectives: []string{"comprehensive", "strategic", "professional", "effective", "proven"}, phrases: []string{"industry best practices", "data-driven approach", "expert insights"}},
	"casual":        {adjectives: []string{"awesome", "simple", "easy", "fun", "practical"}, phrases: []string{"you'll love this", "game-changing tips", "super helpful"}},
	"authoritative": {adjectives: []string{"definitive", "comprehensive", "expert", "master", "ultimate"}, phrases: []string{"must-know strategies", "industry secrets", "professional guidance"}},
	"humorous":      {adjectives: []string{"hilarious", "entertaining", "funny", "witty", "amusing"}, phrases: []string{"you won't believe this", "laugh while you learn", "entertaining insights"}},
	"inspirational": {adjectives: []string{"transformative", "life-changing", "empowering", "motivational", "inspiring"}, phrases: []string{"unlock your potential", "transform your approach", "achieve amazing results"}},
}

type goalTemplate struct {
	focus    []string
	outcomes []string
}

var goalTemplates = map[string]goalTemplate{
	"education":     {focus: []string{"teach", "educate", "explain", "demonstrate", "guide"}, outcomes: []string{"understanding", "knowledge", "skills", "expertise"}},
	"entertainment": {focus: []string{"entertain", "engage", "amuse", "delight", "captivate"}, outcomes: []string{"enjoyment", "engagement", "entertainment", "fun"}},
	"conversion":    {focus: []string{"convert", "persuade", "convince", "motivate", "inspire"}, outcomes: []string{"action", "conversion", "purchase", "sign-up"}},
	"awareness":     {focus: []string{"introduce", "showcase", "highlight", "feature", "present"}, outcomes: []string{"awareness", "recognition", "visibility", "exposure"}},
	"engagement":    {focus: []string{"engage", "interact", "connect", "involve", "participate"}, outcomes: []string{"engagement", "interaction", "discussion", "community"}},
}

var listNumbers = []string{"5", "7", "10", "15", "21", "25", "30"}
var timeframes = []string{"30 Days", "1 Week", "24 Hours", "5 Simple Steps", "2024", "This Year"}

func pick(src textkit.Source, items []string) string {
	return items[src.IntN(len(items))]
}

func generateTitle(ft formatTemplate, tt toneTemplate, gt goalTemplate, niche, audience string, keywords []string, src textkit.Source) string {
	title := textkit.Render(pick(src, ft.templates), map[string]string{
		"[Number]":    pick(src, listNumbers),
		"[Topic]":     niche,
		"[Action]":    pick(src, gt.focus),
		"[Goal]":      pick(src, gt.outcomes),
		"[Audience]":  audience,
		"[Timeframe]": pick(src, timeframes),
	})

	if src.IntN(2) == 0 {
		title = pick(src, tt.adjectives) + " " + title
	}
	if len(keywords) > 0 && src.IntN(10) > 6 {
		title += " (" + pick(src, keywords) + ")"
	}
	return title
}

func generateDescription(ft formatTemplate, tt toneTemplate, gt goalTemplate, niche, audience string, src textkit.Source) string {
	desc := textkit.Render(pick(src, ft.descriptions), map[string]string{
		"[Topic]":    strings.ToLower(niche),
		"[audience]": strings.ToLower(audience),
	})

	if src.IntN(2) == 0 {
		desc += " " + pick(src, tt.phrases) + "."
	}
	desc += " Perfect for " + pick(src, gt.focus) + "ing " + pick(src, gt.outcomes) + "."
	return desc
}

var tagStripRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

func generateTags(niche string, keywords []string, format, tone string) []string {
	raw := []string{niche, format}
	n := len(keywords)
	if n > 3 {
		n = 3
	}
	raw = append(raw, keywords[:n]...)
	raw = append(raw, tone)

	seen := map[string]bool{}
	out := []string{}
	for _, tag := range raw {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		clean := strings.TrimSpace(tagStripRe.ReplaceAllString(tag, ""))
		if clean == "" {
			continue
		}
		out = append(out, clean)
		if len(out) == 5 {
			break
		}
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func buildCalendar(ideas []Idea, now time.Time) []CalendarEntry {
	out := []CalendarEntry{}
	for i, idea := range ideas {
		if i == 5 {
			break
		}
		// One idea every other day.
		date := now.AddDate(0, 0, i*2)
		out = append(out, CalendarEntry{
			Date: date.Format("Mon, Jan 2"),
			Idea: idea.Title,
			Type: idea.Type,
		})
	}
	return out
}

// Generate produces a batch of content ideas with a publishing calendar.
func Generate(input GenerateDTO, src textkit.Source, now time.Time) (*Result, error) {
	if strings.TrimSpace(input.Niche) == "" {
		return nil, ErrMissingNiche
	}

	contentType := input.ContentType
	cfg, ok := contentTypeConfigs[contentType]
	if !ok {
		contentType = "blog"
		cfg = contentTypeConfigs["blog"]
	}
	format := input.ContentFormat
	ft, ok := formatTemplates[format]
	if !ok {
		format = "how-to"
		ft = formatTemplates["how-to"]
	}
	tt, ok := toneTemplates[input.Tone]
	if !ok {
		tt = toneTemplates["professional"]
	}
	gt, ok := goalTemplates[input.Goal]
	if !ok {
		gt = goalTemplates["education"]
	}

	count := input.IdeaCount
	if count <= 0 {
		count = defaultIdeaCount
	}
	if count > maxIdeaCount {
		count = maxIdeaCount
	}

	ideas := make([]Idea, 0, count)
	for i := 0; i < count; i++ {
		ideas = append(ideas, Idea{
			ID:          i + 1,
			Title:       generateTitle(ft, tt, gt, input.Niche, input.TargetAudience, input.Keywords, src),
			Description: generateDescription(ft, tt, gt, input.Niche, input.TargetAudience, src),
			Type:        cfg.name,
			Format:      titleCase(format),
			Tags:        generateTags(input.Niche, input.Keywords, format, input.Tone),
		})
	}

	return &Result{
		ContentType:     contentType,
		ContentTypeName: cfg.name,
		IdeaCount:       len(ideas),
		Ideas:           ideas,
		Calendar:        buildCalendar(ideas, now),
	}, nil
}
