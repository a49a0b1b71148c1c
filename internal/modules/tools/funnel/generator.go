package funnel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type template struct {
	Name   string
	Stages map[string][]StageItem
}

var templates = map[string]template{
	"ecommerce": {
		Name: "E-commerce Sales Funnel",
		Stages: map[string][]StageItem{
			"awareness": {
				{Type: "Social Media", Title: "Problem-Awareness Posts", Description: "Content highlighting pain points your product solves"},
				{Type: "Content", Title: "Educational Blog Posts", Description: "How-to guides and problem-solving articles"},
				{Type: "Ads", Title: "Interest-Based Targeting", Description: "Facebook/Instagram ads targeting user interests"},
			},
			"interest": {
				{Type: "Lead Magnet", Title: "Discount Code or Free Shipping", Description: "Offer first-time purchase incentives"},
				{Type: "Email", Title: "Welcome Sequence", Description: "Introduce your brand and products"},
				{Type: "Retargeting", Title: "Product Showcase Ads", Description: "Show products to website visitors"},
			},
			"decision": {
				{Type: "Social Proof", Title: "Customer Reviews & Testimonials", Description: "Showcase happy customer experiences"},
				{Type: "Urgency", Title: "Limited Time Offers", Description: "Create scarcity to drive purchases"},
				{Type: "Comparison", Title: "Product Benefits Highlight", Description: "Show why your product is the best choice"},
			},
			"action": {
				{Type: "Checkout", Title: "Streamlined Purchase Process", Description: "One-click upsells and cross-sells"},
				{Type: "Confirmation", Title: "Order Confirmation & Tracking", Description: "Keep customers informed post-purchase"},
				{Type: "Retention", Title: "Loyalty Program Invitation", Description: "Encourage repeat purchases"},
			},
		},
	},
	"saas": {
		Name: "SaaS Conversion Funnel",
		Stages: map[string][]StageItem{
			"awareness": {
				{Type: "Content", Title: "Problem-Solving Blog Content", Description: "Address specific pain points your SaaS solves"},
				{Type: "SEO", Title: "Keyword-Optimized Landing Pages", Description: "Target relevant search queries"},
				{Type: "Webinars", Title: "Educational Webinars", Description: "Teach solutions to common problems"},
			},
			"interest": {
				{Type: "Trial", Title: "Free Trial Offer", Description: "Let users experience your product"},
				{Type: "Demo", Title: "Product Demo Videos", Description: "Showcase key features and benefits"},
				{Type: "Case Studies", Title: "Success Stories", Description: "Show how others achieved results"},
			},
			"decision": {
				{Type: "Pricing", Title: "Clear Pricing Page", Description: "Transparent pricing with value highlights"},
				{Type: "Comparison", Title: "Feature Comparison", Description: "Show advantages over competitors"},
				{Type: "Social Proof", Title: "Customer Testimonials", Description: "Build trust with real user stories"},
			},
			"action": {
				{Type: "Onboarding", Title: "Welcome Sequence", Description: "Guide users through setup process"},
				{Type: "Support", Title: "Dedicated Support", Description: "Ensure successful implementation"},
				{Type: "Upsell", Title: "Premium Features Highlight", Description: "Show value of upgraded plans"},
			},
		},
	},
	"service": {
		Name: "Service Business Funnel",
		Stages: map[string][]StageItem{
			"awareness": {
				{Type: "Networking", Title: "LinkedIn Outreach", Description: "Connect with potential clients"},
				{Type: "Content", Title: "Expert Articles", Description: "Share industry insights and expertise"},
				{Type: "Referrals", Title: "Client Referral Program", Description: "Leverage existing relationships"},
			},
			"interest": {
				{Type: "Consultation", Title: "Free Discovery Call", Description: "Offer value before asking for commitment"},
				{Type: "Portfolio", Title: "Case Study Showcase", Description: "Demonstrate past success stories"},
				{Type: "Lead Magnet", Title: "Free Audit/Assessment", Description: "Provide immediate value"},
			},
			"decision": {
				{Type: "Proposal", Title: "Detailed Service Proposal", Description: "Clear scope, deliverables, and pricing"},
				{Type: "Testimonials", Title: "Client Success Stories", Description: "Build credibility and trust"},
				{Type: "Guarantee", Title: "Risk Reversal Offer", Description: "Reduce perceived risk for clients"},
			},
			"action": {
				{Type: "Contract", Title: "Clear Service Agreement", Description: "Professional onboarding process"},
				{Type: "Payment", Title: "Flexible Payment Options", Description: "Make it easy to get started"},
				{Type: "Delivery", Title: "Project Kickoff Process", Description: "Set expectations and timeline"},
			},
		},
	},
	"agency": {
		Name: "Agency Lead Generation Funnel",
		Stages: map[string][]StageItem{
			"awareness": {
				{Type: "Content", Title: "Industry Insights Blog", Description: "Establish thought leadership"},
				{Type: "Ads", Title: "LinkedIn Sponsored Content", Description: "Target decision-makers"},
				{Type: "Speaking", Title: "Industry Events & Webinars", Description: "Build authority and visibility"},
			},
			"interest": {
				{Type: "Lead Magnet", Title: "Free Marketing Audit", Description: "Identify opportunities for prospects"},
				{Type: "Case Studies", Title: "Client Results Showcase", Description: "Demonstrate proven track record"},
				{Type: "Consultation", Title: "Strategy Session", Description: "Personalized recommendations"},
			},
			"decision": {
				{Type: "Proposal", Title: "Custom Service Package", Description: "Tailored to client needs"},
				{Type: "ROI Calculator", Title: "Value Demonstration", Description: "Show potential return on investment"},
				{Type: "References", Title: "Client References", Description: "Direct conversations with satisfied clients"},
			},
			"action": {
				{Type: "Contract", Title: "Service Agreement", Description: "Clear terms and deliverables"},
				{Type: "Onboarding", Title: "Client Kickoff Process", Description: "Smooth transition to working relationship"},
				{Type: "Team Intro", Title: "Meet Your Team", Description: "Build personal connections"},
			},
		},
	},
	"coach": {
		Name: "Coaching/Consulting Funnel",
		Stages: map[string][]StageItem{
			"awareness": {
				{Type: "Content", Title: "Value-Packed Blog Posts", Description: "Share expertise and insights"},
				{Type: "Social Media", Title: "Regular Tips & Advice", Description: "Build following and engagement"},
				{Type: "Guest Appearances", Title: "Podcasts & Interviews", Description: "Reach new audiences"},
			},
			"interest": {
				{Type: "Lead Magnet", Title: "Free Guide or Workbook", Description: "Provide actionable value"},
				{Type: "Webinar", Title: "Free Training Workshop", Description: "Teach and demonstrate expertise"},
				{Type: "Email Series", Title: "Educational Nurture Sequence", Description: "Build trust and rapport"},
			},
			"decision": {
				{Type: "Testimonials", Title: "Client Transformation Stories", Description: "Show real results"},
				{Type: "Discovery Call", Title: "Free Strategy Session", Description: "Personalized consultation"},
				{Type: "Comparison", Title: "Program Breakdown", Description: "Clear value proposition"},
			},
			"action": {
				{Type: "Enrollment", Title: "Simple Signup Process", Description: "Easy payment and onboarding"},
				{Type: "Welcome", Title: "Program Welcome Sequence", Description: "Set expectations and excitement"},
				{Type: "Community", Title: "Group/Community Access", Description: "Connect with other clients"},
			},
		},
	},
	"creator": {
		Name: "Content Creator Monetization Funnel",
		Stages: map[string][]StageItem{
			"awareness": {
				{Type: "Content", Title: "Regular Content Publishing", Description: "Build audience on main platform"},
				{Type: "Cross-Platform", Title: "Multi-Channel Presence", Description: "Expand reach across platforms"},
				{Type: "Collaborations", Title: "Creator Partnerships", Description: "Cross-promote to new audiences"},
			},
			"interest": {
				{Type: "Email List", Title: "Newsletter Signup", Description: "Build owned audience"},
				{Type: "Free Content", Title: "Premium Free Content", Description: "Showcase best work"},
				{Type: "Behind the Scenes", Title: "Exclusive Content Previews", Description: "Build anticipation"},
			},
			"decision": {
				{Type: "Offer Preview", Title: "Product/Service Showcase", Description: "Demonstrate value clearly"},
				{Type: "Limited Availability", Title: "Scarcity Messaging", Description: "Create urgency"},
				{Type: "Social Proof", Title: "Customer Results", Description: "Share success stories"},
			},
			"action": {
				{Type: "Purchase", Title: "Seamless Checkout", Description: "Easy buying process"},
				{Type: "Delivery", Title: "Instant Access", Description: "Immediate product delivery"},
				{Type: "Community", Title: "Member Community", Description: "Ongoing engagement"},
			},
		},
	},
}

var toolRecommendations = map[string][]Tool{
	"awareness": {
		{Name: "Facebook Ads", Icon: "📱", Purpose: "Targeted audience reach"},
		{Name: "Google Ads", Icon: "🔍", Purpose: "Search intent targeting"},
		{Name: "LinkedIn", Icon: "💼", Purpose: "B2B audience engagement"},
		{Name: "Instagram", Icon: "📸", Purpose: "Visual content marketing"},
	},
	"interest": {
		{Name: "Mailchimp", Icon: "✉️", Purpose: "Email marketing automation"},
		{Name: "HubSpot", Icon: "🔄", Purpose: "CRM and lead nurturing"},
		{Name: "ActiveCampaign", Icon: "🎯", Purpose: "Advanced automation"},
		{Name: "ConvertKit", Icon: "📊", Purpose: "Creator-focused email"},
	},
	"decision": {
		{Name: "Calendly", Icon: "📅", Purpose: "Meeting scheduling"},
		{Name: "Typeform", Icon: "📝", Purpose: "Lead qualification forms"},
		{Name: "Hotjar", Icon: "🔥", Purpose: "Website behavior analytics"},
		{Name: "Intercom", Icon: "💬", Purpose: "Live chat and support"},
	},
	"action": {
		{Name: "Stripe", Icon: "💳", Purpose: "Payment processing"},
		{Name: "PayPal", Icon: "💰", Purpose: "Alternative payments"},
		{Name: "Zapier", Icon: "⚡", Purpose: "Workflow automation"},
		{Name: "Slack", Icon: "💻", Purpose: "Team communication"},
	},
}

type baseMetrics struct {
	audience   int
	conversion float64
	cpl        float64
	roi        float64
}

var businessBaselines = map[string]baseMetrics{
	"ecommerce": {audience: 10000, conversion: 3.5, cpl: 8, roi: 320},
	"saas":      {audience: 5000, conversion: 7.2, cpl: 22, roi: 450},
	"service":   {audience: 2000, conversion: 12.5, cpl: 45, roi: 280},
	"agency":    {audience: 1500, conversion: 15.8, cpl: 65, roi: 380},
	"coach":     {audience: 3000, conversion: 8.5, cpl: 35, roi: 420},
	"creator":   {audience: 8000, conversion: 2.8, cpl: 12, roi: 190},
}

var funnelTypeNames = map[string]string{
	"lead-generation":   "Lead Generation",
	"product-sales":     "Product Sales",
	"course-enrollment": "Course Enrollment",
	"app-signups":       "App Sign-ups",
	"book-calls":        "Discovery Calls",
}

var recommendations = map[string][]string{
	"ecommerce": {
		"Focus on building trust through social proof and reviews",
		"Implement abandoned cart recovery sequences",
		"Use retargeting ads to bring back website visitors",
		"Create urgency with limited-time offers",
	},
	"saas": {
		"Offer a free trial to reduce barriers to entry",
		"Create detailed onboarding sequences",
		"Use case studies to demonstrate value",
		"Implement a product-led growth strategy",
	},
	"service": {
		"Build authority through thought leadership content",
		"Offer free consultations or audits",
		"Leverage client testimonials and referrals",
		"Create clear service packages and pricing",
	},
	"agency": {
		"Showcase your portfolio and case studies",
		"Offer free audits or strategy sessions",
		"Build partnerships for referrals",
		"Focus on long-term client relationships",
	},
	"coach": {
		"Create a signature framework or methodology",
		"Use webinars to demonstrate expertise",
		"Build a community around your teachings",
		"Offer different service tiers",
	},
	"creator": {
		"Focus on consistent content quality",
		"Build an email list for owned audience",
		"Diversify revenue streams",
		"Engage deeply with your community",
	},
}

var nextSteps = []string{
	"Set up tracking for each funnel stage",
	"Create content for the awareness stage",
	"Implement lead capture mechanisms",
	"Set up email automation sequences",
	"Test and optimize conversion rates",
	"Scale successful campaigns",
}

func templateFor(businessType string) template {
	if t, ok := templates[businessType]; ok {
		return t
	}
	return templates["service"]
}

func funnelTypeName(goal string) string {
	if name, ok := funnelTypeNames[goal]; ok {
		return name
	}
	return goal
}

// parseBudget reads the monthly budget in dollars. Range inputs like
// "2500-5000" count as their leading number; anything without a leading
// number falls back to 1000 so the projection multiplier stays at 1.
func parseBudget(budget string) int {
	s := strings.TrimSpace(budget)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 1000
	}
	return n
}

// groupThousands formats n with comma separators.
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// projectMetrics scales the business-type baselines by the budget. A
// $1,000 budget is the reference point.
func projectMetrics(businessType, budget string) Metrics {
	base, ok := businessBaselines[businessType]
	if !ok {
		base = businessBaselines["service"]
	}

	multiplier := float64(parseBudget(budget)) / 1000
	audience := int(math.Round(float64(base.audience) * multiplier))
	cpl := math.Round(base.cpl/multiplier*100) / 100
	roi := int(math.Round(base.roi * (1 + multiplier*0.1)))

	return Metrics{
		TotalAudience:  groupThousands(audience),
		ConversionRate: fmt.Sprintf("%.1f%%", base.conversion),
		CostPerLead:    fmt.Sprintf("$%.2f", cpl),
		ROI:            fmt.Sprintf("%d%%", roi),
	}
}

// Generate assembles a funnel strategy from the business-type template,
// projected metrics, and stage tooling. Output is fully determined by
// the input.
func Generate(input GenerateDTO) (*Result, error) {
	if strings.TrimSpace(input.BusinessName) == "" {
		return nil, ErrMissingBusinessName
	}
	if strings.TrimSpace(input.TargetAudience) == "" {
		return nil, ErrMissingAudience
	}
	if strings.TrimSpace(input.PrimaryOffer) == "" {
		return nil, ErrMissingOffer
	}

	tpl := templateFor(input.BusinessType)
	recs, ok := recommendations[input.BusinessType]
	if !ok {
		recs = recommendations["service"]
	}

	return &Result{
		Name:            fmt.Sprintf("%s %s", input.BusinessName, tpl.Name),
		Type:            funnelTypeName(input.FunnelGoal),
		Audience:        input.TargetAudience,
		Offer:           input.PrimaryOffer,
		BusinessType:    input.BusinessType,
		Goal:            input.FunnelGoal,
		Budget:          input.Budget,
		Stages:          tpl.Stages,
		Metrics:         projectMetrics(input.BusinessType, input.Budget),
		Tools:           toolRecommendations,
		Recommendations: recs,
		NextSteps:       nextSteps,
	}, nil
}
