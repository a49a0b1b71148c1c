package billing

import "github.com/meritlives/tools-core/internal/models"

// Unlimited marks a quota with no cap.
const Unlimited = -1

// Plan describes one subscription tier, priced in kobo for Paystack.
type Plan struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	AmountKobo       int64    `json:"-"`
	Amount           float64  `json:"amount"` // major currency units
	Interval         string   `json:"interval"`
	DurationDays     int      `json:"duration_days,omitempty"`
	Popular          bool     `json:"popular,omitempty"`
	DailyGenerations int      `json:"daily_generations"`
	SavedContent     int      `json:"saved_content"`
	Features         []string `json:"features"`
}

var plans = []Plan{
	{
		ID:               models.PlanTrial,
		Name:             "Trial",
		AmountKobo:       0,
		Amount:           0,
		Interval:         "one_time",
		DurationDays:     7,
		DailyGenerations: 3,
		SavedContent:     10,
		Features: []string{
			"Facebook only",
			"Basic content generation",
			"Standard analytics",
			"Email support",
			"7 days access",
		},
	},
	{
		ID:               models.PlanBasic,
		Name:             "Basic",
		AmountKobo:       1900000,
		Amount:           19000,
		Interval:         "monthly",
		DailyGenerations: 10,
		SavedContent:     50,
		Features: []string{
			"3 social accounts",
			"All platforms",
			"Basic scheduling",
			"Standard analytics",
			"Email support",
		},
	},
	{
		ID:               models.PlanPremium,
		Name:             "Premium",
		AmountKobo:       4900000,
		Amount:           49000,
		Interval:         "monthly",
		Popular:          true,
		DailyGenerations: Unlimited,
		SavedContent:     Unlimited,
		Features: []string{
			"Unlimited accounts",
			"All platforms",
			"AI content generation",
			"Advanced analytics",
			"Priority support",
			"Custom branding",
		},
	},
	{
		ID:               models.PlanPro,
		Name:             "Pro",
		AmountKobo:       9900000,
		Amount:           99000,
		Interval:         "monthly",
		DailyGenerations: Unlimited,
		SavedContent:     Unlimited,
		Features: []string{
			"Everything in Premium",
			"Team collaboration (5 seats)",
			"White-label solution",
			"API access",
			"Dedicated account manager",
		},
	},
}

// Plans returns all tiers in display order.
func Plans() []Plan { return plans }

// PlanByID looks up a tier.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
