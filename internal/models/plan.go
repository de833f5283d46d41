package models

import "github.com/shopspring/decimal"

func init() {
	// Plan prices are rendered as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Plan is a SaaS pricing tier. The catalog is static and never persisted.
type Plan struct {
	Name         string          `json:"name"`
	PriceMonthly decimal.Decimal `json:"price_monthly"`
	Features     []string        `json:"features"`
}

func PlanCatalog() []Plan {
	return []Plan{
		{
			Name:         PlanFree,
			PriceMonthly: decimal.Zero,
			Features:     []string{"1 strategy", "Paper trading", "Community support"},
		},
		{
			Name:         PlanPro,
			PriceMonthly: decimal.NewFromInt(49),
			Features:     []string{"Unlimited strategies", "Live trading", "Priority support", "Webhooks"},
		},
		{
			Name:         PlanEnterprise,
			PriceMonthly: decimal.NewFromInt(299),
			Features:     []string{"SLA", "Dedicated infra", "Custom integrations"},
		},
	}
}
