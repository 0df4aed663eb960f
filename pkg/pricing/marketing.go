package pricing

import "github.com/iwvelando/project-pricing/pkg/mathutil"

// MarketingEconomics covers store commission, customer acquisition cost,
// and marketing return figures derived from the sales-model revenue.
type MarketingEconomics struct {
	StoreCommissionAmount   float64 `json:"storeCommissionAmount"`
	TotalMarketingSpend     float64 `json:"totalMarketingSpend"`
	NetRevenue              float64 `json:"netRevenue"`
	CustomerAcquisitionCost float64 `json:"customerAcquisitionCost"`
	MarketingROI            float64 `json:"marketingROI"`
}

// EvaluateMarketing computes commission on revenue, the ongoing marketing
// spend over the timeline, net revenue after both, CAC over the combined
// planned-sale and subscriber count, and marketing ROI. All divisions are
// guarded to 0.
func EvaluateMarketing(input ProjectInput, revenue float64) MarketingEconomics {
	commission := mathutil.ApplyPercentage(revenue, input.StoreCommissionRate)
	spend := input.MonthlyMarketingBudget * float64(input.DurationOrDefault())
	net := revenue - commission - spend

	acquired := float64(input.PlannedSalesCount + input.EstimatedUserCount)
	cac := mathutil.SafeDivide(spend, acquired)

	var roi float64
	if spend > 0 {
		roi = (revenue - spend) / spend * 100
	}

	return MarketingEconomics{
		StoreCommissionAmount:   commission,
		TotalMarketingSpend:     spend,
		NetRevenue:              net,
		CustomerAcquisitionCost: cac,
		MarketingROI:            roi,
	}
}

// MarketingMonth is one month of the revenue and marketing spend split.
type MarketingMonth struct {
	Month           int     `json:"month"`
	Revenue         float64 `json:"revenue"`
	MarketingBudget float64 `json:"marketingBudget"`
	Commission      float64 `json:"commission"`
	NetRevenue      float64 `json:"netRevenue"`
}

// MonthlyMarketingSpread distributes revenue, the marketing budget, and
// the store commission evenly across the timeline.
func MonthlyMarketingSpread(input ProjectInput, revenue float64) []MarketingMonth {
	duration := input.DurationOrDefault()
	commission := mathutil.ApplyPercentage(revenue, input.StoreCommissionRate)

	monthlyRevenue := revenue / float64(duration)
	monthlyCommission := commission / float64(duration)

	months := make([]MarketingMonth, 0, duration)
	for i := 1; i <= duration; i++ {
		months = append(months, MarketingMonth{
			Month:           i,
			Revenue:         monthlyRevenue,
			MarketingBudget: input.MonthlyMarketingBudget,
			Commission:      monthlyCommission,
			NetRevenue:      monthlyRevenue - input.MonthlyMarketingBudget - monthlyCommission,
		})
	}
	return months
}
