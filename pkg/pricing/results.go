package pricing

import (
	"github.com/iwvelando/project-pricing/pkg/mathutil"
)

// ExpenseBreakdown holds each category's share of total cost in percent.
// The shares sum to 100 when total cost is positive and are all 0 for a
// zero-cost input.
type ExpenseBreakdown struct {
	Personnel   float64 `json:"personnel"`
	Technical   float64 `json:"technical"`
	Management  float64 `json:"management"`
	Marketing   float64 `json:"marketing"`
	Contingency float64 `json:"contingency"`
}

// CategoryShare pairs a category name with its percentage share, in the
// fixed reporting order (personnel, technical, management, marketing,
// contingency).
type CategoryShare struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// Ordered returns the five shares in the fixed reporting order. Chart and
// export consumers index this slice by position.
func (b ExpenseBreakdown) Ordered() []CategoryShare {
	return []CategoryShare{
		{Name: "personnel", Percent: b.Personnel},
		{Name: "technical", Percent: b.Technical},
		{Name: "management", Percent: b.Management},
		{Name: "marketing", Percent: b.Marketing},
		{Name: "contingency", Percent: b.Contingency},
	}
}

// ResultsSnapshot is the fully derived headline result set. It is
// recomputed wholesale from the current input; no field persists
// independently.
type ResultsSnapshot struct {
	Costs                 CostBreakdown    `json:"costs"`
	TotalRevenue          float64          `json:"totalRevenue"`
	Profit                float64          `json:"profit"`
	ProfitMargin          float64          `json:"profitMargin"` // percent of revenue
	BreakEvenSales        int              `json:"breakEvenSales"`
	SuggestedPriceWithVAT float64          `json:"suggestedPriceWithVat"`
	Breakdown             ExpenseBreakdown `json:"expenseBreakdown"`
}

// Compose combines aggregated costs and revenue into the headline snapshot.
// Amounts and percentages are not rounded here; presentation formats them.
// Break-even uses ceiling so required units are never under-counted, and is
// 0 without a positive one-time price.
func Compose(costs CostBreakdown, revenue float64, input ProjectInput) ResultsSnapshot {
	profit := revenue - costs.Total

	var margin float64
	if revenue > 0 {
		margin = profit / revenue * 100
	}

	var breakEven int
	if input.OneTimeSalesPrice > 0 {
		breakEven = mathutil.CeilUnits(costs.Total / input.OneTimeSalesPrice)
	}

	suggested := costs.Total + mathutil.ApplyPercentage(costs.Total, input.VATRate)

	var breakdown ExpenseBreakdown
	if costs.Total > 0 {
		breakdown = ExpenseBreakdown{
			Personnel:   mathutil.CalculatePercentage(costs.Personnel, costs.Total),
			Technical:   mathutil.CalculatePercentage(costs.Technical, costs.Total),
			Management:  mathutil.CalculatePercentage(costs.Management, costs.Total),
			Marketing:   mathutil.CalculatePercentage(costs.Marketing, costs.Total),
			Contingency: mathutil.CalculatePercentage(costs.Contingency, costs.Total),
		}
	}

	return ResultsSnapshot{
		Costs:                 costs,
		TotalRevenue:          revenue,
		Profit:                profit,
		ProfitMargin:          margin,
		BreakEvenSales:        breakEven,
		SuggestedPriceWithVAT: suggested,
		Breakdown:             breakdown,
	}
}

// Recompute runs the aggregate-revenue-compose pipeline in one call. This
// is the engine's entry point for callers reacting to input edits; there is
// no observer machinery, the caller invokes it on every change.
func Recompute(input ProjectInput) ResultsSnapshot {
	return Compose(AggregateCosts(input), CalculateRevenue(input), input)
}
