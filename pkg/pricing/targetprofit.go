package pricing

import (
	"github.com/iwvelando/project-pricing/pkg/constants"
	"github.com/iwvelando/project-pricing/pkg/mathutil"
)

// TargetProfitPlan is the inverse calculation: given a target profit
// amount, the price or unit count required to reach it, plus the profit
// the current pricing would actually deliver for comparison.
type TargetProfitPlan struct {
	RequiredOneTimePrice      float64 `json:"requiredOneTimePrice"`
	RequiredSubscriptionFee   float64 `json:"requiredSubscriptionFee"`
	RequiredSalesCount        int     `json:"requiredSalesCount"`
	RequiredSubscriptionCount int     `json:"requiredSubscriptionCount"`
	ProjectedProfit           float64 `json:"projectedProfit"`
	ProfitMargin              float64 `json:"profitMargin"`
}

// SolveTargetProfit computes the price and volume needed to clear the
// target profit on top of total cost. Zero sales or user counts are
// treated as 1 in denominators so the per-unit figures stay defined; the
// required counts are 0 without a positive current price or fee.
func SolveTargetProfit(totalCost float64, input ProjectInput) TargetProfitPlan {
	target := input.TargetProfit
	salesCount := input.PlannedSalesCount
	if salesCount <= 0 {
		salesCount = 1
	}
	userCount := input.EstimatedUserCount
	if userCount <= 0 {
		userCount = 1
	}

	needed := totalCost + target

	requiredPrice := needed / float64(salesCount)
	requiredFee := needed / (float64(userCount) * constants.MonthsPerYear)

	var requiredSales int
	if input.OneTimeSalesPrice > 0 {
		requiredSales = mathutil.CeilUnits(needed / input.OneTimeSalesPrice)
	}

	var requiredSubscriptions int
	if input.MonthlySubscriptionFee > 0 {
		requiredSubscriptions = mathutil.CeilUnits(needed / (input.MonthlySubscriptionFee * constants.MonthsPerYear))
	}

	// Profit attainable with the current prices and the defaulted volumes,
	// for comparison against the target.
	var projectedRevenue float64
	if input.SalesModel == SalesOneTime || input.SalesModel == SalesHybrid {
		projectedRevenue += input.OneTimeSalesPrice * float64(salesCount)
	}
	if input.SalesModel == SalesSubscription || input.SalesModel == SalesHybrid {
		projectedRevenue += input.MonthlySubscriptionFee * float64(userCount) * constants.MonthsPerYear
	}

	projectedProfit := projectedRevenue - totalCost
	var margin float64
	if projectedRevenue > 0 {
		margin = projectedProfit / projectedRevenue * 100
	}

	return TargetProfitPlan{
		RequiredOneTimePrice:      requiredPrice,
		RequiredSubscriptionFee:   requiredFee,
		RequiredSalesCount:        requiredSales,
		RequiredSubscriptionCount: requiredSubscriptions,
		ProjectedProfit:           projectedProfit,
		ProfitMargin:              margin,
	}
}

// TargetROIPlan is the price and volume required to reach the target
// return on investment.
type TargetROIPlan struct {
	RequiredUnitPrice  float64 `json:"requiredUnitPrice"`
	RequiredSalesCount int     `json:"requiredSalesCount"`
}

// SolveTargetROI derives the minimum unit price and the minimum sales
// count at the current price that deliver the target ROI over total cost.
// Zero counts and prices fall back to 1 in denominators.
func SolveTargetROI(totalCost float64, input ProjectInput) TargetROIPlan {
	needed := totalCost * (1 + input.TargetROI/100)

	salesCount := input.PlannedSalesCount
	if salesCount <= 0 {
		salesCount = 1
	}

	price := input.OneTimeSalesPrice
	if price <= 0 {
		price = 1
	}

	return TargetROIPlan{
		RequiredUnitPrice:  needed / float64(salesCount),
		RequiredSalesCount: mathutil.CeilUnits(needed / price),
	}
}

// ReturnOnInvestment is net profit over total cost in percent, 0 when the
// cost base is 0. The revenue base excludes the support add-on.
func ReturnOnInvestment(totalCost, salesRevenue float64) float64 {
	if totalCost <= 0 {
		return 0
	}
	return (salesRevenue - totalCost) / totalCost * 100
}
