package pricing

import "github.com/iwvelando/project-pricing/pkg/constants"

// CalculateRevenue derives total revenue from the selected sales model.
// One-time revenue is price times planned unit count; subscription revenue
// is always annualized to a 12-month run-rate regardless of the project
// duration. The flat annual support revenue is added in every model.
func CalculateRevenue(input ProjectInput) float64 {
	return SalesRevenue(input) + input.SupportRevenue
}

// SalesRevenue is the sales-model revenue without the support add-on. The
// ROI, marketing-economics, and target-profit views are all based on this
// figure rather than the headline total.
func SalesRevenue(input ProjectInput) float64 {
	var revenue float64

	if input.SalesModel == SalesOneTime || input.SalesModel == SalesHybrid {
		revenue += input.OneTimeSalesPrice * float64(input.PlannedSalesCount)
	}

	if input.SalesModel == SalesSubscription || input.SalesModel == SalesHybrid {
		revenue += input.MonthlySubscriptionFee * float64(input.EstimatedUserCount) * constants.MonthsPerYear
	}

	return revenue
}
