package pricing

import (
	"github.com/iwvelando/project-pricing/pkg/mathutil"
)

// CostBreakdown holds per-category cost totals plus the contingency buffer
// and grand total. Marketing is the base marketing total; the variant that
// includes the ongoing monthly budget is exposed separately via
// FullMarketingCost.
type CostBreakdown struct {
	Personnel   float64 `json:"personnel"`
	Technical   float64 `json:"technical"`
	Management  float64 `json:"management"`
	Marketing   float64 `json:"marketing"`
	Subtotal    float64 `json:"subtotal"`
	Contingency float64 `json:"contingency"`
	Total       float64 `json:"total"`
}

// AggregateCosts sums itemized costs into category subtotals and a grand
// total with contingency. Absent inputs contribute 0; there are no error
// conditions.
func AggregateCosts(input ProjectInput) CostBreakdown {
	var personnel float64
	for _, item := range input.PersonnelItems {
		personnel += item.MonthlySalary * float64(item.Count) * float64(item.Duration)
	}

	technical := input.ServerCost + input.DomainCost + input.ThirdPartyLicenses +
		input.DataStorageCost + input.BackupCost

	management := input.AccountingCost + input.OfficeCost*float64(input.OfficeMonths) +
		input.HardwareCost

	marketing := input.AdvertisingBudget + input.SalesRepCost + input.DemoCost +
		input.WebsiteCost

	subtotal := personnel + technical + management + marketing
	contingency := mathutil.ApplyPercentage(subtotal, input.ContingencyRate)

	return CostBreakdown{
		Personnel:   personnel,
		Technical:   technical,
		Management:  management,
		Marketing:   marketing,
		Subtotal:    subtotal,
		Contingency: contingency,
		Total:       subtotal + contingency,
	}
}

// FullMarketingCost is the marketing total including the ongoing monthly
// marketing budget over the project timeline. The base aggregator omits
// the ongoing budget; the cost-breakdown and marketing-economics views
// include it. Both totals are deliberately exposed.
func FullMarketingCost(input ProjectInput) float64 {
	return input.AdvertisingBudget + input.SalesRepCost + input.DemoCost +
		input.WebsiteCost + input.MonthlyMarketingBudget*float64(input.ProjectDuration)
}
