package pricing

import (
	"math"

	"github.com/iwvelando/project-pricing/pkg/constants"
	"github.com/iwvelando/project-pricing/pkg/mathutil"
)

// ScenarioResult is the outcome of re-running the engine under one
// multiplier set.
type ScenarioResult struct {
	Kind           ScenarioKind `json:"type"`
	Name           string       `json:"name"`
	TotalCost      float64      `json:"totalCost"`
	TotalRevenue   float64      `json:"totalRevenue"`
	Profit         float64      `json:"profit"`
	ProfitMargin   float64      `json:"profitMargin"`
	SuggestedPrice float64      `json:"suggestedPrice"`
	BreakEvenPoint int          `json:"breakEvenPoint"`
}

// EvaluateScenario re-runs cost and revenue derivation under the given
// multiplier set. Per-item duration is scaled and rounded up to whole
// months before the personnel multiplier applies; flat expense categories
// scale uniformly; sales counts are rounded up after scaling. The identity
// scenario reproduces the base pipeline exactly.
func EvaluateScenario(input ProjectInput, scenario Scenario) ScenarioResult {
	var personnel float64
	for _, item := range input.PersonnelItems {
		scaledDuration := math.Ceil(float64(item.Duration) * scenario.DurationMultiplier)
		personnel += item.MonthlySalary * float64(item.Count) * scaledDuration * scenario.PersonnelMultiplier
	}

	technical := (input.ServerCost + input.DomainCost + input.ThirdPartyLicenses +
		input.DataStorageCost + input.BackupCost) * scenario.ExpensesMultiplier

	management := (input.AccountingCost + input.OfficeCost*float64(input.OfficeMonths) +
		input.HardwareCost) * scenario.ExpensesMultiplier

	marketing := (input.AdvertisingBudget + input.SalesRepCost + input.DemoCost +
		input.WebsiteCost) * scenario.ExpensesMultiplier

	subtotal := personnel + technical + management + marketing
	totalCost := subtotal + mathutil.ApplyPercentage(subtotal, input.ContingencyRate)

	scaledSales := mathutil.CeilUnits(float64(input.PlannedSalesCount) * scenario.SalesMultiplier)
	scaledUsers := mathutil.CeilUnits(float64(input.EstimatedUserCount) * scenario.SalesMultiplier)

	var revenue float64
	if input.SalesModel == SalesOneTime || input.SalesModel == SalesHybrid {
		revenue += input.OneTimeSalesPrice * float64(scaledSales)
	}
	if input.SalesModel == SalesSubscription || input.SalesModel == SalesHybrid {
		revenue += input.MonthlySubscriptionFee * float64(scaledUsers) * constants.MonthsPerYear
	}

	profit := revenue - totalCost
	var margin float64
	if revenue > 0 {
		margin = profit / revenue * 100
	}

	var breakEven int
	if totalCost > 0 && input.OneTimeSalesPrice > 0 {
		breakEven = mathutil.CeilUnits(totalCost / input.OneTimeSalesPrice)
	}

	var suggestedPrice float64
	if input.PlannedSalesCount > 0 && scaledSales > 0 {
		suggestedPrice = totalCost / float64(scaledSales) * constants.ScenarioMarginTarget
	}

	return ScenarioResult{
		Kind:           scenario.Kind,
		Name:           scenario.Name,
		TotalCost:      totalCost,
		TotalRevenue:   revenue,
		Profit:         profit,
		ProfitMargin:   margin,
		SuggestedPrice: suggestedPrice,
		BreakEvenPoint: breakEven,
	}
}

// EvaluateScenarios runs every provided scenario in order.
func EvaluateScenarios(input ProjectInput, scenarios []Scenario) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		results = append(results, EvaluateScenario(input, scenario))
	}
	return results
}
