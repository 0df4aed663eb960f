// Package report assembles every engine view over a single project input
// into one result document for the CLI and server surfaces.
package report

import (
	"github.com/iwvelando/project-pricing/pkg/constants"
	"github.com/iwvelando/project-pricing/pkg/pricing"
	"go.uber.org/zap"
)

// Report is the full derived result set for one project input. Every field
// is recomputed from the input on each Generate call.
type Report struct {
	Input             pricing.ProjectInput       `json:"input"`
	Results           pricing.ResultsSnapshot    `json:"results"`
	FullMarketingCost float64                    `json:"fullMarketingCost"`
	SalesRevenue      float64                    `json:"salesRevenue"`
	Scenarios         []pricing.ScenarioResult   `json:"scenarios"`
	CashFlow          []pricing.MonthRecord      `json:"cashFlow"`
	ProfitTimeline    pricing.ProfitTimeline     `json:"profitTimeline"`
	CurrencyRisk      pricing.CurrencyRisk       `json:"currencyRisk"`
	Delay             pricing.DelayImpact        `json:"delay"`
	DelayCurve        []pricing.DelayCostPoint   `json:"delayCurve"`
	TargetProfit      pricing.TargetProfitPlan   `json:"targetProfit"`
	TargetROI         pricing.TargetROIPlan      `json:"targetROI"`
	ROI               float64                    `json:"roi"`
	Marketing         pricing.MarketingEconomics `json:"marketing"`
	MarketingMonths   []pricing.MarketingMonth   `json:"marketingMonths"`
	ExpenseTypes      pricing.ExpenseTypeSummary `json:"expenseTypes"`
}

// Generate runs the whole engine over the input and collects every view.
// A nil logger is replaced with a no-op logger.
func Generate(logger *zap.Logger, input pricing.ProjectInput) Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := pricing.Recompute(input)
	salesRevenue := pricing.SalesRevenue(input)

	projector := pricing.NewScheduleProjector(logger)

	logger.Debug("generating report",
		zap.String("projectName", input.ProjectName),
		zap.Float64("totalCost", results.Costs.Total),
		zap.Float64("totalRevenue", results.TotalRevenue),
	)

	return Report{
		Input:             input,
		Results:           results,
		FullMarketingCost: pricing.FullMarketingCost(input),
		SalesRevenue:      salesRevenue,
		Scenarios:         pricing.EvaluateScenarios(input, input.Scenarios),
		CashFlow:          projector.ProjectCashFlow(input),
		ProfitTimeline:    projector.ProjectProfitTimeline(input, results.Costs.Total),
		CurrencyRisk:      pricing.EvaluateCurrencyRisk(results.Costs.Total, input.CurrencyRiskRate),
		Delay:             pricing.EvaluateDelay(input),
		DelayCurve:        pricing.DelayCostCurve(input, constants.DefaultDelayCurveHorizon),
		TargetProfit:      pricing.SolveTargetProfit(results.Costs.Total, input),
		TargetROI:         pricing.SolveTargetROI(results.Costs.Total, input),
		ROI:               pricing.ReturnOnInvestment(results.Costs.Total, salesRevenue),
		Marketing:         pricing.EvaluateMarketing(input, salesRevenue),
		MarketingMonths:   pricing.MonthlyMarketingSpread(input, salesRevenue),
		ExpenseTypes:      pricing.SummarizeExpenseTypes(input.ExpenseTypes),
	}
}
