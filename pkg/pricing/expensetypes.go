package pricing

import "github.com/iwvelando/project-pricing/pkg/mathutil"

// ExpenseTypeSummary is the fixed/variable reporting view over the
// re-classified expense rows. It never feeds back into the headline
// totals.
type ExpenseTypeSummary struct {
	Fixed           float64 `json:"fixed"`
	Variable        float64 `json:"variable"`
	Total           float64 `json:"total"`
	FixedPercent    float64 `json:"fixedPercent"`
	VariablePercent float64 `json:"variablePercent"`
}

// SummarizeExpenseTypes sums the fixed and variable classes and their
// shares of the combined total. Shares are 0 for an empty or all-zero
// list.
func SummarizeExpenseTypes(items []ExpenseItem) ExpenseTypeSummary {
	var fixed, variable float64
	for _, item := range items {
		switch item.Class {
		case ExpenseFixed:
			fixed += item.Amount
		case ExpenseVariable:
			variable += item.Amount
		}
	}

	total := fixed + variable
	return ExpenseTypeSummary{
		Fixed:           fixed,
		Variable:        variable,
		Total:           total,
		FixedPercent:    mathutil.CalculatePercentage(fixed, total),
		VariablePercent: mathutil.CalculatePercentage(variable, total),
	}
}
