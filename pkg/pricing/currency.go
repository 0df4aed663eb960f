package pricing

import "github.com/iwvelando/project-pricing/pkg/mathutil"

// CurrencyRisk is the flat exchange-rate stress overlay on the aggregated
// total. Underlying cost items are never converted; the rate table exists
// for reference display only.
type CurrencyRisk struct {
	Impact        float64 `json:"impact"`
	StressedTotal float64 `json:"stressedTotal"`
}

// EvaluateCurrencyRisk applies the risk percentage to the total cost.
func EvaluateCurrencyRisk(totalCost, riskRate float64) CurrencyRisk {
	impact := mathutil.ApplyPercentage(totalCost, riskRate)
	return CurrencyRisk{
		Impact:        impact,
		StressedTotal: totalCost + impact,
	}
}

// ConvertFromTRY expresses a TRY amount in the given currency using the
// reference rate table. Returns 0 when the code is absent or its rate is
// not positive.
func ConvertFromTRY(amount float64, rates []CurrencyRate, code CurrencyCode) float64 {
	for _, rate := range rates {
		if rate.Code == code {
			if rate.Rate <= 0 {
				return 0
			}
			return amount / rate.Rate
		}
	}
	return 0
}
