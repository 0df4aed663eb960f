package pricing

import "testing"

func TestCalculateRevenue(t *testing.T) {
	tests := []struct {
		name     string
		input    ProjectInput
		expected float64
	}{
		{
			name: "One-time model",
			input: ProjectInput{
				SalesModel:        SalesOneTime,
				OneTimeSalesPrice: 10000,
				PlannedSalesCount: 100,
			},
			expected: 1000000,
		},
		{
			name: "Subscription model annualizes",
			input: ProjectInput{
				SalesModel:             SalesSubscription,
				MonthlySubscriptionFee: 100,
				EstimatedUserCount:     50,
			},
			expected: 60000,
		},
		{
			name: "Hybrid sums both streams",
			input: ProjectInput{
				SalesModel:             SalesHybrid,
				OneTimeSalesPrice:      1000,
				PlannedSalesCount:      10,
				MonthlySubscriptionFee: 100,
				EstimatedUserCount:     50,
			},
			expected: 70000,
		},
		{
			name: "Support revenue added in every model",
			input: ProjectInput{
				SalesModel:        SalesOneTime,
				OneTimeSalesPrice: 1000,
				PlannedSalesCount: 10,
				SupportRevenue:    5000,
			},
			expected: 15000,
		},
		{
			name: "One-time model ignores subscription fields",
			input: ProjectInput{
				SalesModel:             SalesOneTime,
				OneTimeSalesPrice:      1000,
				PlannedSalesCount:      10,
				MonthlySubscriptionFee: 100,
				EstimatedUserCount:     50,
			},
			expected: 10000,
		},
		{
			name:     "Empty input",
			input:    ProjectInput{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRevenue(tt.input)
			if !approxEqual(got, tt.expected) {
				t.Errorf("CalculateRevenue = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSalesRevenueExcludesSupport(t *testing.T) {
	input := ProjectInput{
		SalesModel:        SalesOneTime,
		OneTimeSalesPrice: 1000,
		PlannedSalesCount: 10,
		SupportRevenue:    5000,
	}

	if got := SalesRevenue(input); !approxEqual(got, 10000) {
		t.Errorf("SalesRevenue = %v, expected 10000", got)
	}
	if got := CalculateRevenue(input); !approxEqual(got, 15000) {
		t.Errorf("CalculateRevenue = %v, expected 15000", got)
	}
}
