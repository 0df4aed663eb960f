package pricing

import (
	"math"
	"testing"
)

func baseInput() ProjectInput {
	return ProjectInput{
		PersonnelItems: []PersonnelItem{
			{Role: RoleDeveloper, MonthlySalary: 40000, Count: 2, Duration: 6},
		},
		ContingencyRate:   10,
		SalesModel:        SalesOneTime,
		OneTimeSalesPrice: 10000,
		PlannedSalesCount: 100,
		VATRate:           20,
		ProjectDuration:   6,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 0.01
}

func TestAggregateCosts(t *testing.T) {
	tests := []struct {
		name     string
		input    ProjectInput
		expected CostBreakdown
	}{
		{
			name:  "Personnel with contingency",
			input: baseInput(),
			expected: CostBreakdown{
				Personnel:   480000,
				Subtotal:    480000,
				Contingency: 48000,
				Total:       528000,
			},
		},
		{
			name: "All categories",
			input: ProjectInput{
				PersonnelItems: []PersonnelItem{
					{Role: RoleDeveloper, MonthlySalary: 10000, Count: 1, Duration: 2},
				},
				ServerCost:        1000,
				DomainCost:        200,
				AccountingCost:    500,
				OfficeCost:        2000,
				OfficeMonths:      3,
				AdvertisingBudget: 4000,
				ContingencyRate:   0,
			},
			expected: CostBreakdown{
				Personnel:  20000,
				Technical:  1200,
				Management: 6500,
				Marketing:  4000,
				Subtotal:   31700,
				Total:      31700,
			},
		},
		{
			name:     "Empty input is all zeros",
			input:    ProjectInput{},
			expected: CostBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateCosts(tt.input)
			if !approxEqual(got.Personnel, tt.expected.Personnel) {
				t.Errorf("Personnel = %v, expected %v", got.Personnel, tt.expected.Personnel)
			}
			if !approxEqual(got.Technical, tt.expected.Technical) {
				t.Errorf("Technical = %v, expected %v", got.Technical, tt.expected.Technical)
			}
			if !approxEqual(got.Management, tt.expected.Management) {
				t.Errorf("Management = %v, expected %v", got.Management, tt.expected.Management)
			}
			if !approxEqual(got.Marketing, tt.expected.Marketing) {
				t.Errorf("Marketing = %v, expected %v", got.Marketing, tt.expected.Marketing)
			}
			if !approxEqual(got.Subtotal, tt.expected.Subtotal) {
				t.Errorf("Subtotal = %v, expected %v", got.Subtotal, tt.expected.Subtotal)
			}
			if !approxEqual(got.Contingency, tt.expected.Contingency) {
				t.Errorf("Contingency = %v, expected %v", got.Contingency, tt.expected.Contingency)
			}
			if !approxEqual(got.Total, tt.expected.Total) {
				t.Errorf("Total = %v, expected %v", got.Total, tt.expected.Total)
			}
		})
	}
}

func TestFullMarketingCost(t *testing.T) {
	input := ProjectInput{
		AdvertisingBudget:      10000,
		SalesRepCost:           5000,
		MonthlyMarketingBudget: 1000,
		ProjectDuration:        12,
	}

	got := FullMarketingCost(input)
	if !approxEqual(got, 27000) {
		t.Errorf("FullMarketingCost = %v, expected 27000", got)
	}

	// The base aggregator must exclude the ongoing monthly budget.
	base := AggregateCosts(input)
	if !approxEqual(base.Marketing, 15000) {
		t.Errorf("base marketing = %v, expected 15000", base.Marketing)
	}
}

func TestRecompute(t *testing.T) {
	got := Recompute(baseInput())

	if !approxEqual(got.Costs.Total, 528000) {
		t.Errorf("total cost = %v, expected 528000", got.Costs.Total)
	}
	if !approxEqual(got.TotalRevenue, 1000000) {
		t.Errorf("revenue = %v, expected 1000000", got.TotalRevenue)
	}
	if !approxEqual(got.Profit, 472000) {
		t.Errorf("profit = %v, expected 472000", got.Profit)
	}
	if !approxEqual(got.ProfitMargin, 47.2) {
		t.Errorf("margin = %v, expected 47.2", got.ProfitMargin)
	}
	if got.BreakEvenSales != 53 {
		t.Errorf("break-even = %v, expected 53", got.BreakEvenSales)
	}
	if !approxEqual(got.SuggestedPriceWithVAT, 633600) {
		t.Errorf("cost incl. VAT = %v, expected 633600", got.SuggestedPriceWithVAT)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	input := baseInput()
	first := Recompute(input)
	second := Recompute(input)
	if first != second {
		t.Errorf("two runs over the same input disagree: %+v vs %+v", first, second)
	}
}

func TestRecomputeZeroInput(t *testing.T) {
	got := Recompute(ProjectInput{})

	if got.Costs.Total != 0 || got.TotalRevenue != 0 || got.Profit != 0 {
		t.Errorf("zero input produced nonzero totals: %+v", got)
	}
	if got.ProfitMargin != 0 || got.BreakEvenSales != 0 {
		t.Errorf("zero input produced nonzero ratios: %+v", got)
	}
	if math.IsNaN(got.ProfitMargin) || math.IsNaN(got.SuggestedPriceWithVAT) {
		t.Errorf("zero input produced NaN: %+v", got)
	}
}

func TestExpenseBreakdownSumsToHundred(t *testing.T) {
	input := baseInput()
	input.ServerCost = 12000
	input.OfficeCost = 3000
	input.OfficeMonths = 6
	input.AdvertisingBudget = 20000

	got := Recompute(input)

	var sum float64
	for _, share := range got.Breakdown.Ordered() {
		if share.Percent < 0 {
			t.Errorf("share %s is negative: %v", share.Name, share.Percent)
		}
		sum += share.Percent
	}
	if !approxEqual(sum, 100) {
		t.Errorf("shares sum to %v, expected 100", sum)
	}
}

func TestBreakEvenNeverDecreasesWithCost(t *testing.T) {
	input := baseInput()
	previous := 0
	for serverCost := 0.0; serverCost <= 100000; serverCost += 10000 {
		input.ServerCost = serverCost
		got := Recompute(input)
		if got.BreakEvenSales < previous {
			t.Fatalf("break-even decreased from %d to %d when cost rose", previous, got.BreakEvenSales)
		}
		previous = got.BreakEvenSales
	}
}
