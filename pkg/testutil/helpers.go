// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/project-pricing/pkg/pricing"
)

// FindScenario finds a scenario result by kind in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []pricing.ScenarioResult, kind pricing.ScenarioKind) *pricing.ScenarioResult {
	for i := range results {
		if results[i].Kind == kind {
			return &results[i]
		}
	}
	return nil
}

// ApproxEqual reports whether two amounts agree within the given tolerance.
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// BaseProjectInput returns a small, fully populated input used across the
// engine tests: two developers for six months, a 10% contingency, and a
// one-time sales model of 100 units at 10000.
func BaseProjectInput() pricing.ProjectInput {
	return pricing.ProjectInput{
		PersonnelItems: []pricing.PersonnelItem{
			{Role: pricing.RoleDeveloper, MonthlySalary: 40000, Count: 2, Duration: 6},
		},
		ContingencyRate:   10,
		SalesModel:        pricing.SalesOneTime,
		OneTimeSalesPrice: 10000,
		PlannedSalesCount: 100,
		VATRate:           20,
		ProjectDuration:   6,
	}
}
