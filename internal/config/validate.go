package config

import (
	"fmt"

	"github.com/iwvelando/project-pricing/pkg/constants"
	"github.com/iwvelando/project-pricing/pkg/pricing"
)

// ValidateConfiguration checks the loaded project input for suspicious
// values and returns human-readable warnings. Warnings never block a run;
// the engine tolerates any input.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	project := conf.Project

	durationAllowed := false
	for _, allowed := range constants.AllowedProjectDurations {
		if project.ProjectDuration == allowed {
			durationAllowed = true
			break
		}
	}
	if !durationAllowed {
		warnings = append(warnings, fmt.Sprintf("project duration %d months is outside the standard set; schedules still use it as-is", project.ProjectDuration))
	}

	for _, item := range project.PersonnelItems {
		if item.MonthlySalary < 0 {
			warnings = append(warnings, fmt.Sprintf("personnel row %q has a negative monthly salary", item.Role))
		}
		if item.Count < 0 {
			warnings = append(warnings, fmt.Sprintf("personnel row %q has a negative head count", item.Role))
		}
		if item.Duration > project.ProjectDuration && project.ProjectDuration > 0 {
			warnings = append(warnings, fmt.Sprintf("personnel row %q is staffed for %d months but the project runs %d", item.Role, item.Duration, project.ProjectDuration))
		}
	}

	if project.ContingencyRate < 0 {
		warnings = append(warnings, "contingency rate is negative")
	}
	if project.VATRate < 0 {
		warnings = append(warnings, "VAT rate is negative")
	}
	if project.OneTimeSalesPrice < 0 {
		warnings = append(warnings, "one-time sales price is negative")
	}
	if project.MonthlySubscriptionFee < 0 {
		warnings = append(warnings, "monthly subscription fee is negative")
	}

	for _, rate := range project.CurrencyRates {
		if rate.Code == pricing.CurrencyTRY && rate.Rate != 1 {
			warnings = append(warnings, "TRY exchange rate must be 1; it is forced during defaulting")
		}
		if rate.Rate <= 0 {
			warnings = append(warnings, fmt.Sprintf("exchange rate for %s is not positive; conversions to it report 0", rate.Code))
		}
	}

	for _, scenario := range project.Scenarios {
		if scenario.Kind != pricing.ScenarioNormal {
			continue
		}
		if scenario.PersonnelMultiplier != 1 || scenario.DurationMultiplier != 1 ||
			scenario.SalesMultiplier != 1 || scenario.ExpensesMultiplier != 1 {
			warnings = append(warnings, "normal scenario multipliers drifted from 1.0; they are reset during defaulting")
		}
	}

	return warnings
}
