// Package output provides utilities for formatting and displaying pricing
// reports.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/project-pricing/internal/report"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printerFor(lang string) *message.Printer {
	if strings.EqualFold(strings.TrimSpace(lang), "tr") {
		return message.NewPrinter(language.Turkish)
	}
	return message.NewPrinter(language.English)
}

// PrettyFormat outputs a human-readable summary rather than a
// machine-readable table. Currency figures are grouped per the configured
// language.
func PrettyFormat(rep report.Report) {
	p := printerFor(rep.Input.Language)

	name := rep.Input.ProjectName
	if name == "" {
		name = "(unnamed project)"
	}
	fmt.Printf("--- Results for project %s ---\n", name)

	_, _ = p.Printf("Personnel cost       | %.2f\n", rep.Results.Costs.Personnel)
	_, _ = p.Printf("Technical cost       | %.2f\n", rep.Results.Costs.Technical)
	_, _ = p.Printf("Management cost      | %.2f\n", rep.Results.Costs.Management)
	_, _ = p.Printf("Marketing cost       | %.2f\n", rep.Results.Costs.Marketing)
	_, _ = p.Printf("Contingency          | %.2f\n", rep.Results.Costs.Contingency)
	_, _ = p.Printf("Total cost           | %.2f\n", rep.Results.Costs.Total)
	_, _ = p.Printf("Total revenue        | %.2f\n", rep.Results.TotalRevenue)
	_, _ = p.Printf("Profit               | %.2f (%.1f%%)\n", rep.Results.Profit, rep.Results.ProfitMargin)
	_, _ = p.Printf("Break-even sales     | %d units\n", rep.Results.BreakEvenSales)
	_, _ = p.Printf("Cost incl. VAT       | %.2f\n", rep.Results.SuggestedPriceWithVAT)
	_, _ = p.Printf("ROI                  | %.1f%%\n", rep.ROI)

	fmt.Printf("\nScenario        | Cost          | Revenue       | Profit\n")
	fmt.Printf("________        | ____          | _______       | ______\n")
	for _, scenario := range rep.Scenarios {
		_, _ = p.Printf("%-15s | %13.2f | %13.2f | %13.2f\n",
			scenario.Name, scenario.TotalCost, scenario.TotalRevenue, scenario.Profit)
	}

	if rep.Delay.DelayMonths > 0 {
		fmt.Printf("\n")
		_, _ = p.Printf("Delay of %d months: overtime recovery %.2f vs schedule extension %.2f (recommended: %s)\n",
			rep.Delay.DelayMonths, rep.Delay.RecoveryCost, rep.Delay.ExtendedTotal, rep.Delay.Recommended)
	}
}

// CsvString renders the monthly cash-flow schedule in comma-separated value
// format.
func CsvString(rep report.Report) string {
	var b strings.Builder

	b.WriteString(`"month","personnel","technical","management","marketing","other","revenue","balance","cumulativeBalance"`)
	b.WriteString("\n")
	for _, month := range rep.CashFlow {
		fmt.Fprintf(&b, `"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			month.Month, month.Personnel, month.Technical, month.Management,
			month.Marketing, month.Other, month.Revenue, month.Balance, month.CumulativeBalance)
		b.WriteString("\n")
	}

	return b.String()
}

// CsvFormat outputs the schedule in comma-separated value format.
func CsvFormat(rep report.Report) {
	fmt.Print(CsvString(rep))
}
