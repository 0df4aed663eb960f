package pricing

import (
	"github.com/iwvelando/project-pricing/pkg/constants"
	"github.com/iwvelando/project-pricing/pkg/mathutil"
	"go.uber.org/zap"
)

// MonthRecord is one month of the itemized cash-flow schedule, 1-indexed
// through the project duration.
type MonthRecord struct {
	Month             int     `json:"month"`
	Personnel         float64 `json:"personnel"`
	Technical         float64 `json:"technical"`
	Management        float64 `json:"management"`
	Marketing         float64 `json:"marketing"`
	Other             float64 `json:"other"`
	Revenue           float64 `json:"revenue"`
	Balance           float64 `json:"balance"`
	CumulativeBalance float64 `json:"cumulativeBalance"`
}

// ProfitMonth is one month of the flat-cost profit timeline.
type ProfitMonth struct {
	Month             int     `json:"month"`
	Revenue           float64 `json:"revenue"`
	Cost              float64 `json:"cost"`
	Profit            float64 `json:"profit"`
	CumulativeRevenue float64 `json:"cumulativeRevenue"`
	CumulativeCost    float64 `json:"cumulativeCost"`
	CumulativeProfit  float64 `json:"cumulativeProfit"`
}

// ProfitTimeline is the flat-cost schedule plus the first month at which
// cumulative profit turns non-negative. BreakEvenMonth is 0 when profit
// never recovers within the horizon.
type ProfitTimeline struct {
	Months         []ProfitMonth `json:"months"`
	BreakEvenMonth int           `json:"breakEvenMonth"`
}

// ScheduleProjector distributes costs and revenue across the project's
// month-indexed timeline. Each call recomputes fresh from the input
// snapshot; no cursor is retained.
type ScheduleProjector struct {
	logger *zap.Logger
}

// NewScheduleProjector creates a projector. A nil logger is replaced with
// a no-op logger.
func NewScheduleProjector(logger *zap.Logger) *ScheduleProjector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleProjector{logger: logger}
}

// ProjectCashFlow builds the itemized monthly schedule. Personnel rows
// contribute salary×count only while the month index is within the row's
// own duration. Server cost is spread over the project, domain cost over a
// year. Half the advertising budget lands in month 1 and the remaining
// half is spread evenly over all months; month 1 gets only the
// front-loaded half, not an even share on top. One-time sales revenue
// lands wholly in the final month, subscription revenue every month.
func (sp *ScheduleProjector) ProjectCashFlow(input ProjectInput) []MonthRecord {
	duration := input.DurationOrDefault()
	schedule := make([]MonthRecord, 0, duration)
	var cumulative float64

	for i := 1; i <= duration; i++ {
		var personnel float64
		for _, item := range input.PersonnelItems {
			if i <= item.Duration {
				personnel += item.MonthlySalary * float64(item.Count)
			}
		}

		technical := input.ServerCost/float64(duration) + input.DomainCost/constants.MonthsPerYear
		management := input.OfficeCost

		var marketing float64
		if i == 1 {
			marketing = input.AdvertisingBudget / 2
		} else {
			marketing = input.AdvertisingBudget / (2 * float64(duration))
		}

		var revenue float64
		if input.SalesModel == SalesSubscription || input.SalesModel == SalesHybrid {
			revenue += input.MonthlySubscriptionFee * float64(input.EstimatedUserCount)
		}
		if (input.SalesModel == SalesOneTime || input.SalesModel == SalesHybrid) && i == duration {
			revenue += input.OneTimeSalesPrice * float64(input.PlannedSalesCount)
		}

		other := mathutil.ApplyPercentage(personnel+technical+management+marketing, input.ContingencyRate)
		balance := revenue - (personnel + technical + management + marketing + other)
		cumulative += balance

		sp.logger.Debug("cash flow month computed",
			zap.Int("month", i),
			zap.Float64("balance", balance),
			zap.Float64("cumulativeBalance", cumulative),
		)

		schedule = append(schedule, MonthRecord{
			Month:             i,
			Personnel:         personnel,
			Technical:         technical,
			Management:        management,
			Marketing:         marketing,
			Other:             other,
			Revenue:           revenue,
			Balance:           balance,
			CumulativeBalance: cumulative,
		})
	}

	return schedule
}

// ProjectProfitTimeline builds the flat-cost schedule used for ROI and
// break-even-month reporting: total cost divided evenly across the
// timeline rather than itemized per month. Kept separate from
// ProjectCashFlow so the two cost-distribution models never mix.
func (sp *ScheduleProjector) ProjectProfitTimeline(input ProjectInput, totalCost float64) ProfitTimeline {
	duration := input.DurationOrDefault()
	months := make([]ProfitMonth, 0, duration)

	monthlyCost := totalCost / float64(duration)
	var cumulativeRevenue, cumulativeCost float64
	breakEvenMonth := 0

	for i := 1; i <= duration; i++ {
		var revenue float64
		if input.SalesModel == SalesSubscription || input.SalesModel == SalesHybrid {
			revenue += input.MonthlySubscriptionFee * float64(input.EstimatedUserCount)
		}
		if (input.SalesModel == SalesOneTime || input.SalesModel == SalesHybrid) && i == duration {
			revenue += input.OneTimeSalesPrice * float64(input.PlannedSalesCount)
		}

		cumulativeRevenue += revenue
		cumulativeCost += monthlyCost
		cumulativeProfit := cumulativeRevenue - cumulativeCost

		if breakEvenMonth == 0 && cumulativeProfit >= 0 {
			breakEvenMonth = i
		}

		months = append(months, ProfitMonth{
			Month:             i,
			Revenue:           revenue,
			Cost:              monthlyCost,
			Profit:            revenue - monthlyCost,
			CumulativeRevenue: cumulativeRevenue,
			CumulativeCost:    cumulativeCost,
			CumulativeProfit:  cumulativeProfit,
		})
	}

	return ProfitTimeline{Months: months, BreakEvenMonth: breakEvenMonth}
}
