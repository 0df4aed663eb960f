package pricing

import (
	"math"

	"github.com/iwvelando/project-pricing/pkg/mathutil"
)

// DelayStrategy names the cheaper remediation for a schedule slip.
type DelayStrategy string

const (
	// StrategyOvertime completes the project on the original schedule via
	// overtime at increased personnel cost.
	StrategyOvertime DelayStrategy = "overtime"
	// StrategyExtend absorbs the delay by extending the schedule, incurring
	// extra personnel and fixed costs.
	StrategyExtend DelayStrategy = "extend"
	// StrategyNone is reported when there is no delay to remediate.
	StrategyNone DelayStrategy = ""
)

// DelayImpact compares the two remediation strategies for a given delay.
type DelayImpact struct {
	DelayMonths          int           `json:"delayMonths"`
	OvertimeRate         float64       `json:"overtimeRate"`
	TotalHeadCount       int           `json:"totalHeadCount"`
	MonthlyPersonnelCost float64       `json:"monthlyPersonnelCost"`
	RecoveryMonths       int           `json:"recoveryMonths"`
	RecoveryCost         float64       `json:"recoveryCost"`
	ExtendedPersonnel    float64       `json:"extendedPersonnelCost"`
	ExtendedFixed        float64       `json:"extendedFixedCost"`
	ExtendedTotal        float64       `json:"extendedTotalCost"`
	CostDifference       float64       `json:"costDifference"` // recovery minus extension; positive favors extension
	Recommended          DelayStrategy `json:"recommended"`
}

// EvaluateDelay compares finishing on time with overtime against extending
// the schedule. The monthly personnel figure is the sum of salary×count
// over all rows (the per-head ratio collapses back to the sum; kept as the
// reference behavior). A zero delay yields the no-delay state with all
// added costs 0 and no recommendation.
func EvaluateDelay(input ProjectInput) DelayImpact {
	var headCount int
	var sumMonthly float64
	for _, item := range input.PersonnelItems {
		headCount += item.Count
		sumMonthly += item.MonthlySalary * float64(item.Count)
	}

	var totalMonthly float64
	if headCount > 0 {
		avg := sumMonthly / float64(headCount)
		totalMonthly = avg * float64(headCount)
	}

	if input.DelayMonths <= 0 {
		return DelayImpact{
			OvertimeRate:         input.OvertimeRate,
			TotalHeadCount:       headCount,
			MonthlyPersonnelCost: totalMonthly,
			Recommended:          StrategyNone,
		}
	}

	recoveryMonths, recoveryCost := overtimeRecovery(input.DelayMonths, input.OvertimeRate, totalMonthly)
	extendedPersonnel, extendedFixed := extensionCosts(input, input.DelayMonths, totalMonthly)
	extendedTotal := extendedPersonnel + extendedFixed

	difference := recoveryCost - extendedTotal
	recommended := StrategyOvertime
	if difference > 0 {
		recommended = StrategyExtend
	}

	return DelayImpact{
		DelayMonths:          input.DelayMonths,
		OvertimeRate:         input.OvertimeRate,
		TotalHeadCount:       headCount,
		MonthlyPersonnelCost: totalMonthly,
		RecoveryMonths:       recoveryMonths,
		RecoveryCost:         recoveryCost,
		ExtendedPersonnel:    extendedPersonnel,
		ExtendedFixed:        extendedFixed,
		ExtendedTotal:        extendedTotal,
		CostDifference:       difference,
		Recommended:          recommended,
	}
}

// DelayCostPoint is one point of the delay cost curve: both strategies'
// added cost at a given delay length.
type DelayCostPoint struct {
	Months        int     `json:"months"`
	OvertimeCost  float64 `json:"overtimeCost"`
	ExtensionCost float64 `json:"extensionCost"`
}

// DelayCostCurve tabulates both strategies' added costs for delays from 0
// through maxDelay months, for charting.
func DelayCostCurve(input ProjectInput, maxDelay int) []DelayCostPoint {
	var totalMonthly float64
	for _, item := range input.PersonnelItems {
		totalMonthly += item.MonthlySalary * float64(item.Count)
	}

	points := make([]DelayCostPoint, 0, maxDelay+1)
	for delay := 0; delay <= maxDelay; delay++ {
		_, recoveryCost := overtimeRecovery(delay, input.OvertimeRate, totalMonthly)
		extendedPersonnel, extendedFixed := extensionCosts(input, delay, totalMonthly)
		points = append(points, DelayCostPoint{
			Months:        delay,
			OvertimeCost:  recoveryCost,
			ExtensionCost: extendedPersonnel + extendedFixed,
		})
	}
	return points
}

func overtimeRecovery(delayMonths int, overtimeRate, totalMonthly float64) (int, float64) {
	overtimeFactor := 1 + overtimeRate/100

	recoveryMonths := delayMonths
	if overtimeRate > 0 {
		recoveryMonths = int(math.Ceil(float64(delayMonths) / (overtimeRate / 100)))
	}

	return recoveryMonths, totalMonthly * overtimeFactor * float64(recoveryMonths)
}

func extensionCosts(input ProjectInput, delayMonths int, totalMonthly float64) (personnel, fixed float64) {
	personnel = totalMonthly * float64(delayMonths)

	var fixedTotal float64
	for _, expense := range input.ExpenseTypes {
		if expense.Class == ExpenseFixed {
			fixedTotal += expense.Amount
		}
	}
	monthlyFixed := mathutil.SafeDivide(fixedTotal, float64(input.DurationOrDefault()))
	fixed = monthlyFixed * float64(delayMonths)
	return personnel, fixed
}
