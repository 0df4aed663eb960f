// Package pricing implements the calculation engine for software project
// pricing: cost aggregation, revenue projection, monthly schedules, and the
// what-if evaluators built on top of them. Every function is a pure
// transform of a ProjectInput snapshot; degenerate inputs (zero
// denominators, empty lists) resolve to zero-valued output rather than
// errors.
package pricing

import "time"

// Role identifies a personnel cost row.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleUIUX      Role = "ui_ux"
	RoleTester    Role = "tester"
	RolePM        Role = "pm"
	RoleDevOps    Role = "devops"
	RoleOther     Role = "other"
)

// SalesModel selects how revenue is derived.
type SalesModel string

const (
	SalesOneTime      SalesModel = "one_time"
	SalesSubscription SalesModel = "subscription"
	SalesHybrid       SalesModel = "hybrid"
)

// ScenarioKind tags one of the three what-if multiplier sets.
type ScenarioKind string

const (
	ScenarioOptimistic  ScenarioKind = "optimistic"
	ScenarioNormal      ScenarioKind = "normal"
	ScenarioPessimistic ScenarioKind = "pessimistic"
)

// ExpenseClass classifies an expense row as fixed or variable.
type ExpenseClass string

const (
	ExpenseFixed    ExpenseClass = "fixed"
	ExpenseVariable ExpenseClass = "variable"
)

// CurrencyCode identifies a currency in the reference rate table.
// TRY is the reporting base currency and its rate is always 1.
type CurrencyCode string

const (
	CurrencyTRY CurrencyCode = "TRY"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
)

// PersonnelItem is one row of the personnel cost list. ID is only used by
// data-entry surfaces for list management; ordering is irrelevant to the
// calculations.
type PersonnelItem struct {
	ID            string  `json:"id,omitempty"`
	Role          Role    `json:"role"`
	MonthlySalary float64 `json:"monthlySalary"`
	Count         int     `json:"count"`
	Duration      int     `json:"duration"` // months this row stays staffed
}

// CurrencyRate is one entry of the reference exchange-rate table, expressed
// as units of TRY per one unit of Code.
type CurrencyRate struct {
	Code CurrencyCode `json:"code"`
	Rate float64      `json:"rate"`
}

// Scenario is a named multiplier set applied when re-running the engine
// under optimistic or pessimistic assumptions.
type Scenario struct {
	Kind                ScenarioKind `json:"type" mapstructure:"type"`
	Name                string       `json:"name"`
	PersonnelMultiplier float64      `json:"personnelMultiplier"`
	DurationMultiplier  float64      `json:"durationMultiplier"`
	SalesMultiplier     float64      `json:"salesMultiplier"`
	ExpensesMultiplier  float64      `json:"expensesMultiplier"`
}

// NormalScenario returns the immutable identity scenario. The normal case
// is never read from mutable input rows so its multipliers cannot drift
// from 1.0.
func NormalScenario() Scenario {
	return Scenario{
		Kind:                ScenarioNormal,
		Name:                "Normal",
		PersonnelMultiplier: 1,
		DurationMultiplier:  1,
		SalesMultiplier:     1,
		ExpensesMultiplier:  1,
	}
}

// ExpenseItem is one row of the fixed/variable re-classification view over
// the cost items. It feeds reporting and the delay evaluator only; the
// headline totals are never recomputed from it.
type ExpenseItem struct {
	Name   string       `json:"name"`
	Amount float64      `json:"amount"`
	Class  ExpenseClass `json:"type" mapstructure:"type"`
}

// ProjectInput is the single source-of-truth record for one pricing
// scenario. The engine never retains a reference to it across calls; every
// operation is a fresh transform of the snapshot it is handed.
type ProjectInput struct {
	// Personnel
	PersonnelItems []PersonnelItem `json:"personnelItems"`

	// Technical costs (one-time-equivalent amounts)
	ServerCost         float64 `json:"serverCost"`
	DomainCost         float64 `json:"domainCost"`
	ThirdPartyLicenses float64 `json:"thirdPartyLicenses"`
	DataStorageCost    float64 `json:"dataStorageCost"`
	BackupCost         float64 `json:"backupCost"`

	// Management costs
	AccountingCost float64 `json:"accountingCost"`
	OfficeCost     float64 `json:"officeCost"` // monthly rate
	OfficeMonths   int     `json:"officeMonths"`
	HardwareCost   float64 `json:"hardwareCost"`

	// Marketing costs
	AdvertisingBudget      float64 `json:"advertisingBudget"`
	SalesRepCost           float64 `json:"salesRepCost"`
	DemoCost               float64 `json:"demoCost"`
	WebsiteCost            float64 `json:"websiteCost"`
	MonthlyMarketingBudget float64 `json:"monthlyMarketingBudget"`

	// Contingency
	ContingencyRate float64 `json:"contingencyRate"` // percent of the pre-contingency subtotal

	// Revenue
	SalesModel             SalesModel `json:"salesModel"`
	OneTimeSalesPrice      float64    `json:"oneTimeSalesPrice"`
	PlannedSalesCount      int        `json:"plannedSalesCount"`
	MonthlySubscriptionFee float64    `json:"monthlySubscriptionFee"`
	EstimatedUserCount     int        `json:"estimatedUserCount"`
	SupportRevenue         float64    `json:"supportRevenue"` // annual flat add-on
	VATRate                float64    `json:"vatRate"`

	// Timeline
	ProjectDuration int `json:"projectDuration"` // months

	// Currency
	CurrencyRates    []CurrencyRate `json:"currencyRates"`
	CurrencyRiskRate float64        `json:"currencyRiskRate"`

	// Scenarios
	Scenarios []Scenario `json:"scenarios"`

	// Target-driven solver inputs
	TargetROI    float64 `json:"targetROI"`
	TargetProfit float64 `json:"targetProfit"`

	// Fixed/variable reporting view
	ExpenseTypes []ExpenseItem `json:"expenseTypes"`

	// Delay simulation
	DelayMonths  int     `json:"delayMonths"`
	OvertimeRate float64 `json:"overtimeRate"` // percent multiplier on monthly personnel cost

	// Marketing and licensing
	StoreCommissionRate float64 `json:"storeCommissionRate"` // percent of revenue

	// Pass-through metadata, not used in arithmetic
	ProjectName  string       `json:"projectName"`
	ClientName   string       `json:"clientName"`
	ProjectID    string       `json:"projectId"`
	CurrencyCode CurrencyCode `json:"currencyCode"`
	Language     string       `json:"language"`
	SavedDate    *time.Time   `json:"savedDate,omitempty"`
}

// DurationOrDefault returns the project duration, substituting twelve
// months when the field is unset.
func (p ProjectInput) DurationOrDefault() int {
	if p.ProjectDuration <= 0 {
		return 12
	}
	return p.ProjectDuration
}
