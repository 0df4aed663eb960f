// Package constants provides shared constants for the project-pricing application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// ScenarioMarginTarget is the margin applied to the per-unit cost when
	// suggesting a scenario price (20% on top of cost)
	ScenarioMarginTarget = 1.2

	// DefaultProjectDuration is the timeline length assumed when none is set
	DefaultProjectDuration = 12

	// DefaultDelayCurveHorizon is how many delay months the delay cost curve covers
	DefaultDelayCurveHorizon = 6
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "project.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultStoreFile is the default saved-project database file
	DefaultStoreFile = "projects.db"
)

// AllowedProjectDurations lists the project timeline lengths (in months) the
// planning surface offers; other values are accepted with a validation warning.
var AllowedProjectDurations = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 18, 24}

// CostCategories is the fixed reporting order for the cost breakdown.
// Consumers index the breakdown by position as well as by name.
var CostCategories = []string{"personnel", "technical", "management", "marketing", "contingency"}
