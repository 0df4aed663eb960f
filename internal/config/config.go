// Package config defines the data structures related to configuration and
// includes functions for loading and defaulting the project input.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/project-pricing/pkg/constants"
	"github.com/iwvelando/project-pricing/pkg/pricing"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for project-pricing: the project
// input snapshot plus logging and output preferences.
type Configuration struct {
	Project pricing.ProjectInput `yaml:"project"`
	Logging LoggingConfig        `yaml:"logging,omitempty"`
	Output  OutputConfig         `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader, for callers that receive the input over HTTP.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills absent fields with the documented defaults. Absent
// numerics stay 0; enums, the timeline, the rate table, and the scenario
// set take the standard values. The TRY rate is forced to 1 and the normal
// scenario is forced to the identity regardless of what the file said.
func (conf *Configuration) ApplyDefaults() {
	project := &conf.Project

	if project.SalesModel == "" {
		project.SalesModel = pricing.SalesOneTime
	}
	if project.CurrencyCode == "" {
		project.CurrencyCode = pricing.CurrencyTRY
	}
	if project.Language == "" {
		project.Language = "tr"
	}
	if project.ProjectDuration == 0 {
		project.ProjectDuration = constants.DefaultProjectDuration
	}

	if len(project.CurrencyRates) == 0 {
		project.CurrencyRates = DefaultCurrencyRates()
	}
	for i := range project.CurrencyRates {
		if project.CurrencyRates[i].Code == pricing.CurrencyTRY {
			project.CurrencyRates[i].Rate = 1
		}
	}

	if len(project.Scenarios) == 0 {
		project.Scenarios = DefaultScenarios()
	}
	for i := range project.Scenarios {
		if project.Scenarios[i].Kind == pricing.ScenarioNormal {
			name := project.Scenarios[i].Name
			project.Scenarios[i] = pricing.NormalScenario()
			if name != "" {
				project.Scenarios[i].Name = name
			}
		}
	}
}

// DefaultCurrencyRates returns the standard reference rate table with TRY
// as the base currency.
func DefaultCurrencyRates() []pricing.CurrencyRate {
	return []pricing.CurrencyRate{
		{Code: pricing.CurrencyTRY, Rate: 1},
		{Code: pricing.CurrencyUSD, Rate: 30.5},
		{Code: pricing.CurrencyEUR, Rate: 33.2},
		{Code: pricing.CurrencyGBP, Rate: 39.1},
	}
}

// DefaultScenarios returns the standard optimistic/normal/pessimistic
// multiplier sets in reporting order.
func DefaultScenarios() []pricing.Scenario {
	return []pricing.Scenario{
		{
			Kind:                pricing.ScenarioOptimistic,
			Name:                "Optimistic",
			PersonnelMultiplier: 0.9,
			DurationMultiplier:  0.8,
			SalesMultiplier:     1.2,
			ExpensesMultiplier:  0.9,
		},
		pricing.NormalScenario(),
		{
			Kind:                pricing.ScenarioPessimistic,
			Name:                "Pessimistic",
			PersonnelMultiplier: 1.2,
			DurationMultiplier:  1.3,
			SalesMultiplier:     0.8,
			ExpensesMultiplier:  1.1,
		},
	}
}
