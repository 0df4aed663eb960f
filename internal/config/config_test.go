package config

import (
	"strings"
	"testing"

	"github.com/iwvelando/project-pricing/pkg/pricing"
)

const sampleYAML = `
project:
  projectName: CRM Platform
  clientName: Acme
  projectDuration: 6
  contingencyRate: 10
  salesModel: one_time
  oneTimeSalesPrice: 10000
  plannedSalesCount: 100
  vatRate: 20
  personnelItems:
    - role: developer
      monthlySalary: 40000
      count: 2
      duration: 6
logging:
  level: debug
output:
  format: csv
`

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
	}

	if conf.Project.ProjectName != "CRM Platform" {
		t.Errorf("project name = %q, expected %q", conf.Project.ProjectName, "CRM Platform")
	}
	if conf.Project.ProjectDuration != 6 {
		t.Errorf("duration = %d, expected 6", conf.Project.ProjectDuration)
	}
	if len(conf.Project.PersonnelItems) != 1 {
		t.Fatalf("personnel rows = %d, expected 1", len(conf.Project.PersonnelItems))
	}
	item := conf.Project.PersonnelItems[0]
	if item.Role != pricing.RoleDeveloper || item.MonthlySalary != 40000 || item.Count != 2 {
		t.Errorf("personnel row = %+v", item)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationFromReaderInvalidYAML(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("project: ["))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestApplyDefaults(t *testing.T) {
	conf := &Configuration{}
	conf.ApplyDefaults()

	project := conf.Project
	if project.SalesModel != pricing.SalesOneTime {
		t.Errorf("sales model = %q, expected one_time", project.SalesModel)
	}
	if project.CurrencyCode != pricing.CurrencyTRY {
		t.Errorf("currency = %q, expected TRY", project.CurrencyCode)
	}
	if project.Language != "tr" {
		t.Errorf("language = %q, expected tr", project.Language)
	}
	if project.ProjectDuration != 12 {
		t.Errorf("duration = %d, expected 12", project.ProjectDuration)
	}
	if len(project.CurrencyRates) != 4 {
		t.Errorf("rate table has %d entries, expected 4", len(project.CurrencyRates))
	}
	if len(project.Scenarios) != 3 {
		t.Errorf("scenario set has %d entries, expected 3", len(project.Scenarios))
	}
}

func TestApplyDefaultsForcesTRYRate(t *testing.T) {
	conf := &Configuration{
		Project: pricing.ProjectInput{
			CurrencyRates: []pricing.CurrencyRate{
				{Code: pricing.CurrencyTRY, Rate: 2.5},
				{Code: pricing.CurrencyUSD, Rate: 31},
			},
		},
	}
	conf.ApplyDefaults()

	for _, rate := range conf.Project.CurrencyRates {
		if rate.Code == pricing.CurrencyTRY && rate.Rate != 1 {
			t.Errorf("TRY rate = %v, expected forced 1", rate.Rate)
		}
		if rate.Code == pricing.CurrencyUSD && rate.Rate != 31 {
			t.Errorf("USD rate = %v, expected untouched 31", rate.Rate)
		}
	}
}

func TestApplyDefaultsResetsNormalScenario(t *testing.T) {
	conf := &Configuration{
		Project: pricing.ProjectInput{
			Scenarios: []pricing.Scenario{
				{Kind: pricing.ScenarioNormal, Name: "Baseline", PersonnelMultiplier: 1.5, DurationMultiplier: 2, SalesMultiplier: 0.5, ExpensesMultiplier: 3},
			},
		},
	}
	conf.ApplyDefaults()

	normal := conf.Project.Scenarios[0]
	if normal.PersonnelMultiplier != 1 || normal.DurationMultiplier != 1 ||
		normal.SalesMultiplier != 1 || normal.ExpensesMultiplier != 1 {
		t.Errorf("normal scenario not reset to identity: %+v", normal)
	}
	if normal.Name != "Baseline" {
		t.Errorf("scenario name = %q, expected preserved name", normal.Name)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name          string
		project       pricing.ProjectInput
		wantFragment  string
		wantNoWarning bool
	}{
		{
			name: "Clean input",
			project: pricing.ProjectInput{
				ProjectDuration: 12,
			},
			wantNoWarning: true,
		},
		{
			name: "Nonstandard duration",
			project: pricing.ProjectInput{
				ProjectDuration: 17,
			},
			wantFragment: "outside the standard set",
		},
		{
			name: "Negative salary",
			project: pricing.ProjectInput{
				ProjectDuration: 12,
				PersonnelItems: []pricing.PersonnelItem{
					{Role: pricing.RoleDeveloper, MonthlySalary: -1, Count: 1, Duration: 6},
				},
			},
			wantFragment: "negative monthly salary",
		},
		{
			name: "Personnel outlives project",
			project: pricing.ProjectInput{
				ProjectDuration: 6,
				PersonnelItems: []pricing.PersonnelItem{
					{Role: pricing.RoleTester, MonthlySalary: 1000, Count: 1, Duration: 9},
				},
			},
			wantFragment: "staffed for 9 months",
		},
		{
			name: "Drifted normal scenario",
			project: pricing.ProjectInput{
				ProjectDuration: 12,
				Scenarios: []pricing.Scenario{
					{Kind: pricing.ScenarioNormal, PersonnelMultiplier: 1.5, DurationMultiplier: 1, SalesMultiplier: 1, ExpensesMultiplier: 1},
				},
			},
			wantFragment: "drifted from 1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Project: tt.project}
			warnings := conf.ValidateConfiguration()

			if tt.wantNoWarning {
				if len(warnings) != 0 {
					t.Errorf("expected no warnings, got %v", warnings)
				}
				return
			}

			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.wantFragment) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no warning containing %q in %v", tt.wantFragment, warnings)
			}
		})
	}
}
