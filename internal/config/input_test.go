package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalYAML = `name: "Five acre trial"
projection_years: 10
land:
  acres: 5
production:
  maturity_years: 3
  yield_per_acre: 15
  harvests_per_year: 1
  capacity_utilization_percent: 100
  biochar_yield_percent: 10
prices:
  bamboo_per_ton: 150
  biochar_per_ton: 500
costs:
  biochar_per_ton: 300
`

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	parser := NewInputParser()
	scenario, err := parser.LoadFromFile(writeTemp(t, "trial.yaml", minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, "Five acre trial", scenario.Name)
	assert.Equal(t, 10, scenario.ProjectionYears)
	assert.Nil(t, scenario.Production.BambooBaseSalesTons)

	a, err := scenario.ToAssumptions()
	require.NoError(t, err)
	assert.True(t, a.BiocharYieldRatio.Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, a.PrimaryAllocation.Equal(decimal.NewFromInt(1)), "omitted allocation defaults to the full harvest")
	assert.True(t, a.FeedstockAllocation.Equal(decimal.NewFromInt(1)))
	assert.True(t, a.BambooBaseSales.Unbounded)
	assert.True(t, a.ProcessingCapacity.Unbounded)
	assert.Equal(t, domain.BasisFinancing, a.CashFlowBasis)
}

func TestLoadFromFile_JSON(t *testing.T) {
	content := `{"name": "json trial", "projection_years": 5,
  "land": {"acres": 2},
  "production": {"harvests_per_year": 1, "capacity_utilization_percent": 80, "biochar_yield_percent": 20, "bamboo_base_sales_tons": 0}}`

	parser := NewInputParser()
	scenario, err := parser.LoadFromFile(writeTemp(t, "trial.json", content))
	require.NoError(t, err)

	a, err := scenario.ToAssumptions()
	require.NoError(t, err)
	assert.False(t, a.BambooBaseSales.Unbounded, "explicit zero is a binding cap")
	assert.True(t, a.BambooBaseSales.Tons.IsZero())
	assert.True(t, a.CapacityUtilization.Equal(decimal.NewFromFloat(0.8)))
}

func TestLoadFromFile_TOML(t *testing.T) {
	content := `name = "toml trial"
projection_years = 12
cash_flow_basis = "equity"

[land]
acres = 8
cost_per_acre = 3000

[[land.expansions]]
year = 4
acres = 2

[production]
maturity_years = 2
yield_per_acre = 10
harvests_per_year = 2
capacity_utilization_percent = 90
biochar_yield_percent = 25
processing_capacity_tons = 40

[financing]
equity_investment = 50000
loan_amount = 20000
loan_interest_percent = 6
loan_term_years = 5
`
	parser := NewInputParser()
	a, err := parser.LoadAssumptions(writeTemp(t, "trial.toml", content))
	require.NoError(t, err)
	assert.Equal(t, "toml trial", a.Name)
	assert.Equal(t, domain.BasisEquity, a.CashFlowBasis)
	require.Len(t, a.Expansions, 1)
	assert.Equal(t, 4, a.Expansions[0].Year)
	assert.True(t, a.ProcessingCapacity.Tons.Equal(decimal.NewFromInt(40)))
	assert.True(t, a.LoanInterestRate.Equal(decimal.NewFromFloat(0.06)))
	assert.Equal(t, 5, a.LoanTermYears)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	scenario, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, scenario)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	content := "name: \"broken\"\nland:\n\tacres: \"many\"\n"

	parser := NewInputParser()
	scenario, err := parser.LoadFromFile(writeTemp(t, "broken.yaml", content))
	assert.Error(t, err)
	assert.Nil(t, scenario)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTemp(t, "broken.toml", "name = \n[land\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestValidateScenario_Example(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateScenario(parser.CreateExampleScenario()))
}

func TestValidateScenario_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *ScenarioFile)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(s *ScenarioFile) { s.Name = "" },
			message: "name failed required",
		},
		{
			name:    "zero horizon",
			mutate:  func(s *ScenarioFile) { s.ProjectionYears = 0 },
			message: "projection_years failed gte=1",
		},
		{
			name:    "no land",
			mutate:  func(s *ScenarioFile) { s.Land.Acres = 0 },
			message: "land.acres failed gt=0",
		},
		{
			name:    "utilization above 100",
			mutate:  func(s *ScenarioFile) { s.Production.CapacityUtilizationPercent = 120 },
			message: "production.capacity_utilization_percent failed lte=100",
		},
		{
			name:    "negative price",
			mutate:  func(s *ScenarioFile) { s.Prices.BambooPerTon = -1 },
			message: "prices.bamboo_per_ton failed gte=0",
		},
		{
			name:    "unknown basis",
			mutate:  func(s *ScenarioFile) { s.CashFlowBasis = "levered" },
			message: "cash_flow_basis failed oneof",
		},
		{
			name:    "expansion beyond horizon",
			mutate:  func(s *ScenarioFile) { s.Land.Expansions = []ExpansionConfig{{Year: 40, Acres: 5}} },
			message: "beyond projection_years",
		},
		{
			name:    "expansion without acres",
			mutate:  func(s *ScenarioFile) { s.Land.Expansions = []ExpansionConfig{{Year: 2}} },
			message: "land.expansions[0].acres failed gt=0",
		},
		{
			name:    "feedstock without yield",
			mutate:  func(s *ScenarioFile) { s.Production.BiocharYieldPercent = 0 },
			message: "biochar_yield_percent must be positive",
		},
		{
			name: "explicit allocations above 100",
			mutate: func(s *ScenarioFile) {
				s.Production.PrimaryAllocationPercent = ptr(80)
				s.Production.FeedstockAllocationPercent = ptr(30)
			},
			message: "exceed 100 combined",
		},
		{
			name:    "negative harvests",
			mutate:  func(s *ScenarioFile) { s.Production.HarvestsPerYear = -1 },
			message: "production.harvests_per_year failed gte=0",
		},
		{
			name:    "loan without term",
			mutate:  func(s *ScenarioFile) { s.Financing.LoanTermYears = 0 },
			message: "loan_term_years is required",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parser.CreateExampleScenario()
			tt.mutate(s)
			err := parser.ValidateScenario(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidScenario))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateScenario_FeedstockOffAllowsZeroYield(t *testing.T) {
	parser := NewInputParser()
	s := parser.CreateExampleScenario()
	zero := 0.0
	s.Production.FeedstockAllocationPercent = &zero
	s.Production.BiocharYieldPercent = 0
	assert.NoError(t, parser.ValidateScenario(s))
}

func TestValidateScenario_DefaultedAllocationsMayOverlap(t *testing.T) {
	parser := NewInputParser()
	s := parser.CreateExampleScenario()
	s.Production.PrimaryAllocationPercent = nil
	assert.NoError(t, parser.ValidateScenario(s), "an omitted allocation takes the full harvest")

	s.Production.PrimaryAllocationPercent = ptr(70)
	s.Production.FeedstockAllocationPercent = ptr(30)
	assert.NoError(t, parser.ValidateScenario(s))
}

func TestValidateScenario_ZeroHarvestsAllowed(t *testing.T) {
	parser := NewInputParser()
	s := parser.CreateExampleScenario()
	s.Production.HarvestsPerYear = 0
	require.NoError(t, parser.ValidateScenario(s))

	a, err := s.ToAssumptions()
	require.NoError(t, err)
	assert.True(t, a.HarvestsPerYear.IsZero())
}

func TestToAssumptions_Example(t *testing.T) {
	parser := NewInputParser()
	a, err := parser.CreateExampleScenario().ToAssumptions()
	require.NoError(t, err)

	assert.True(t, a.LandCostBasis().Equal(decimal.NewFromInt(5500)))
	assert.True(t, a.InitialCapex().Equal(decimal.NewFromInt(215000)))
	assert.True(t, a.TaxRate.Equal(decimal.NewFromFloat(0.21)))
	assert.True(t, a.LoanInterestRate.Equal(decimal.NewFromFloat(0.075)))
	assert.True(t, a.PrimaryAllocation.Equal(decimal.NewFromFloat(0.7)))
	assert.False(t, a.BambooBaseSales.Unbounded)
	assert.Equal(t, 15, a.ProjectionYears)
	require.Len(t, a.Expansions, 1)
	assert.True(t, a.ExpansionAcres(6).Equal(decimal.NewFromInt(10)))
}

func TestSaveScenario_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleScenario()

	for _, name := range []string{"scenario.yaml", "scenario.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, parser.SaveScenario(example, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, example.Name, loaded.Name)
			assert.Equal(t, example.Land.Expansions, loaded.Land.Expansions)
			require.NotNil(t, loaded.Production.ProcessingCapacityTons)
			assert.Equal(t, *example.Production.ProcessingCapacityTons, *loaded.Production.ProcessingCapacityTons)
		})
	}
}
