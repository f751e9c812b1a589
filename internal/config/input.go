package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// InputParser handles parsing of scenario files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	v := validator.New()
	// report fields by their file keys, not Go names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &InputParser{validate: v}
}

// LoadFromFile loads a scenario from a YAML, JSON or TOML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	scenario, err := ip.Parse(data, filepath.Ext(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateScenario(scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return scenario, nil
}

// LoadAssumptions loads, validates and resolves a scenario file in one step.
func (ip *InputParser) LoadAssumptions(filename string) (*domain.AssumptionSet, error) {
	scenario, err := ip.LoadFromFile(filename)
	if err != nil {
		return nil, err
	}
	return scenario.ToAssumptions()
}

// Parse decodes scenario bytes by file extension. YAML is the default;
// JSON goes through the YAML decoder.
func (ip *InputParser) Parse(data []byte, ext string) (*ScenarioFile, error) {
	var scenario ScenarioFile
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &scenario); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return &scenario, nil
}

// ValidateScenario checks field ranges and the rules that span fields.
func (ip *InputParser) ValidateScenario(s *ScenarioFile) error {
	if s == nil {
		return fmt.Errorf("%w: scenario is nil", ErrInvalidScenario)
	}
	if err := ip.validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalidScenario, describe(verrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	for i, e := range s.Land.Expansions {
		if e.Year > s.ProjectionYears {
			return fmt.Errorf("%w: land.expansions[%d].year %d is beyond projection_years %d", ErrInvalidScenario, i, e.Year, s.ProjectionYears)
		}
	}
	if p := s.Production; p.PrimaryAllocationPercent != nil && p.FeedstockAllocationPercent != nil &&
		*p.PrimaryAllocationPercent+*p.FeedstockAllocationPercent > 100 {
		return fmt.Errorf("%w: production.primary_allocation_percent and feedstock_allocation_percent exceed 100 combined", ErrInvalidScenario)
	}
	if feedstockPercent(s.Production) > 0 && s.Production.BiocharYieldPercent <= 0 {
		return fmt.Errorf("%w: production.biochar_yield_percent must be positive when harvest is allocated to biochar", ErrInvalidScenario)
	}
	if s.Financing.LoanAmount > 0 && s.Financing.LoanTermYears < 1 {
		return fmt.Errorf("%w: financing.loan_term_years is required when a loan is drawn", ErrInvalidScenario)
	}
	return nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s failed %s (got %v)", field, rule, fe.Value()))
	}
	return strings.Join(parts, "; ")
}

func feedstockPercent(p ProductionSection) float64 {
	if p.FeedstockAllocationPercent == nil {
		return 100
	}
	return *p.FeedstockAllocationPercent
}

func primaryPercent(p ProductionSection) float64 {
	if p.PrimaryAllocationPercent == nil {
		return 100
	}
	return *p.PrimaryAllocationPercent
}

// SaveScenario writes a scenario as YAML, or TOML when the path ends in .toml.
func (ip *InputParser) SaveScenario(s *ScenarioFile, filename string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		data, err = toml.Marshal(s)
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

func num(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func rate(percent float64) decimal.Decimal { return decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)) }

func limit(tons *float64) domain.VolumeLimit {
	if tons == nil {
		return domain.Unbounded()
	}
	return domain.LimitOf(num(*tons))
}

// ToAssumptions resolves the file model into the engine's input. Percent
// values become fractions and omitted caps become unbounded limits.
func (s *ScenarioFile) ToAssumptions() (*domain.AssumptionSet, error) {
	basis, err := domain.ParseCashFlowBasis(s.CashFlowBasis)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	p, c, f := s.Production, s.Costs, s.Financing
	a := &domain.AssumptionSet{
		Name: s.Name,

		Acres:                  num(s.Land.Acres),
		LandCostPerAcre:        num(s.Land.CostPerAcre),
		PreparationCostPerAcre: num(s.Land.PreparationCostPerAcre),
		PlantingCostPerAcre:    num(s.Land.PlantingCostPerAcre),
		EquipmentCost:          num(s.Capital.EquipmentCost),
		FacilityCost:           num(s.Capital.FacilityCost),
		WorkingCapitalReserve:  num(s.Capital.WorkingCapitalReserve),
		RegulatoryCost:         num(s.Capital.RegulatoryCost),

		MaturityYears:       p.MaturityYears,
		YieldPerAcre:        num(p.YieldPerAcre),
		HarvestsPerYear:     num(p.HarvestsPerYear),
		CapacityUtilization: rate(p.CapacityUtilizationPercent),
		PrimaryAllocation:   rate(primaryPercent(p)),
		FeedstockAllocation: rate(feedstockPercent(p)),
		BiocharYieldRatio:   rate(p.BiocharYieldPercent),
		ProcessingCapacity:  limit(p.ProcessingCapacityTons),
		BambooBaseSales:     limit(p.BambooBaseSalesTons),
		BiocharBaseSales:    limit(p.BiocharBaseSalesTons),
		SalesGrowthRate:     rate(p.SalesGrowthPercent),

		BambooPrice:              num(s.Prices.BambooPerTon),
		BiocharPrice:             num(s.Prices.BiocharPerTon),
		CarbonCreditPerTon:       num(s.Prices.CarbonCreditPerTon),
		ByproductPerFeedstockTon: num(s.Prices.ByproductPerFeedstockTon),
		RevenueInflation:         rate(s.Prices.InflationPercent),

		AdminCost:                     num(c.Admin),
		InsuranceCost:                 num(c.Insurance),
		MaintenanceCost:               num(c.Maintenance),
		ComplianceCost:                num(c.Compliance),
		MaintenancePerAcre:            num(c.MaintenancePerAcre),
		FertilizerPerAcre:             num(c.FertilizerPerAcre),
		PestControlPerAcre:            num(c.PestControlPerAcre),
		WeedControlPerAcre:            num(c.WeedControlPerAcre),
		HarvestCostPerTon:             num(c.HarvestPerTon),
		BiocharCostPerTon:             num(c.BiocharPerTon),
		ProcessingCostPerFeedstockTon: num(c.ProcessingPerFeedstockTon),
		TransportCostPerTon:           num(c.TransportPerTon),
		MarketingRate:                 rate(c.MarketingPercent),
		CostInflation:                 rate(c.InflationPercent),

		EquityInvestment:   num(f.EquityInvestment),
		LoanAmount:         num(f.LoanAmount),
		LoanInterestRate:   rate(f.LoanInterestPercent),
		LoanTermYears:      f.LoanTermYears,
		OriginationFeeRate: rate(f.OriginationFeePercent),
		TaxRate:            rate(f.TaxPercent),
		DepreciationRate:   rate(f.DepreciationPercent),
		DiscountRate:       rate(f.DiscountPercent),
		CashFlowBasis:      basis,

		ProjectionYears: s.ProjectionYears,
	}
	for _, e := range s.Land.Expansions {
		a.Expansions = append(a.Expansions, domain.LandExpansion{Year: e.Year, Acres: num(e.Acres)})
	}
	return a, nil
}

func ptr(v float64) *float64 { return &v }

// CreateExampleScenario returns a 20-acre plantation with a kiln, a term
// loan and a staged expansion.
func (ip *InputParser) CreateExampleScenario() *ScenarioFile {
	return &ScenarioFile{
		Name:            "Bamboo plantation with biochar kiln",
		ProjectionYears: 15,
		CashFlowBasis:   string(domain.BasisFinancing),
		Land: LandSection{
			Acres:                  20,
			CostPerAcre:            4000,
			PreparationCostPerAcre: 600,
			PlantingCostPerAcre:    900,
			Expansions:             []ExpansionConfig{{Year: 6, Acres: 10}},
		},
		Capital: CapitalSection{
			EquipmentCost:         45000,
			FacilityCost:          60000,
			WorkingCapitalReserve: 15000,
			RegulatoryCost:        5000,
		},
		Production: ProductionSection{
			MaturityYears:              3,
			YieldPerAcre:               12,
			HarvestsPerYear:            1,
			CapacityUtilizationPercent: 90,
			PrimaryAllocationPercent:   ptr(70),
			FeedstockAllocationPercent: ptr(30),
			BiocharYieldPercent:        25,
			ProcessingCapacityTons:     ptr(120),
			BambooBaseSalesTons:        ptr(120),
			BiocharBaseSalesTons:       ptr(30),
			SalesGrowthPercent:         12,
		},
		Prices: PriceSection{
			BambooPerTon:             180,
			BiocharPerTon:            600,
			CarbonCreditPerTon:       100,
			ByproductPerFeedstockTon: 10,
			InflationPercent:         2,
		},
		Costs: CostSection{
			Admin:                     12000,
			Insurance:                 4000,
			Maintenance:               3000,
			Compliance:                1500,
			MaintenancePerAcre:        150,
			FertilizerPerAcre:         80,
			PestControlPerAcre:        40,
			WeedControlPerAcre:        60,
			HarvestPerTon:             25,
			BiocharPerTon:             150,
			ProcessingPerFeedstockTon: 15,
			TransportPerTon:           20,
			MarketingPercent:          3,
			InflationPercent:          2.5,
		},
		Financing: FinancingSection{
			EquityInvestment:      125000,
			LoanAmount:            100000,
			LoanInterestPercent:   7.5,
			LoanTermYears:         10,
			OriginationFeePercent: 1,
			TaxPercent:            21,
			DepreciationPercent:   10,
			DiscountPercent:       10,
		},
	}
}
