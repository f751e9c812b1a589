package config

// ScenarioFile is the on-disk shape of a projection scenario. Rates are
// given in percent (8 for 8%), money in currency units, volumes in tons.
// Optional caps are pointers: an omitted cap does not bind.
type ScenarioFile struct {
	Name            string `yaml:"name" toml:"name" json:"name" validate:"required"`
	ProjectionYears int    `yaml:"projection_years" toml:"projection_years" json:"projection_years" validate:"gte=1,lte=100"`
	CashFlowBasis   string `yaml:"cash_flow_basis,omitempty" toml:"cash_flow_basis,omitempty" json:"cash_flow_basis,omitempty" validate:"omitempty,oneof=financing equity"`

	Land       LandSection       `yaml:"land" toml:"land" json:"land"`
	Capital    CapitalSection    `yaml:"capital" toml:"capital" json:"capital"`
	Production ProductionSection `yaml:"production" toml:"production" json:"production"`
	Prices     PriceSection      `yaml:"prices" toml:"prices" json:"prices"`
	Costs      CostSection       `yaml:"costs" toml:"costs" json:"costs"`
	Financing  FinancingSection  `yaml:"financing" toml:"financing" json:"financing"`
}

// LandSection describes the planted area and any staged additions.
type LandSection struct {
	Acres                  float64           `yaml:"acres" toml:"acres" json:"acres" validate:"gt=0"`
	CostPerAcre            float64           `yaml:"cost_per_acre" toml:"cost_per_acre" json:"cost_per_acre" validate:"gte=0"`
	PreparationCostPerAcre float64           `yaml:"preparation_cost_per_acre" toml:"preparation_cost_per_acre" json:"preparation_cost_per_acre" validate:"gte=0"`
	PlantingCostPerAcre    float64           `yaml:"planting_cost_per_acre" toml:"planting_cost_per_acre" json:"planting_cost_per_acre" validate:"gte=0"`
	Expansions             []ExpansionConfig `yaml:"expansions,omitempty" toml:"expansions,omitempty" json:"expansions,omitempty" validate:"dive"`
}

// ExpansionConfig adds acreage in a given year.
type ExpansionConfig struct {
	Year  int     `yaml:"year" toml:"year" json:"year" validate:"gte=1"`
	Acres float64 `yaml:"acres" toml:"acres" json:"acres" validate:"gt=0"`
}

// CapitalSection holds the non-land year-0 outlays.
type CapitalSection struct {
	EquipmentCost         float64 `yaml:"equipment_cost" toml:"equipment_cost" json:"equipment_cost" validate:"gte=0"`
	FacilityCost          float64 `yaml:"facility_cost" toml:"facility_cost" json:"facility_cost" validate:"gte=0"`
	WorkingCapitalReserve float64 `yaml:"working_capital_reserve" toml:"working_capital_reserve" json:"working_capital_reserve" validate:"gte=0"`
	RegulatoryCost        float64 `yaml:"regulatory_cost" toml:"regulatory_cost" json:"regulatory_cost" validate:"gte=0"`
}

// ProductionSection drives the volume model.
type ProductionSection struct {
	MaturityYears              int      `yaml:"maturity_years" toml:"maturity_years" json:"maturity_years" validate:"gte=0"`
	YieldPerAcre               float64  `yaml:"yield_per_acre" toml:"yield_per_acre" json:"yield_per_acre" validate:"gte=0"`
	HarvestsPerYear            float64  `yaml:"harvests_per_year" toml:"harvests_per_year" json:"harvests_per_year" validate:"gte=0"`
	CapacityUtilizationPercent float64  `yaml:"capacity_utilization_percent" toml:"capacity_utilization_percent" json:"capacity_utilization_percent" validate:"gte=0,lte=100"`
	PrimaryAllocationPercent   *float64 `yaml:"primary_allocation_percent,omitempty" toml:"primary_allocation_percent,omitempty" json:"primary_allocation_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	FeedstockAllocationPercent *float64 `yaml:"feedstock_allocation_percent,omitempty" toml:"feedstock_allocation_percent,omitempty" json:"feedstock_allocation_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	BiocharYieldPercent        float64  `yaml:"biochar_yield_percent" toml:"biochar_yield_percent" json:"biochar_yield_percent" validate:"gte=0,lte=100"`
	ProcessingCapacityTons     *float64 `yaml:"processing_capacity_tons,omitempty" toml:"processing_capacity_tons,omitempty" json:"processing_capacity_tons,omitempty" validate:"omitempty,gte=0"`
	BambooBaseSalesTons        *float64 `yaml:"bamboo_base_sales_tons,omitempty" toml:"bamboo_base_sales_tons,omitempty" json:"bamboo_base_sales_tons,omitempty" validate:"omitempty,gte=0"`
	BiocharBaseSalesTons       *float64 `yaml:"biochar_base_sales_tons,omitempty" toml:"biochar_base_sales_tons,omitempty" json:"biochar_base_sales_tons,omitempty" validate:"omitempty,gte=0"`
	SalesGrowthPercent         float64  `yaml:"sales_growth_percent" toml:"sales_growth_percent" json:"sales_growth_percent" validate:"gte=-100"`
}

// PriceSection holds unit prices in year-1 terms.
type PriceSection struct {
	BambooPerTon             float64 `yaml:"bamboo_per_ton" toml:"bamboo_per_ton" json:"bamboo_per_ton" validate:"gte=0"`
	BiocharPerTon            float64 `yaml:"biochar_per_ton" toml:"biochar_per_ton" json:"biochar_per_ton" validate:"gte=0"`
	CarbonCreditPerTon       float64 `yaml:"carbon_credit_per_ton" toml:"carbon_credit_per_ton" json:"carbon_credit_per_ton" validate:"gte=0"`
	ByproductPerFeedstockTon float64 `yaml:"byproduct_per_feedstock_ton" toml:"byproduct_per_feedstock_ton" json:"byproduct_per_feedstock_ton" validate:"gte=0"`
	InflationPercent         float64 `yaml:"inflation_percent" toml:"inflation_percent" json:"inflation_percent" validate:"gt=-100"`
}

// CostSection holds operating costs in year-1 terms.
type CostSection struct {
	Admin                     float64 `yaml:"admin" toml:"admin" json:"admin" validate:"gte=0"`
	Insurance                 float64 `yaml:"insurance" toml:"insurance" json:"insurance" validate:"gte=0"`
	Maintenance               float64 `yaml:"maintenance" toml:"maintenance" json:"maintenance" validate:"gte=0"`
	Compliance                float64 `yaml:"compliance" toml:"compliance" json:"compliance" validate:"gte=0"`
	MaintenancePerAcre        float64 `yaml:"maintenance_per_acre" toml:"maintenance_per_acre" json:"maintenance_per_acre" validate:"gte=0"`
	FertilizerPerAcre         float64 `yaml:"fertilizer_per_acre" toml:"fertilizer_per_acre" json:"fertilizer_per_acre" validate:"gte=0"`
	PestControlPerAcre        float64 `yaml:"pest_control_per_acre" toml:"pest_control_per_acre" json:"pest_control_per_acre" validate:"gte=0"`
	WeedControlPerAcre        float64 `yaml:"weed_control_per_acre" toml:"weed_control_per_acre" json:"weed_control_per_acre" validate:"gte=0"`
	HarvestPerTon             float64 `yaml:"harvest_per_ton" toml:"harvest_per_ton" json:"harvest_per_ton" validate:"gte=0"`
	BiocharPerTon             float64 `yaml:"biochar_per_ton" toml:"biochar_per_ton" json:"biochar_per_ton" validate:"gte=0"`
	ProcessingPerFeedstockTon float64 `yaml:"processing_per_feedstock_ton" toml:"processing_per_feedstock_ton" json:"processing_per_feedstock_ton" validate:"gte=0"`
	TransportPerTon           float64 `yaml:"transport_per_ton" toml:"transport_per_ton" json:"transport_per_ton" validate:"gte=0"`
	MarketingPercent          float64 `yaml:"marketing_percent" toml:"marketing_percent" json:"marketing_percent" validate:"gte=0,lte=100"`
	InflationPercent          float64 `yaml:"inflation_percent" toml:"inflation_percent" json:"inflation_percent" validate:"gt=-100"`
}

// FinancingSection holds capital structure, tax and valuation inputs.
type FinancingSection struct {
	EquityInvestment      float64 `yaml:"equity_investment" toml:"equity_investment" json:"equity_investment" validate:"gte=0"`
	LoanAmount            float64 `yaml:"loan_amount" toml:"loan_amount" json:"loan_amount" validate:"gte=0"`
	LoanInterestPercent   float64 `yaml:"loan_interest_percent" toml:"loan_interest_percent" json:"loan_interest_percent" validate:"gte=0,lte=100"`
	LoanTermYears         int     `yaml:"loan_term_years" toml:"loan_term_years" json:"loan_term_years" validate:"gte=0"`
	OriginationFeePercent float64 `yaml:"origination_fee_percent" toml:"origination_fee_percent" json:"origination_fee_percent" validate:"gte=0,lte=100"`
	TaxPercent            float64 `yaml:"tax_percent" toml:"tax_percent" json:"tax_percent" validate:"gte=0,lte=100"`
	DepreciationPercent   float64 `yaml:"depreciation_percent" toml:"depreciation_percent" json:"depreciation_percent" validate:"gte=0,lte=100"`
	DiscountPercent       float64 `yaml:"discount_percent" toml:"discount_percent" json:"discount_percent" validate:"gte=0,lte=100"`
}
