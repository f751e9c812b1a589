package calculation

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// plantation is the 5-acre, no-loan, no-tax reference project.
func plantation() *domain.AssumptionSet {
	return &domain.AssumptionSet{
		Name:                "reference plantation",
		Acres:               d(5),
		MaturityYears:       3,
		YieldPerAcre:        d(15),
		HarvestsPerYear:     d(1),
		CapacityUtilization: d(1),
		PrimaryAllocation:   d(1),
		FeedstockAllocation: d(1),
		BiocharYieldRatio:   d(0.10),
		ProcessingCapacity:  domain.Unbounded(),
		BambooBaseSales:     domain.Unbounded(),
		BiocharBaseSales:    domain.Unbounded(),
		BambooPrice:         d(150),
		BiocharPrice:        d(500),
		BiocharCostPerTon:   d(300),
		CashFlowBasis:       domain.BasisFinancing,
		ProjectionYears:     10,
	}
}

func flows(vs ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = d(v)
	}
	return out
}
