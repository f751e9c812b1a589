package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/cdimurro/bamboo-forecast-app/internal/calculation"
	"github.com/cdimurro/bamboo-forecast-app/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_payback <scenario-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	a, err := p.LoadAssumptions(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.Run(context.Background(), a)
	if err != nil {
		panic(err)
	}
	if len(res.Table) == 0 {
		fmt.Println("no projection data")
		return
	}

	fmt.Println("Year,Revenue,NetIncome,Principal,FCF,CumulativeCash")
	for _, r := range res.Table {
		fmt.Printf("%d,%s,%s,%s,%s,%s\n", r.Year, r.TotalRevenue.StringFixed(0), r.NetIncome.StringFixed(0), r.PrincipalPayment.StringFixed(0), r.FreeCashFlow.StringFixed(0), r.CumulativeCash.StringFixed(0))
	}

	pb := res.Summary.Payback
	if !pb.Reached {
		fmt.Printf("payback: not reached (peak funding %s)\n", res.Summary.PeakFunding.StringFixed(0))
		return
	}
	fmt.Printf("payback: %s years, crossing in year %d at fraction %s\n", pb.Years.StringFixed(2), pb.Year, pb.Fraction.StringFixed(3))
	fmt.Printf("break-even year: %d\n", res.Summary.BreakEvenYear)
}
