package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report. Charts are drawn by
// Chart.js loaded from a CDN.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlFuncs = template.FuncMap{
	"curr": FormatCurrency,
	"qty":  FormatQuantity,
	"cell": func(c column, r domain.YearRecord) string { return c.display(r) },
	"negative": func(c column, r domain.YearRecord) bool {
		return c.Kind == kindMoney && c.Value(r).IsNegative()
	},
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(htmlTemplateSource))

// chartDataset is one Chart.js dataset. Kind overrides the chart type for
// mixed bar/line charts.
type chartDataset struct {
	Label string    `json:"label"`
	Kind  string    `json:"type,omitempty"`
	Color string    `json:"color"`
	Data  []float64 `json:"data"`
}

type chartSpec struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Kind     string         `json:"kind"`
	Stacked  bool           `json:"stacked"`
	Datasets []chartDataset `json:"datasets"`
}

type chartData struct {
	Years  []int       `json:"years"`
	Charts []chartSpec `json:"charts"`
}

func series(table domain.ProjectionTable, value func(domain.YearRecord) decimal.Decimal) []float64 {
	out := make([]float64, 0, len(table))
	for _, r := range table {
		out = append(out, value(r).Round(2).InexactFloat64())
	}
	return out
}

// buildCharts assembles the revenue, cost, income and cash charts.
func buildCharts(table domain.ProjectionTable) chartData {
	data := chartData{}
	for _, r := range table {
		data.Years = append(data.Years, r.Year)
	}
	data.Charts = []chartSpec{
		{
			ID: "revenue", Title: "Revenue by product", Kind: "bar", Stacked: true,
			Datasets: []chartDataset{
				{Label: "Bamboo", Color: "#2f6b3a", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.BambooRevenue })},
				{Label: "Biochar", Color: "#3b3b3b", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.BiocharRevenue })},
				{Label: "Carbon credits", Color: "#4f8fc0", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.CarbonCreditRevenue })},
				{Label: "By-products", Color: "#c9a227", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.ByproductRevenue })},
			},
		},
		{
			ID: "costs", Title: "Operating costs", Kind: "bar", Stacked: true,
			Datasets: []chartDataset{
				{Label: "Fixed", Color: "#7a5c3e", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Fixed })},
				{Label: "Land-based", Color: "#9bbf85", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.Costs.LandBased })},
				{Label: "Harvest", Color: "#5a8f4e", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Harvest })},
				{Label: "Conversion", Color: "#555555", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Conversion })},
				{Label: "Transport", Color: "#d08c3a", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Transport })},
				{Label: "Marketing", Color: "#a12d2d", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Marketing })},
			},
		},
		{
			ID: "income", Title: "Net income and free cash flow", Kind: "bar",
			Datasets: []chartDataset{
				{Label: "Net income", Color: "#2f6b3a", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.NetIncome })},
				{Label: "Free cash flow", Kind: "line", Color: "#4f8fc0", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.FreeCashFlow })},
			},
		},
		{
			ID: "cumulative", Title: "Cumulative cash", Kind: "line",
			Datasets: []chartDataset{
				{Label: "Cumulative cash", Color: "#2f6b3a", Data: series(table, func(r domain.YearRecord) decimal.Decimal { return r.CumulativeCash })},
			},
		},
	}
	return data
}

func (h HTMLFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ProjectionResult
		Highlights  Highlights
		Assumptions []string
		Columns     []column
		Chart       chartData
	}{result, AnalyzeProjection(result), reportAssumptions(result), yearColumns, buildCharts(result.Table)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
