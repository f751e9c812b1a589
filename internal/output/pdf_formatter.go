package output

import (
	"bytes"
	"fmt"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/go-pdf/fpdf"
)

// PDFFormatter renders a printable landscape report: highlights,
// assumptions and the condensed year table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfMargin     = 10.0
	pdfYearWidth  = 12.0
	pdfRowHeight  = 6.0
	pdfPageBottom = 190.0
)

func (p PDFFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	h := AnalyzeProjection(result)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreationDate(nowFunc())
	pdf.SetTitle("Bamboo & Biochar Projection: "+result.Name, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Bamboo & Biochar Projection: "+result.Name, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Valuation", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, kv := range [][2]string{
		{"NPV @ " + h.DiscountRate, h.NPV},
		{"IRR", h.IRR},
		{"Break-even", h.BreakEven},
		{"Payback", h.Payback},
		{"Peak funding", h.PeakFunding},
		{"Initial capex", h.InitialCapex},
		{"Annual debt payment", h.AnnualDebtPmt},
		{"Total revenue", h.TotalRevenue},
		{"Total net income", h.TotalNetIncome},
		{"Ending cash", h.EndingCash},
	} {
		pdf.CellFormat(50, 5, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, kv[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 5, h.Verdict, "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Key assumptions", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, a := range reportAssumptions(result) {
		pdf.MultiCell(0, 4.5, "- "+a, "", "L", false)
	}

	pdf.AddPage()
	writePDFTable(pdf, result.Table, result.Summary.Totals)

	if pdf.Err() {
		return nil, fmt.Errorf("render pdf: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfRow renders the cells of one table line after the label cell.
func pdfRow(rec domain.YearRecord) []string {
	cells := make([]string, 0, len(consoleColumns))
	for _, c := range consoleColumns {
		cells = append(cells, c.display(rec))
	}
	return cells
}

// writePDFTable draws the year table followed by a totals line. Cumulative
// cash in the totals line is the ending balance.
func writePDFTable(pdf *fpdf.Fpdf, table domain.ProjectionTable, totals domain.YearRecord) {
	pageWidth, _ := pdf.GetPageSize()
	colWidth := (pageWidth - 2*pdfMargin - pdfYearWidth) / float64(len(consoleColumns))

	header := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 240, 232)
		pdf.CellFormat(pdfYearWidth, pdfRowHeight, "Year", "1", 0, "C", true, 0, "")
		for _, c := range consoleColumns {
			pdf.CellFormat(colWidth, pdfRowHeight, c.Short, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}
	row := func(label string, cells []string, fill bool) {
		if pdf.GetY()+pdfRowHeight > pdfPageBottom {
			pdf.AddPage()
			header()
		}
		pdf.CellFormat(pdfYearWidth, pdfRowHeight, label, "1", 0, "C", fill, 0, "")
		for _, cell := range cells {
			pdf.CellFormat(colWidth, pdfRowHeight, cell, "1", 0, "R", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	header()
	for _, rec := range table {
		row(fmt.Sprintf("%d", rec.Year), pdfRow(rec), false)
	}
	pdf.SetFont("Arial", "B", 8)
	row("Total", pdfRow(totals), true)
}
