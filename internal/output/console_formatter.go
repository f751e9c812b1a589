package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// TableFormatter prints the year-by-year projection as a fixed-width console table.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	cols := consoleColumns

	// width per column: widest of header and every rendered cell
	widths := make([]int, len(cols))
	cells := make([][]string, len(result.Table))
	for i, c := range cols {
		widths[i] = len(c.Short)
	}
	for r, rec := range result.Table {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			cells[r][i] = c.display(rec)
			widths[i] = max(widths[i], len(cells[r][i]))
		}
	}

	fmt.Fprintf(&buf, "BAMBOO & BIOCHAR PROJECTION: %s\n", result.Name)
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	fmt.Fprintf(&buf, "%4s", "Year")
	for i, c := range cols {
		fmt.Fprintf(&buf, "  %*s", widths[i], c.Short)
	}
	fmt.Fprintln(&buf)
	for r, rec := range result.Table {
		fmt.Fprintf(&buf, "%4d", rec.Year)
		for i := range cols {
			fmt.Fprintf(&buf, "  %*s", widths[i], cells[r][i])
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "NPV @ %s: %s   IRR: %s\n", FormatRate(result.Valuation.DiscountRate),
		FormatCurrency(result.Valuation.NPV), FormatIRR(result.Valuation.IRR))
	return buf.Bytes(), nil
}
