package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// CSVFormatter exports every column of every year, year 0 included.
// Values are unformatted with two decimals so spreadsheets can sum them.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, len(yearColumns)+1)
	header = append(header, "Year")
	for _, col := range yearColumns {
		header = append(header, col.Header)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range result.Table {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(rec.Year))
		for _, col := range yearColumns {
			row = append(row, col.Value(rec).StringFixed(2))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
