package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// WriteFormatted runs a formatter and writes its output to a timestamped
// file in dir, returning the path written. Formats sharing an extension
// (table and summary are both .txt) get the format name as a suffix.
func WriteFormatted(f Formatter, result *domain.ProjectionResult, dir, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	base := "bamboo_forecast_" + nowFunc().Format("20060102_150405")
	if ext != f.Name() {
		base += "_" + f.Name()
	}
	filename := filepath.Join(dir, base+"."+ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport writes one report file per requested format into dir.
// "all" expands to every registered formatter.
func GenerateReport(result *domain.ProjectionResult, format, dir string) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = AvailableFormatterNames()
	}

	var written []string
	for _, name := range names {
		f := GetFormatterByName(name)
		if f == nil {
			// enrich error with available formatters and aliases
			return written, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
		}
		path, err := WriteFormatted(f, result, dir, Extension(f.Name()))
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
