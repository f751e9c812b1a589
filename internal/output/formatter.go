package output

import (
	"errors"
	"sort"
	"strings"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.ProjectionResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ProjectionResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ProjectionResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                      { return ff.ID }

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	TableFormatter{},
	SummaryFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

// fileExtensions maps formatter names to output file extensions when they differ.
var fileExtensions = map[string]string{
	"table":   "txt",
	"summary": "txt",
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// Extension returns the file extension used when writing a format to disk.
func Extension(name string) string {
	n := NormalizeFormatName(name)
	if ext, ok := fileExtensions[n]; ok {
		return ext
	}
	return n
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console":     "table",
	"text":        "table",
	"txt":         "table",
	"report":      "summary",
	"verbose":     "summary",
	"csv-years":   "csv",
	"json-pretty": "json",
	"html-report": "html",
	"pdf-report":  "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AliasTarget returns the canonical name an alias resolves to.
func AliasTarget(alias string) string { return aliasMap[alias] }
