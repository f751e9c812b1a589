package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixClock(t *testing.T) {
	t.Helper()
	SetNowFunc(func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) })
	t.Cleanup(func() { SetNowFunc(time.Now) })
}

func TestWriteFormatted(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	path, err := WriteFormatted(CSVFormatter{}, buildTestResult(t), dir, "csv")
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	if want := filepath.Join(dir, "bamboo_forecast_20250301_093000.csv"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty file at %s: %v", path, err)
	}
}

func TestGenerateReport_All(t *testing.T) {
	fixClock(t)
	dir := filepath.Join(t.TempDir(), "reports")

	paths, err := GenerateReport(buildTestResult(t), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	if len(paths) != len(AvailableFormatterNames()) {
		t.Fatalf("expected one file per format, got %v", paths)
	}
	seen := map[string]bool{}
	for _, p := range paths {
		if seen[p] {
			t.Fatalf("duplicate output path %s", p)
		}
		seen[p] = true
	}
	if !seen[filepath.Join(dir, "bamboo_forecast_20250301_093000_summary.txt")] {
		t.Fatalf("summary report missing from %v", paths)
	}
}

func TestGenerateReport_Unsupported(t *testing.T) {
	_, err := GenerateReport(buildTestResult(t), "xlsx", t.TempDir())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
